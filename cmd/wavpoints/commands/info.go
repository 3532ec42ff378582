// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ik5/wavpoints/waveform"
)

type infoResult struct {
	Path    string                   `json:"path" yaml:"path" msgpack:"path"`
	Params  waveform.ContainerParams `json:"params" yaml:"params" msgpack:"params"`
	Format  string                   `json:"format" yaml:"format" msgpack:"format"`
	Width   int                      `json:"width" yaml:"width" msgpack:"width"`
	Height  int                      `json:"height" yaml:"height" msgpack:"height"`
	Seconds float64                  `json:"seconds" yaml:"seconds" msgpack:"seconds"`
}

func (r infoResult) renderText(s Styles) string {
	return renderFields(s, r.Path, []field{
		{"channels", strconv.Itoa(r.Params.Channels)},
		{"sample width", fmt.Sprintf("%d bytes", r.Params.SampleWidth)},
		{"frame rate", fmt.Sprintf("%d Hz", r.Params.FrameRate)},
		{"frames", strconv.Itoa(r.Params.Frames)},
		{"duration", fmt.Sprintf("%.3fs", r.Seconds)},
		{"compression", fmt.Sprintf("%s (%s)", r.Params.CompressionType, r.Params.CompressionName)},
		{"format", r.Format},
		{"width", strconv.Itoa(r.Width)},
		{"height", strconv.Itoa(r.Height)},
	})
}

func newInfoCommand() *cobra.Command {
	var (
		set    decodeConfig
		format string
	)

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show container parameters and the resolved sample format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := info(args[0], set)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), "", OutputFormat(format), res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&set.Kind, "kind", "", "container kind: wav or aiff (default: from extension)")
	f.StringVar(&set.ByteOrder, "byte-order", "auto", "sample byte order: auto, little or big")
	f.IntVar(&set.MaxWidth, "max-width", 0, "largest x value, 0 for unscaled")
	f.IntVar(&set.MaxHeight, "max-height", 0, "height of each channel band, 0 for full bit depth")
	f.StringVar(&format, "output", string(FormatYAML), "output format: json, yaml, msgpack or text")
	return cmd
}

func info(path string, cfg decodeConfig) (infoResult, error) {
	opener, opts, err := cfg.resolve(path)
	if err != nil {
		return infoResult{}, err
	}
	return inspect(path, opener, opts)
}

// inspect opens path only long enough to read its parameters.
func inspect(path string, opener waveform.Opener, opts waveform.Options) (res infoResult, err error) {
	d := waveform.NewDecoder(path, opener, opts)
	if err := d.Open(); err != nil {
		return infoResult{}, err
	}
	defer func() {
		if cerr := d.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	p := d.Params()
	res = infoResult{
		Path:   path,
		Params: p,
		Format: d.Profile().String(),
		Width:  d.Width(),
		Height: d.Height(),
	}
	if p.FrameRate > 0 {
		res.Seconds = float64(p.Frames) / float64(p.FrameRate)
	}
	return res, nil
}
