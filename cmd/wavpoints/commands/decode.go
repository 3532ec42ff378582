// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/wavpoints/waveform"
)

type decodeResult struct {
	Path     string                   `json:"path" yaml:"path" msgpack:"path"`
	Params   waveform.ContainerParams `json:"params" yaml:"params" msgpack:"params"`
	Width    int                      `json:"width" yaml:"width" msgpack:"width"`
	Height   int                      `json:"height" yaml:"height" msgpack:"height"`
	Blocks   int                      `json:"blocks" yaml:"blocks" msgpack:"blocks"`
	Channels [][]waveform.Point       `json:"channels" yaml:"channels" msgpack:"channels"`
}

func newDecodeCommand() *cobra.Command {
	var (
		set        decodeConfig
		configFile string
		outFile    string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a file into per-channel points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg decodeConfig
			if configFile != "" {
				var err error
				if cfg, err = loadConfig(configFile); err != nil {
					return err
				}
			}
			cfg = cfg.merge(cmd.Flags(), set)

			res, err := decode(args[0], cfg)
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), outFile, OutputFormat(format), res)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configFile, "file", "f", "", "YAML options file")
	f.StringVar(&set.Kind, "kind", "", "container kind: wav or aiff (default: from extension)")
	f.StringVar(&set.ByteOrder, "byte-order", "auto", "sample byte order: auto, little or big")
	f.IntVar(&set.MaxWidth, "max-width", 0, "largest x value, 0 for unscaled")
	f.IntVar(&set.MaxHeight, "max-height", 0, "height of each channel band, 0 for full bit depth")
	f.IntVarP(&set.BlockSize, "block-size", "b", 0, "frames per read, 0 for the whole file")
	f.IntVarP(&set.Decimation, "decimation", "d", 1, "keep one of every N samples")
	f.StringVarP(&outFile, "out", "o", "", "output file (default: stdout)")
	f.StringVar(&format, "output", string(FormatJSON), "output format: json, yaml or msgpack")
	return cmd
}

func decode(path string, cfg decodeConfig) (res decodeResult, err error) {
	opener, opts, err := cfg.resolve(path)
	if err != nil {
		return res, err
	}

	d := waveform.NewDecoder(path, opener, opts)
	if err := d.Open(); err != nil {
		return res, err
	}
	defer func() {
		if cerr := d.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	res = decodeResult{
		Path:     path,
		Params:   d.Params(),
		Width:    d.Width(),
		Height:   d.Height(),
		Channels: make([][]waveform.Point, d.Params().Channels),
	}
	for block, err := range d.Blocks() {
		if err != nil {
			return res, fmt.Errorf("decoding %s: %w", path, err)
		}
		for c, pts := range block {
			res.Channels[c] = append(res.Channels[c], pts...)
		}
		res.Blocks++
	}
	return res, nil
}
