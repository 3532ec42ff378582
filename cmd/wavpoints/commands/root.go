// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// NewRootCommand builds the command tree. Output and logs go to the
// command's out and err writers.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wavpoints",
		Short: "Decode WAV and AIFF files into waveform points",
		Long: `wavpoints - decode PCM audio files into coordinate points for plotting.

Supported containers:
  wav   8-bit unsigned, 16 and 32-bit signed PCM (little-endian)
  aiff  8, 16 and 32-bit signed PCM (big-endian)

Examples:
  # Whole file, scaled into an 800x100 box per channel
  wavpoints decode --max-width 800 --max-height 100 song.wav

  # Stream 4096 frames at a time, keep every 10th sample, write YAML
  wavpoints decode -b 4096 -d 10 --output yaml -o points.yaml song.aif

  # Options from a file, overridden by flags
  wavpoints decode -f options.yaml --decimation 4 song.wav

  # Container parameters as a styled summary
  wavpoints info --output text song.wav`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newDecodeCommand())
	root.AddCommand(newInfoCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
