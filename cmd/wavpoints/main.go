// SPDX-License-Identifier: EPL-2.0

// Command wavpoints decodes WAV and AIFF files into waveform points.
//
// Usage:
//
//	wavpoints [flags] <command> [args]
//
// Commands:
//
//	decode  - Decode a file into per-channel points (JSON, YAML or msgpack)
//	info    - Show container parameters and the resolved sample format (YAML, JSON or styled text)
package main

import (
	"fmt"
	"os"

	"github.com/ik5/wavpoints/cmd/wavpoints/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
