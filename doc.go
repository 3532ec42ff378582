// SPDX-License-Identifier: EPL-2.0

// Package wavpoints turns PCM audio files into per-channel coordinate
// points for waveform plotting.
//
// It reads WAV and AIFF containers, scales samples into a width/height
// envelope and optionally decimates them. It is designed to be simple to
// use while streaming large files block by block.
//
// # Supported Formats
//
// The package supports the following containers:
//   - WAV (8-bit unsigned, 16 and 32-bit signed PCM) via formats/wav
//   - AIFF (8, 16 and 32-bit signed PCM) via formats/aiff
//
// # Quick Start
//
// The simplest way to get points is DecodeFile:
//
//	channels, err := wavpoints.DecodeFile("audio.wav", waveform.Options{
//	    MaxWidth:  800,
//	    MaxHeight: 100,
//	})
//
//	// channels[0] holds the points of the first channel
//
// # Streaming
//
// For large files, decode block by block with the waveform package:
//
//	d, err := wavpoints.NewDecoder("audio.aif", waveform.Options{BlockSize: 4096})
//	if err := d.Open(); err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	for block, err := range d.Blocks() {
//	    // block[c] holds the next points of channel c
//	}
//
// # Container Readers
//
// The container kind is picked from the file extension through
// DefaultRegistry. Readers can also be used directly:
//
//	d := waveform.NewDecoder(path, wav.Opener{}, waveform.Options{Kind: waveform.KindWAV})
//
// See the individual subpackages for more detailed documentation.
package wavpoints
