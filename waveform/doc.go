// SPDX-License-Identifier: EPL-2.0

// Package waveform decodes PCM sample data into per-channel point
// sequences for waveform plotting.
//
// The package contains the decode pipeline building blocks:
//   - Container and Opener, the capability a format reader provides
//   - FormatProfile for sample width, signedness and byte order
//   - Mapper and the ScaleX/ScaleY functions for coordinate scaling
//   - SampleDecoder for unpacking, de-interleaving and decimation
//   - Decoder, which streams a file block by block
//   - Registry for container reader registration
//
// # Decoding
//
// A Decoder is opened, read until io.EOF and closed:
//
//	d := waveform.NewDecoder("audio.wav", wav.Opener{}, waveform.Options{
//	    MaxWidth:  800,
//	    MaxHeight: 100,
//	    BlockSize: 4096,
//	})
//	if err := d.Open(); err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	for {
//	    channels, err := d.Next()
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // channels[c] holds the points of channel c
//	}
//
// Walk and Collect wrap this loop and always close the decoder.
//
// # Coordinates
//
// x is the 1-based frame number, scaled down so that it never exceeds
// MaxWidth. y is the sample value scaled into a band of height Height,
// inverted so that positive samples move up in a y-down coordinate system
// (SVG, screen). Channel c is centered on Height*c + Height/2 so channels
// stack without overlapping.
//
// # Decimation
//
// Decimation keeps one sample of every k and drops the rest. No low-pass
// filter is applied first, so high frequencies alias. x values of the
// kept samples are numbered consecutively.
//
// # Supported Formats
//
//   - 8-bit unsigned WAV
//   - 8-bit signed AIFF
//   - 16-bit and 32-bit signed, little-endian WAV and big-endian AIFF
//
// Other sample widths fail Open with ErrUnsupportedFormat.
package waveform
