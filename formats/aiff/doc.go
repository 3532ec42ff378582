// SPDX-License-Identifier: EPL-2.0

// Package aiff provides the AIFF (Audio Interchange File Format) container
// reader.
//
// This package uses github.com/go-audio/aiff to parse the FORM, COMM and
// SSND chunks. Sample data is returned as raw big-endian bytes; 8-bit AIFF
// samples are signed.
//
// # Opening AIFF Files
//
// Opener satisfies waveform.Opener:
//
//	d := waveform.NewDecoder("audio.aif", aiff.Opener{}, waveform.Options{
//	    Kind: waveform.KindAIFF,
//	})
//
// Decoder works on any io.ReadSeeker:
//
//	c, err := aiff.Decoder{}.Decode(file)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrPCMDataNotFound: The SSND chunk is missing
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// Example:
//
//	c, err := decoder.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
package aiff
