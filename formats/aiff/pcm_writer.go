// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// WritePCM encodes interleaved samples as an uncompressed big-endian AIFF
// file. w must be seekable so the encoder can patch the chunk sizes once
// all frames are written.
func WritePCM(w io.WriteSeeker, sampleRate, channels, bitsPerSample int, samples []int) error {
	if bitsPerSample != 8 && bitsPerSample != 16 && bitsPerSample != 32 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleWidth, bitsPerSample)
	}

	enc := aiff.NewEncoder(w, sampleRate, bitsPerSample, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: bitsPerSample,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
