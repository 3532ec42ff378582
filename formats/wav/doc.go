// SPDX-License-Identifier: EPL-2.0

// Package wav provides the WAV container reader and a PCM WAV writer.
//
// Headers are parsed with github.com/go-audio/wav; the sample data is
// handed to the waveform package as raw interleaved bytes.
//
// # Supported Formats
//
// Currently supported:
//   - PCM (format tag 1) and WAVE_FORMAT_EXTENSIBLE
//   - Any bit depth is reported; the waveform package accepts 8, 16 and 32
//   - Any channel count and sample rate
//
// # Opening WAV Files
//
// Opener opens a file from disk and satisfies waveform.Opener:
//
//	d := waveform.NewDecoder("audio.wav", wav.Opener{}, waveform.Options{})
//
// Decoder works on any io.ReadSeeker:
//
//	c, err := wav.Decoder{}.Decode(bytes.NewReader(data))
//	raw, err := c.ReadFrames(1024)
//
// # Writing WAV Files
//
// Use WritePCM to create WAV files:
//
//	samples := []int{0, 16384, -16384, 0}
//	file, _ := os.Create("output.wav")
//	err := wav.WritePCM(file, 8000, 1, 16, samples)
//
// WriteWAV16 is a shorthand for mono 16-bit files.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrPCMDataNotFound: No data chunk follows the fmt chunk
//   - ErrUnsupportedCompression: The format tag is not PCM
//   - ErrInvalidSampleWidth: WritePCM was asked for an unsupported bit depth
//
// # File Format
//
// WAV files written by this package consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: interleaved samples
package wav
