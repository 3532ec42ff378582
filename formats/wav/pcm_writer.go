// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WritePCM writes a canonical 44-byte-header PCM WAV. samples are
// interleaved; 8-bit samples are written unsigned (0..255), 16 and 32-bit
// samples signed little-endian. An odd-sized data chunk is followed by a
// zero pad byte that the chunk size does not count.
func WritePCM(w io.Writer, sampleRate, channels, bitsPerSample int, samples []int) error {
	if bitsPerSample != 8 && bitsPerSample != 16 && bitsPerSample != 32 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleWidth, bitsPerSample)
	}
	width := bitsPerSample / 8

	byteRate := uint32(sampleRate) * uint32(channels) * uint32(width)
	blockAlign := uint16(channels) * uint16(width)
	dataSize := uint32(len(samples) * width)
	pad := dataSize % 2
	riffSize := 36 + dataSize + pad

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitsPerSample))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*width)
	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*width]

		for j, s := range chunk {
			switch width {
			case 1:
				buf[j] = byte(s)
			case 2:
				binary.LittleEndian.PutUint16(buf[j*2:], uint16(int16(s)))
			case 4:
				binary.LittleEndian.PutUint32(buf[j*4:], uint32(int32(s)))
			}
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if pad == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}
	return WritePCM(w, sampleRate, 1, 16, ints)
}
