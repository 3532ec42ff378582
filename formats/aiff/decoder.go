// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavpoints/waveform"
)

// container exposes the SSND chunk of an AIFF file as raw frames.
type container struct {
	pcm    io.Reader
	closer io.Closer
	params waveform.ContainerParams
	// swap turns little-endian (sowt) samples big-endian on read.
	swap bool
}

func (c *container) Params() waveform.ContainerParams { return c.params }

func (c *container) ReadFrames(n int) ([]byte, error) {
	buf := make([]byte, n*c.params.FrameSize())
	got, err := io.ReadFull(c.pcm, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w", err)
	}
	buf = buf[:got]
	if c.swap {
		swapSamples(buf, c.params.SampleWidth)
	}
	return buf, nil
}

func swapSamples(b []byte, width int) {
	if width < 2 {
		return
	}
	for i := 0; i+width <= len(b); i += width {
		slices.Reverse(b[i : i+width])
	}
}

func (c *container) Close() error {
	if c.closer == nil {
		return nil
	}
	if err := c.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// header is what the container needs from the COMM chunk.
type header struct {
	format   *goaudio.Format
	bitDepth int
	frames   int
	// encoding is the AIFC compression type, zero for plain AIFF.
	encoding     [4]byte
	encodingName string
}

func newContainer(h header, pcm io.Reader, closer io.Closer) (*container, error) {
	if h.format == nil || h.format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	c := &container{
		pcm:    pcm,
		closer: closer,
		params: waveform.ContainerParams{
			Channels:        h.format.NumChannels,
			SampleWidth:     (h.bitDepth + 7) / 8,
			FrameRate:       h.format.SampleRate,
			Frames:          h.frames,
			CompressionType: "NONE",
			CompressionName: "not compressed",
		},
	}

	switch string(h.encoding[:]) {
	case "\x00\x00\x00\x00":
	case "NONE", "twos":
		c.params.CompressionType = string(h.encoding[:])
		c.params.CompressionName = h.encodingName
	case "sowt":
		c.params.CompressionType = "sowt"
		c.params.CompressionName = h.encodingName
		c.swap = true
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, h.encoding[:])
	}
	return c, nil
}

type Decoder struct{}

// Decode parses rs with go-audio/aiff and positions it at the sound data.
// The returned container does not close rs.
func (Decoder) Decode(rs io.ReadSeeker) (waveform.Container, error) {
	return decode(rs, nil)
}

func decode(rs io.ReadSeeker, closer io.Closer) (waveform.Container, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()
	format := dec.Format()

	size, err := soundData(rs)
	if err != nil {
		return nil, err
	}

	h := header{
		format:       format,
		bitDepth:     int(dec.BitDepth),
		frames:       int(dec.NumSampleFrames),
		encoding:     dec.Encoding,
		encodingName: dec.EncodingName,
	}
	if format != nil {
		if frameSize := int64(format.NumChannels * ((h.bitDepth + 7) / 8)); frameSize > 0 {
			h.frames = min(h.frames, int(size/frameSize))
		}
	}

	c, err := newContainer(h, io.LimitReader(rs, size), closer)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// soundData leaves rs at the first sample byte of the SSND chunk and
// returns how many sample bytes follow, capped at what rs holds.
func soundData(rs io.ReadSeeker) (int64, error) {
	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
	}
	// skip the FORM header
	if _, err := rs.Seek(12, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
	}

	var hdr [8]byte
	for {
		if _, err := io.ReadFull(rs, hdr[:]); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
		}
		size := int64(binary.BigEndian.Uint32(hdr[4:]))

		if string(hdr[:4]) != "SSND" {
			if _, err := rs.Seek(size+size%2, io.SeekCurrent); err != nil {
				return 0, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
			}
			continue
		}

		// offset and block size precede the samples
		var ssnd [8]byte
		if _, err := io.ReadFull(rs, ssnd[:]); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
		}
		offset := int64(binary.BigEndian.Uint32(ssnd[:4]))
		pos, err := rs.Seek(offset, io.SeekCurrent)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
		}
		return max(0, min(size-8-offset, end-pos)), nil
	}
}

// Opener opens AIFF files from disk.
type Opener struct{}

func (Opener) Open(path string) (waveform.Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	c, err := decode(f, f)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}
	return c, nil
}
