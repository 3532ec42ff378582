// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavpoints/waveform"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// container exposes the data chunk of a WAV file as raw frames.
type container struct {
	pcm    io.Reader
	closer io.Closer
	params waveform.ContainerParams
}

func (c *container) Params() waveform.ContainerParams { return c.params }

func (c *container) ReadFrames(n int) ([]byte, error) {
	buf := make([]byte, n*c.params.FrameSize())
	got, err := io.ReadFull(c.pcm, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// short read at the end of the data chunk
		return buf[:got], nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return buf, nil
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

// header is what the container needs from the parsed fmt and data chunks.
type header struct {
	audioFormat   int
	subFormat     int
	channels      int
	sampleRate    int
	bitsPerSample int
	dataSize      int
}

func newContainer(h header, pcm io.Reader, closer io.Closer) (*container, error) {
	switch {
	case h.audioFormat == formatExtensible && h.subFormat != formatPCM:
		return nil, fmt.Errorf("%w: extensible sub-format %#x", ErrUnsupportedCompression, h.subFormat)
	case h.audioFormat != formatPCM && h.audioFormat != formatExtensible:
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedCompression, h.audioFormat)
	}
	if h.channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotWavFile, h.channels)
	}

	width := (h.bitsPerSample + 7) / 8
	frames := 0
	if width > 0 {
		frames = h.dataSize / (h.channels * width)
	}

	return &container{
		pcm:    pcm,
		closer: closer,
		params: waveform.ContainerParams{
			Channels:        h.channels,
			SampleWidth:     width,
			FrameRate:       h.sampleRate,
			Frames:          frames,
			CompressionType: "NONE",
			CompressionName: "not compressed",
		},
	}, nil
}

// Decoder reads the headers of a WAV stream and positions it at the PCM data.
type Decoder struct{}

// Decode parses rs with go-audio/wav. The returned container does not
// close rs.
func (Decoder) Decode(rs io.ReadSeeker) (waveform.Container, error) {
	return decode(rs, nil)
}

func decode(rs io.ReadSeeker, closer io.Closer) (waveform.Container, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	var format *goaudio.Format = dec.Format()
	if format == nil {
		return nil, ErrNotWavFile
	}

	l, err := scanChunks(rs)
	if err != nil {
		return nil, err
	}
	h := header{
		audioFormat:   int(dec.WavAudioFormat),
		subFormat:     l.subFormat,
		channels:      format.NumChannels,
		sampleRate:    format.SampleRate,
		bitsPerSample: int(dec.BitDepth),
		dataSize:      int(l.dataSize),
	}

	if _, err := rs.Seek(l.dataStart, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
	}
	c, err := newContainer(h, io.LimitReader(rs, l.dataSize), closer)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// extensible sub-format GUIDs share this tail after the 2-byte format code.
var subFormatTail = [14]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}

// layout is where the samples live in a RIFF/WAVE stream.
type layout struct {
	subFormat int
	dataStart int64
	// dataSize is the unpadded data chunk size, capped at the bytes present.
	dataSize int64
}

// scanChunks walks the chunk list from the start of rs. Chunk sizes are
// taken as declared; the pad byte after an odd-sized chunk is skipped but
// never counted as sample data.
func scanChunks(rs io.ReadSeeker) (layout, error) {
	var l layout

	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return l, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
	}
	if _, err := rs.Seek(12, io.SeekStart); err != nil {
		return l, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
	}

	p := riff.New(rs)
	for {
		id, size, err := p.IDnSize()
		if err != nil {
			return l, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
		}

		switch id {
		case riff.DataFormatID:
			pos, err := rs.Seek(0, io.SeekCurrent)
			if err != nil {
				return l, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
			}
			l.dataStart = pos
			l.dataSize = min(int64(size), end-pos)
			return l, nil

		case riff.FmtID:
			body := make([]byte, size)
			if _, err := io.ReadFull(rs, body); err != nil {
				return l, fmt.Errorf("%w: fmt chunk: %w", ErrNotWavFile, err)
			}
			l.subFormat = extensibleSubFormat(body)
			if size%2 == 1 {
				if _, err := rs.Seek(1, io.SeekCurrent); err != nil {
					return l, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
				}
			}

		default:
			if _, err := rs.Seek(int64(size)+int64(size%2), io.SeekCurrent); err != nil {
				return l, fmt.Errorf("%w: %w", ErrPCMDataNotFound, err)
			}
		}
	}
}

// extensibleSubFormat returns the format code held in the SubFormat GUID
// of a WAVE_FORMAT_EXTENSIBLE fmt body, or -1 when the body has none.
func extensibleSubFormat(body []byte) int {
	if len(body) < 40 || binary.LittleEndian.Uint16(body[0:2]) != formatExtensible {
		return -1
	}
	guid := body[24:40]
	if [14]byte(guid[2:]) != subFormatTail {
		return -1
	}
	return int(binary.LittleEndian.Uint16(guid[0:2]))
}

// Opener opens WAV files from disk.
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
