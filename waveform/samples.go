// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"

	"github.com/ik5/wavpoints/utils"
)

// Unpack decodes count samples from raw according to p.
func Unpack(raw []byte, p FormatProfile, count int) ([]int, error) {
	if p.Width != 1 && p.Width != 2 && p.Width != 4 {
		return nil, fmt.Errorf("%w: %d-byte samples", ErrUnsupportedFormat, p.Width)
	}
	if want := count * p.Width; len(raw) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedFrameData, len(raw), want)
	}

	order := p.Endian()
	samples := make([]int, count)
	for i := range count {
		samples[i] = utils.SampleAt(raw[i*p.Width:], p.Width, p.Signed, order)
	}
	return samples, nil
}

// Deinterleave splits interleaved samples into one slice per channel.
// Sample i of channel c is samples[i*channels+c].
func Deinterleave(samples []int, channels int) [][]int {
	frames := len(samples) / channels
	out := make([][]int, channels)
	for c := range channels {
		ch := make([]int, frames)
		for i := range frames {
			ch[i] = samples[i*channels+c]
		}
		out[c] = ch
	}
	return out
}

// Decimate keeps samples 0, k, 2k, ... and drops the rest. No filtering is
// applied so frequencies above the new Nyquist rate alias.
func Decimate(samples []int, k int) []int {
	if k <= 1 {
		return samples
	}
	out := make([]int, 0, (len(samples)+k-1)/k)
	for i := 0; i < len(samples); i += k {
		out = append(out, samples[i])
	}
	return out
}

// SampleDecoder turns raw frame bytes into scaled per-channel points.
type SampleDecoder struct {
	mapper     Mapper
	channels   int
	decimation int
}

// NewSampleDecoder returns a decoder for channels interleaved channels.
// A decimation of 0 is treated as 1.
func NewSampleDecoder(m Mapper, channels, decimation int) (*SampleDecoder, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}
	if decimation == 0 {
		decimation = 1
	}
	if decimation < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDecimation, decimation)
	}
	return &SampleDecoder{mapper: m, channels: channels, decimation: decimation}, nil
}

// Decode unpacks frames frames from raw. start is the index of the first
// frame in the stream; x values are numbered from start+1.
//
// Returns one slice of points per channel, in channel order:
//
//	[
//	  [{X: 1, Y: 4}, ...], // channel 0
//	  [{X: 1, Y: 435}, ...], // channel 1
//	]
func (d *SampleDecoder) Decode(raw []byte, start, frames int) ([][]Point, error) {
	samples, err := Unpack(raw, d.mapper.Profile, frames*d.channels)
	if err != nil {
		return nil, err
	}

	out := make([][]Point, d.channels)
	for c, ch := range Deinterleave(samples, d.channels) {
		ch = Decimate(ch, d.decimation)
		points := make([]Point, len(ch))
		for i, s := range ch {
			points[i] = Point{
				X: d.mapper.X(start + i + 1),
				Y: d.mapper.Y(s, c),
			}
		}
		out[c] = points
	}
	return out, nil
}
