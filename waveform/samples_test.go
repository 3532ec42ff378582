// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"slices"
	"testing"
)

func TestUnpack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     []byte
		profile FormatProfile
		count   int
		want    []int
	}{
		{
			name:    "unsigned 8-bit",
			raw:     []byte{0, 128, 255},
			profile: FormatProfile{Order: LittleEndian, Width: 1, Bias: 128},
			count:   3,
			want:    []int{0, 128, 255},
		},
		{
			name:    "signed 8-bit",
			raw:     []byte{0x00, 0x7F, 0x80, 0xFF},
			profile: FormatProfile{Order: BigEndian, Signed: true, Width: 1},
			count:   4,
			want:    []int{0, 127, -128, -1},
		},
		{
			name:    "16-bit little-endian",
			raw:     []byte{0x00, 0x40, 0x00, 0xC0, 0xFF, 0x7F},
			profile: FormatProfile{Order: LittleEndian, Signed: true, Width: 2},
			count:   3,
			want:    []int{16384, -16384, 32767},
		},
		{
			name:    "16-bit big-endian",
			raw:     []byte{0x40, 0x00, 0xC0, 0x00, 0x80, 0x00},
			profile: FormatProfile{Order: BigEndian, Signed: true, Width: 2},
			count:   3,
			want:    []int{16384, -16384, -32768},
		},
		{
			name:    "32-bit little-endian",
			raw:     []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80},
			profile: FormatProfile{Order: LittleEndian, Signed: true, Width: 4},
			count:   2,
			want:    []int{1, -2147483648},
		},
		{
			name:    "32-bit big-endian",
			raw:     []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE},
			profile: FormatProfile{Order: BigEndian, Signed: true, Width: 4},
			count:   2,
			want:    []int{2147483647, -2},
		},
		{
			name:    "empty",
			raw:     []byte{},
			profile: FormatProfile{Order: LittleEndian, Signed: true, Width: 2},
			count:   0,
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Unpack(tt.raw, tt.profile, tt.count)
			if err != nil {
				t.Fatalf("Unpack() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Unpack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnpack_Malformed(t *testing.T) {
	t.Parallel()

	p := FormatProfile{Order: LittleEndian, Signed: true, Width: 2}

	tests := []struct {
		name  string
		raw   []byte
		count int
	}{
		{"short", []byte{1, 2, 3}, 2},
		{"long", []byte{1, 2, 3, 4, 5, 6}, 2},
		{"odd byte", []byte{1}, 1},
		{"nothing", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Unpack(tt.raw, p, tt.count)
			if !errors.Is(err, ErrMalformedFrameData) {
				t.Errorf("Unpack() error = %v, want ErrMalformedFrameData", err)
			}
		})
	}
}

func TestUnpack_UnsupportedWidth(t *testing.T) {
	t.Parallel()

	for _, width := range []int{0, 3, 8} {
		p := FormatProfile{Order: LittleEndian, Signed: true, Width: width}
		raw := make([]byte, 2*width)
		if _, err := Unpack(raw, p, 2); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Unpack(width %d) error = %v, want ErrUnsupportedFormat", width, err)
		}
	}
}

func TestDeinterleave(t *testing.T) {
	t.Parallel()

	got := Deinterleave([]int{1, 2, 3, 4, 5, 6}, 2)
	if len(got) != 2 {
		t.Fatalf("Deinterleave() returned %d channels, want 2", len(got))
	}
	if !slices.Equal(got[0], []int{1, 3, 5}) {
		t.Errorf("channel 0 = %v, want [1 3 5]", got[0])
	}
	if !slices.Equal(got[1], []int{2, 4, 6}) {
		t.Errorf("channel 1 = %v, want [2 4 6]", got[1])
	}
}

func TestDeinterleave_Channels(t *testing.T) {
	t.Parallel()

	samples := []int{1, 2, 3, 4, 5, 6}

	mono := Deinterleave(samples, 1)
	if len(mono) != 1 || !slices.Equal(mono[0], samples) {
		t.Errorf("Deinterleave(mono) = %v, want [%v]", mono, samples)
	}

	three := Deinterleave(samples, 3)
	want := [][]int{{1, 4}, {2, 5}, {3, 6}}
	for c := range want {
		if !slices.Equal(three[c], want[c]) {
			t.Errorf("channel %d = %v, want %v", c, three[c], want[c])
		}
	}
}

func TestDecimate(t *testing.T) {
	t.Parallel()

	samples := make([]int, 10)
	for i := range samples {
		samples[i] = i * 10
	}

	tests := []struct {
		k    int
		want []int
	}{
		{1, []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}},
		{2, []int{0, 20, 40, 60, 80}},
		{3, []int{0, 30, 60, 90}},
		{4, []int{0, 40, 80}},
		{10, []int{0}},
		{25, []int{0}},
	}

	for _, tt := range tests {
		got := Decimate(samples, tt.k)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Decimate(k=%d) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestDecimate_Count(t *testing.T) {
	t.Parallel()

	for n := range 40 {
		samples := make([]int, n)
		for k := 1; k <= 9; k++ {
			want := (n + k - 1) / k
			if got := len(Decimate(samples, k)); got != want {
				t.Errorf("len(Decimate(n=%d, k=%d)) = %d, want %d", n, k, got, want)
			}
		}
	}
}

func TestNewSampleDecoder_Invalid(t *testing.T) {
	t.Parallel()

	m := NewMapper(FormatProfile{Order: LittleEndian, Signed: true, Width: 2}, 4, 0, 0)

	if _, err := NewSampleDecoder(m, 1, -1); !errors.Is(err, ErrInvalidDecimation) {
		t.Errorf("NewSampleDecoder(decimation=-1) error = %v, want ErrInvalidDecimation", err)
	}
	if _, err := NewSampleDecoder(m, 0, 1); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("NewSampleDecoder(channels=0) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := NewSampleDecoder(m, 1, 0); err != nil {
		t.Errorf("NewSampleDecoder(decimation=0) error = %v, want nil", err)
	}
}

func TestSampleDecoder_Decode(t *testing.T) {
	t.Parallel()

	p := FormatProfile{Order: LittleEndian, Signed: true, Width: 2}
	m := NewMapper(p, 4, 0, 0)
	d, err := NewSampleDecoder(m, 1, 1)
	if err != nil {
		t.Fatalf("NewSampleDecoder() error = %v", err)
	}

	// 0, 16384, -16384, 0
	raw := []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0xC0, 0x00, 0x00}
	got, err := d.Decode(raw, 0, 4)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []Point{{1, 32767.5}, {2, 16383.75}, {3, 49151.25}, {4, 32767.5}}
	if len(got) != 1 || !slices.Equal(got[0], want) {
		t.Errorf("Decode() = %v, want [%v]", got, want)
	}
}

func TestSampleDecoder_Decode_Stereo(t *testing.T) {
	t.Parallel()

	p := FormatProfile{Order: BigEndian, Signed: true, Width: 1}
	m := NewMapper(p, 3, 0, 100)
	d, err := NewSampleDecoder(m, 2, 1)
	if err != nil {
		t.Fatalf("NewSampleDecoder() error = %v", err)
	}

	// L: 0, 64, -64  R: -128, 0, 127
	raw := []byte{0x00, 0x80, 0x40, 0x00, 0xC0, 0x7F}
	got, err := d.Decode(raw, 0, 3)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// left band centered on 50, right on 150
	want := [][]Point{
		{{1, 50}, {2, 25}, {3, 75}},
		{{1, 200}, {2, 150}, {3, 100.390625}},
	}
	for c := range want {
		if !slices.Equal(got[c], want[c]) {
			t.Errorf("channel %d = %v, want %v", c, got[c], want[c])
		}
	}
}

func TestSampleDecoder_Decode_StartOffset(t *testing.T) {
	t.Parallel()

	p := FormatProfile{Order: LittleEndian, Signed: true, Width: 2}
	m := NewMapper(p, 100, 0, 0)
	d, _ := NewSampleDecoder(m, 1, 1)

	got, err := d.Decode(make([]byte, 6), 40, 3)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	for i, pt := range got[0] {
		if want := float64(41 + i); pt.X != want {
			t.Errorf("point %d X = %v, want %v", i, pt.X, want)
		}
	}
}

func TestSampleDecoder_Decode_Decimation(t *testing.T) {
	t.Parallel()

	p := FormatProfile{Order: LittleEndian, Signed: false, Width: 1, Bias: 128}
	m := NewMapper(p, 10, 0, 0)
	d, _ := NewSampleDecoder(m, 1, 3)

	raw := []byte{128, 1, 2, 255, 4, 5, 0, 7, 8, 128}
	got, err := d.Decode(raw, 0, 10)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// retained: local indices 0, 3, 6, 9 numbered consecutively
	want := []Point{{1, 127.5}, {2, 0.99609375}, {3, 255}, {4, 127.5}}
	if !slices.Equal(got[0], want) {
		t.Errorf("Decode() = %v, want %v", got[0], want)
	}
}

func TestSampleDecoder_Decode_Malformed(t *testing.T) {
	t.Parallel()

	p := FormatProfile{Order: LittleEndian, Signed: true, Width: 2}
	m := NewMapper(p, 4, 0, 0)
	d, _ := NewSampleDecoder(m, 2, 1)

	// two stereo frames need 8 bytes
	_, err := d.Decode(make([]byte, 6), 0, 2)
	if !errors.Is(err, ErrMalformedFrameData) {
		t.Errorf("Decode() error = %v, want ErrMalformedFrameData", err)
	}
}

func BenchmarkSampleDecoder_Decode(b *testing.B) {
	p := FormatProfile{Order: LittleEndian, Signed: true, Width: 2}
	m := NewMapper(p, 44100, 800, 100)
	d, _ := NewSampleDecoder(m, 2, 1)
	raw := make([]byte, 4096*2*2)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = d.Decode(raw, 0, 4096)
	}
}
