// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWritePCM_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		bits     int
		samples  []int
	}{
		{"mono 16-bit", 44100, 1, 16, []int{100, 200, 300, 400}},
		{"stereo 16-bit", 8000, 2, 16, []int{1, -1, 2, -2}},
		{"stereo 8-bit", 8000, 2, 8, []int{128, 255, 0, 128}},
		{"mono 32-bit", 48000, 1, 32, []int{1 << 30, -(1 << 30)}},
		{"mono 8-bit odd", 8000, 1, 8, []int{128, 200, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WritePCM(buf, tt.rate, tt.channels, tt.bits, tt.samples); err != nil {
				t.Fatalf("WritePCM() error = %v", err)
			}

			data := buf.Bytes()
			width := tt.bits / 8
			dataSize := len(tt.samples) * width
			pad := dataSize % 2
			if len(data) != 44+dataSize+pad {
				t.Fatalf("file size = %d, want %d", len(data), 44+dataSize+pad)
			}
			if pad == 1 && data[len(data)-1] != 0 {
				t.Errorf("pad byte = %#x, want 0", data[len(data)-1])
			}

			if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
				t.Errorf("RIFF/WAVE markers = %q %q", data[0:4], data[8:12])
			}
			if string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
				t.Errorf("chunk ids = %q %q", data[12:16], data[36:40])
			}

			le := binary.LittleEndian
			checks := []struct {
				field string
				got   int
				want  int
			}{
				{"riff size", int(le.Uint32(data[4:8])), 36 + dataSize + pad},
				{"format tag", int(le.Uint16(data[20:22])), formatPCM},
				{"channels", int(le.Uint16(data[22:24])), tt.channels},
				{"sample rate", int(le.Uint32(data[24:28])), tt.rate},
				{"byte rate", int(le.Uint32(data[28:32])), tt.rate * tt.channels * width},
				{"block align", int(le.Uint16(data[32:34])), tt.channels * width},
				{"bits per sample", int(le.Uint16(data[34:36])), tt.bits},
				{"data size", int(le.Uint32(data[40:44])), dataSize},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %d, want %d", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestWritePCM_SampleEncoding(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WritePCM(buf, 8000, 1, 16, []int{-2, 258}); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}
	want := []byte{0xfe, 0xff, 0x02, 0x01}
	if got := buf.Bytes()[44:]; !bytes.Equal(got, want) {
		t.Errorf("16-bit samples = % x, want % x", got, want)
	}

	buf.Reset()
	if err := WritePCM(buf, 8000, 1, 8, []int{0, 128, 255, 7}); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}
	want = []byte{0, 128, 255, 7}
	if got := buf.Bytes()[44:]; !bytes.Equal(got, want) {
		t.Errorf("8-bit samples = % x, want % x", got, want)
	}
}

func TestWritePCM_LargeInput(t *testing.T) {
	t.Parallel()

	// spans several write chunks
	samples := make([]int, 20000)
	for i := range samples {
		samples[i] = i % 1000
	}

	buf := new(bytes.Buffer)
	if err := WritePCM(buf, 8000, 1, 16, samples); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}

	data := buf.Bytes()[44:]
	for _, i := range []int{0, 8191, 8192, 16384, 19999} {
		if got := int(int16(binary.LittleEndian.Uint16(data[i*2:]))); got != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got, samples[i])
		}
	}
}

func TestWritePCM_InvalidBitDepth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{0, 4, 12, 24, 64} {
		err := WritePCM(new(bytes.Buffer), 8000, 1, bits, []int{0})
		if !errors.Is(err, ErrInvalidSampleWidth) {
			t.Errorf("WritePCM(bits=%d) error = %v, want ErrInvalidSampleWidth", bits, err)
		}
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, []int16{}); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	// header only
	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44", buf.Len())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestWritePCM_WriteError(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(failingWriter{}, 8000, []int16{1, 2}); err == nil {
		t.Error("WriteWAV16() error = nil, want write error")
	}
}
