// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"testing"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrPCMDataNotFound", ErrPCMDataNotFound, "WAV data chunk not found"},
		{"ErrUnsupportedCompression", ErrUnsupportedCompression, "unsupported WAV compression"},
		{"ErrInvalidSampleWidth", ErrInvalidSampleWidth, "bits per sample must be 8, 16 or 32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.msg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.msg)
			}

			wrapped := errors.Join(tt.err, errors.New("additional context"))
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is() failed for wrapped %s", tt.name)
			}
		})
	}
}
