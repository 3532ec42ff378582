// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile             = errors.New("not a WAV file")
	ErrPCMDataNotFound        = errors.New("WAV data chunk not found")
	ErrUnsupportedCompression = errors.New("unsupported WAV compression")
	ErrInvalidSampleWidth     = errors.New("bits per sample must be 8, 16 or 32")
)
