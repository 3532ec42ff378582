// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"log/slog"
)

// Options configure a Decoder.
type Options struct {
	// Kind selects the 8-bit signedness and default byte order.
	Kind ContainerKind `json:"kind" yaml:"kind"`
	// ByteOrder overrides the container's byte order for 16 and 32-bit
	// samples. Only needed for big-endian WAV or little-endian AIFF.
	ByteOrder ByteOrder `json:"byte_order" yaml:"byte_order"`
	// MaxWidth caps the largest x value. <= 0 leaves x unscaled.
	MaxWidth int `json:"max_width" yaml:"max_width"`
	// MaxHeight caps the height of each channel's band. <= 0 uses the
	// full range of the bit depth.
	MaxHeight int `json:"max_height" yaml:"max_height"`
	// BlockSize is the number of frames Next reads. 0 reads the whole file.
	BlockSize int `json:"block_size" yaml:"block_size"`
	// Decimation keeps one of every Decimation samples. 0 means 1.
	Decimation int `json:"decimation" yaml:"decimation"`

	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (o Options) withDefaults() Options {
	if o.Decimation == 0 {
		o.Decimation = 1
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Validate reports option values that can never decode.
func (o Options) Validate() error {
	if o.Decimation < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDecimation, o.Decimation)
	}
	if o.BlockSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBlockSize, o.BlockSize)
	}
	return nil
}
