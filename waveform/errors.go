// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	// ErrContainerOpen indicates the container reader could not open the file.
	ErrContainerOpen = errors.New("cannot open audio container")

	// ErrUnsupportedFormat indicates a sample byte width other than 1, 2 or 4.
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// ErrMalformedFrameData indicates the container returned a byte count that
	// does not match frames * channels * width.
	ErrMalformedFrameData = errors.New("malformed frame data")

	// ErrNotOpen is returned by Next when the decoder was never opened or was closed.
	ErrNotOpen = errors.New("decoder is not open")

	// ErrAlreadyOpen is returned by Open on a decoder that holds a container.
	ErrAlreadyOpen = errors.New("decoder is already open")

	ErrInvalidDecimation = errors.New("decimation must be >= 1")
	ErrInvalidBlockSize  = errors.New("block size must be >= 0")

	// ErrUnknownFormat indicates no container reader is registered for a format key.
	ErrUnknownFormat = errors.New("unknown container format")

	// ErrStopWalk can be returned from a Walk callback to stop iterating
	// without reporting an error.
	ErrStopWalk = errors.New("stop walk")
)
