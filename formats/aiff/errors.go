// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrPCMDataNotFound indicates the SSND chunk could not be located
	ErrPCMDataNotFound = errors.New("AIFF sound data chunk not found")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrUnsupportedCompression indicates an AIFC compression type other
	// than linear PCM
	ErrUnsupportedCompression = errors.New("unsupported AIFF compression")

	ErrInvalidSampleWidth = errors.New("bits per sample must be 8, 16 or 32")
)
