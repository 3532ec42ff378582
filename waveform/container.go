// SPDX-License-Identifier: EPL-2.0

package waveform

import "fmt"

// ContainerParams are the parameters a container reports when opened.
type ContainerParams struct {
	Channels        int    `json:"channels" yaml:"channels" msgpack:"channels"`
	SampleWidth     int    `json:"sample_width" yaml:"sample_width" msgpack:"sample_width"` // bytes per sample
	FrameRate       int    `json:"frame_rate" yaml:"frame_rate" msgpack:"frame_rate"`
	Frames          int    `json:"frames" yaml:"frames" msgpack:"frames"`
	CompressionType string `json:"compression_type" yaml:"compression_type" msgpack:"compression_type"`
	CompressionName string `json:"compression_name" yaml:"compression_name" msgpack:"compression_name"`
}

// FrameSize is the size in bytes of one frame (one sample per channel).
func (p ContainerParams) FrameSize() int {
	return p.Channels * p.SampleWidth
}

func (p ContainerParams) String() string {
	return fmt.Sprintf("%d ch, %d bytes/sample, %d Hz, %d frames (%s)",
		p.Channels, p.SampleWidth, p.FrameRate, p.Frames, p.CompressionType)
}

// Container is an open audio container yielding raw interleaved frame bytes.
type Container interface {
	// Params reports the container parameters read at open time.
	Params() ContainerParams
	// ReadFrames reads up to n frames of interleaved sample bytes.
	// Fewer bytes may be returned near the end of the stream.
	ReadFrames(n int) ([]byte, error)
	// Close releases the underlying file.
	Close() error
}

// Opener opens a Container for a path.
type Opener interface {
	Open(path string) (Container, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (Container, error)

func (f OpenerFunc) Open(path string) (Container, error) { return f(path) }
