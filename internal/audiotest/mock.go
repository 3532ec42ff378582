// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/ik5/wavpoints/waveform"
)

// ErrOpenFailed is returned by a MockOpener configured to fail.
var ErrOpenFailed = errors.New("mock open failed")

// MockContainer is an in-memory waveform.Container over raw frame bytes.
type MockContainer struct {
	params waveform.ContainerParams
	data   []byte
	offset int
	closed bool

	// Short, when set, makes ReadFrames return this many bytes fewer than
	// requested.
	Short int
	// ReadErr, when set, is returned by ReadFrames.
	ReadErr error
	// CloseErr, when set, is returned by Close.
	CloseErr error
}

// NewMockContainer creates a container holding data, which must be frames
// of interleaved samples matching params.
func NewMockContainer(params waveform.ContainerParams, data []byte) *MockContainer {
	if params.CompressionType == "" {
		params.CompressionType = "NONE"
		params.CompressionName = "not compressed"
	}
	return &MockContainer{params: params, data: data}
}

// NewPCM16Container encodes interleaved 16-bit samples in the given byte order.
func NewPCM16Container(channels int, order binary.ByteOrder, samples []int16) *MockContainer {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		order.PutUint16(data[i*2:], uint16(s))
	}
	return NewMockContainer(waveform.ContainerParams{
		Channels:    channels,
		SampleWidth: 2,
		FrameRate:   8000,
		Frames:      len(samples) / channels,
	}, data)
}

// NewPCM8Container holds interleaved 8-bit samples as raw bytes.
func NewPCM8Container(channels int, samples []byte) *MockContainer {
	return NewMockContainer(waveform.ContainerParams{
		Channels:    channels,
		SampleWidth: 1,
		FrameRate:   8000,
		Frames:      len(samples) / channels,
	}, samples)
}

// NewPCM32Container encodes interleaved 32-bit samples in the given byte order.
func NewPCM32Container(channels int, order binary.ByteOrder, samples []int32) *MockContainer {
	data := make([]byte, len(samples)*4)
	for i, s := range samples {
		order.PutUint32(data[i*4:], uint32(s))
	}
	return NewMockContainer(waveform.ContainerParams{
		Channels:    channels,
		SampleWidth: 4,
		FrameRate:   8000,
		Frames:      len(samples) / channels,
	}, data)
}

func (m *MockContainer) Params() waveform.ContainerParams { return m.params }

func (m *MockContainer) ReadFrames(n int) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	size := n * m.params.FrameSize()
	end := min(m.offset+size-m.Short, len(m.data))
	if end < m.offset {
		end = m.offset
	}
	b := m.data[m.offset:end]
	m.offset = end
	return b, nil
}

func (m *MockContainer) Close() error {
	m.closed = true
	return m.CloseErr
}

// Closed reports whether Close was called.
func (m *MockContainer) Closed() bool { return m.closed }

// Reset rewinds the container so it can be opened again.
func (m *MockContainer) Reset() {
	m.offset = 0
	m.closed = false
}

// MockOpener hands out a container built by New for every Open call and
// records each container it opened.
type MockOpener struct {
	New  func() *MockContainer
	Fail bool

	mtx    sync.Mutex
	opened []*MockContainer
}

// OpenerFor returns an opener producing fresh copies of c.
func OpenerFor(c *MockContainer) *MockOpener {
	return &MockOpener{New: func() *MockContainer {
		cp := NewMockContainer(c.params, c.data)
		cp.Short = c.Short
		cp.ReadErr = c.ReadErr
		cp.CloseErr = c.CloseErr
		return cp
	}}
}

func (o *MockOpener) Open(path string) (waveform.Container, error) {
	if o.Fail {
		return nil, ErrOpenFailed
	}
	c := o.New()
	o.mtx.Lock()
	o.opened = append(o.opened, c)
	o.mtx.Unlock()
	return c, nil
}

// Opened returns the containers opened so far.
func (o *MockOpener) Opened() []*MockContainer {
	o.mtx.Lock()
	defer o.mtx.Unlock()
	return append([]*MockContainer(nil), o.opened...)
}

// AllClosed reports whether every opened container was closed.
func (o *MockOpener) AllClosed() bool {
	for _, c := range o.Opened() {
		if !c.Closed() {
			return false
		}
	}
	return true
}
