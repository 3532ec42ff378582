// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
)

// State is the lifecycle state of a Decoder.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Decoder streams a container file as per-channel point sequences.
//
// Call Open, then Next until it returns io.EOF, then Close. Close resets
// the decoder so the cycle can be repeated. A Decoder is not safe for
// concurrent use.
type Decoder struct {
	path   string
	opener Opener
	opts   Options
	log    *slog.Logger

	c       Container
	params  ContainerParams
	profile FormatProfile
	mapper  Mapper
	samples *SampleDecoder
	state   State
	// index of the next frame to read. The container's own position is
	// implementation defined and never consulted.
	index int
}

// NewDecoder returns a closed decoder for path. opener supplies the
// container reader matching opts.Kind.
func NewDecoder(path string, opener Opener, opts Options) *Decoder {
	opts = opts.withDefaults()
	d := &Decoder{
		path:   path,
		opener: opener,
		opts:   opts,
		log:    opts.Logger.With("path", path),
	}
	d.log.Info("decoder initialized", "kind", opts.Kind)
	return d
}

// Open acquires the container and resolves the sample format, width and
// height. The container is released if any step fails.
func (d *Decoder) Open() (err error) {
	if d.state != StateClosed {
		return ErrAlreadyOpen
	}
	if err := d.opts.Validate(); err != nil {
		return err
	}

	c, err := d.opener.Open(d.path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrContainerOpen, d.path, err)
	}
	defer func() {
		if err != nil {
			if cerr := c.Close(); cerr != nil {
				err = errors.Join(err, cerr)
			}
		}
	}()

	params := c.Params()
	profile, err := ResolveProfile(params.SampleWidth, d.opts.Kind, d.opts.ByteOrder)
	if err != nil {
		return err
	}
	d.log.Debug("sample format resolved", "profile", profile.String())

	mapper := NewMapper(profile, params.Frames, d.opts.MaxWidth, d.opts.MaxHeight)
	samples, err := NewSampleDecoder(mapper, params.Channels, d.opts.Decimation)
	if err != nil {
		return err
	}
	d.log.Debug("height set", "height", mapper.Height, "width", mapper.Width)

	d.c = c
	d.params = params
	d.profile = profile
	d.mapper = mapper
	d.samples = samples
	d.index = 0
	d.state = StateOpen
	d.log.Info("decoder opened", "params", params.String())
	return nil
}

// Next decodes the next Options.BlockSize frames.
func (d *Decoder) Next() ([][]Point, error) {
	return d.NextBlock(d.opts.BlockSize)
}

// NextBlock decodes up to blockSize frames, or all remaining frames when
// blockSize is 0. It returns io.EOF once every frame has been consumed.
func (d *Decoder) NextBlock(blockSize int) ([][]Point, error) {
	switch d.state {
	case StateClosed:
		return nil, ErrNotOpen
	case StateExhausted:
		return nil, io.EOF
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBlockSize, blockSize)
	}

	remaining := d.params.Frames - d.index
	frames := remaining
	if blockSize > 0 {
		frames = min(blockSize, remaining)
	}
	if frames <= 0 {
		d.log.Debug("no more frames", "index", d.index)
		d.state = StateExhausted
		return nil, io.EOF
	}

	raw, err := d.c.ReadFrames(frames)
	if err != nil {
		return nil, fmt.Errorf("reading %d frames at %d: %w", frames, d.index, err)
	}
	d.log.Debug("read frames", "frames", frames, "index", d.index)

	points, err := d.samples.Decode(raw, d.index, frames)
	if err != nil {
		return nil, fmt.Errorf("frames %d-%d: %w", d.index, d.index+frames, err)
	}
	d.index += frames
	return points, nil
}

// Blocks yields successive blocks until end of stream. Iteration stops
// after the first error.
func (d *Decoder) Blocks() iter.Seq2[[][]Point, error] {
	return func(yield func([][]Point, error) bool) {
		for {
			block, err := d.Next()
			// end of stream is never wrapped; a wrapped io.EOF is a read error
			if err == io.EOF {
				return
			}
			if !yield(block, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the container and resets the decoder. Closing a closed
// decoder is a no-op.
func (d *Decoder) Close() error {
	if d.state == StateClosed {
		return nil
	}
	err := d.c.Close()
	d.reset()
	d.log.Info("decoder closed")
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (d *Decoder) reset() {
	d.c = nil
	d.params = ContainerParams{}
	d.profile = FormatProfile{}
	d.mapper = Mapper{}
	d.samples = nil
	d.index = 0
	d.state = StateClosed
}

func (d *Decoder) Path() string            { return d.path }
func (d *Decoder) State() State            { return d.state }
func (d *Decoder) Params() ContainerParams { return d.params }
func (d *Decoder) Profile() FormatProfile  { return d.profile }
func (d *Decoder) Width() int              { return d.mapper.Width }
func (d *Decoder) Height() int             { return d.mapper.Height }

// FrameIndex is the number of frames consumed since Open.
func (d *Decoder) FrameIndex() int { return d.index }
