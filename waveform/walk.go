// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"fmt"
)

// Walk opens path, calls fn for every decoded block and closes the
// decoder however iteration ends. Returning ErrStopWalk from fn stops
// early without an error.
func Walk(path string, opener Opener, opts Options, fn func(block [][]Point) error) (err error) {
	d := NewDecoder(path, opener, opts)
	if err := d.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := d.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	for block, err := range d.Blocks() {
		if err != nil {
			return err
		}
		if err := fn(block); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil
			}
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// Collect decodes the whole file and concatenates the blocks per channel.
func Collect(path string, opener Opener, opts Options) ([][]Point, error) {
	var out [][]Point
	err := Walk(path, opener, opts, func(block [][]Point) error {
		if out == nil {
			out = make([][]Point, len(block))
		}
		for c, pts := range block {
			out[c] = append(out[c], pts...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
