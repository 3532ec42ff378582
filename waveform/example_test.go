// SPDX-License-Identifier: EPL-2.0

package waveform_test

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/wavpoints/internal/audiotest"
	"github.com/ik5/wavpoints/waveform"
)

// Example demonstrates the open, next, close cycle.
func Example() {
	c := audiotest.NewPCM16Container(1, binary.LittleEndian, []int16{0, 16384, -16384, 0})

	d := waveform.NewDecoder("tone.wav", audiotest.OpenerFor(c), waveform.Options{
		MaxHeight: 100,
		Logger:    quiet,
	})
	if err := d.Open(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer d.Close()

	fmt.Printf("Profile: %s\n", d.Profile())
	fmt.Printf("Height: %d\n", d.Height())

	for {
		block, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(block[0])
	}
	// Output:
	// Profile: signed 16-bit little-endian
	// Height: 100
	// [(1, 50) (2, 25) (3, 75) (4, 50)]
}

// ExampleWalk demonstrates blockwise decoding with decimation.
func ExampleWalk() {
	samples := make([]int16, 20)
	c := audiotest.NewPCM16Container(2, binary.LittleEndian, samples)

	opts := waveform.Options{BlockSize: 4, Decimation: 2, Logger: quiet}
	err := waveform.Walk("stereo.wav", audiotest.OpenerFor(c), opts, func(block [][]waveform.Point) error {
		fmt.Printf("channels: %d, points: %d, first x: %g\n", len(block), len(block[0]), block[0][0].X)
		return nil
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	// Output:
	// channels: 2, points: 2, first x: 1
	// channels: 2, points: 2, first x: 5
	// channels: 2, points: 1, first x: 9
}

func ExampleResolveProfile() {
	for _, kind := range []waveform.ContainerKind{waveform.KindWAV, waveform.KindAIFF} {
		p, err := waveform.ResolveProfile(1, kind, waveform.ByteOrderAuto)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%s: %s\n", kind, p)
	}
	// Output:
	// wav: unsigned 8-bit little-endian
	// aiff: signed 8-bit big-endian
}
