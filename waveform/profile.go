// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ContainerKind tells which container convention applies to the sample data.
type ContainerKind int

const (
	// KindWAV is RIFF/WAVE: little-endian, unsigned 8-bit samples.
	KindWAV ContainerKind = iota
	// KindAIFF is AIFF: big-endian, signed 8-bit samples.
	KindAIFF
)

func (k ContainerKind) String() string {
	switch k {
	case KindWAV:
		return "wav"
	case KindAIFF:
		return "aiff"
	default:
		return fmt.Sprintf("ContainerKind(%d)", int(k))
	}
}

// ParseContainerKind parses "wav" or "aiff" (also "aif" and "aifc").
func ParseContainerKind(s string) (ContainerKind, error) {
	switch strings.ToLower(s) {
	case "wav", "wave":
		return KindWAV, nil
	case "aiff", "aif", "aifc":
		return KindAIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (k ContainerKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *ContainerKind) UnmarshalText(b []byte) error {
	v, err := ParseContainerKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// ByteOrder selects the sample byte order. ByteOrderAuto follows the container kind.
type ByteOrder int

const (
	ByteOrderAuto ByteOrder = iota
	LittleEndian
	BigEndian
)

func (o ByteOrder) String() string {
	switch o {
	case ByteOrderAuto:
		return "auto"
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return fmt.Sprintf("ByteOrder(%d)", int(o))
	}
}

// ParseByteOrder parses "auto", "little" or "big".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ByteOrderAuto, nil
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	default:
		return 0, fmt.Errorf("unknown byte order %q", s)
	}
}

func (o ByteOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *ByteOrder) UnmarshalText(b []byte) error {
	v, err := ParseByteOrder(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// FormatProfile describes how raw sample bytes are unpacked.
type FormatProfile struct {
	Order  ByteOrder // LittleEndian or BigEndian, never ByteOrderAuto
	Signed bool
	Width  int // bytes per sample: 1, 2 or 4
	Bias   int // subtracted from raw samples before scaling
}

// BitDepth is Width * 8.
func (p FormatProfile) BitDepth() int { return p.Width * 8 }

// Endian returns the encoding/binary byte order for p.
func (p FormatProfile) Endian() binary.ByteOrder {
	if p.Order == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (p FormatProfile) String() string {
	sign := "unsigned"
	if p.Signed {
		sign = "signed"
	}
	return fmt.Sprintf("%s %d-bit %s-endian", sign, p.BitDepth(), p.Order)
}

// ResolveProfile derives the unpacking format for a sample byte width.
//
// Supported PCM layouts:
//   - 8-bit unsigned WAV (bias 128)
//   - 8-bit signed AIFF
//   - 16-bit and 32-bit signed, little-endian for WAV and big-endian for AIFF
//
// order overrides the container's byte order unless it is ByteOrderAuto.
func ResolveProfile(width int, kind ContainerKind, order ByteOrder) (FormatProfile, error) {
	if order == ByteOrderAuto {
		order = LittleEndian
		if kind == KindAIFF {
			order = BigEndian
		}
	}

	switch width {
	case 1:
		if kind == KindWAV {
			return FormatProfile{Order: order, Signed: false, Width: 1, Bias: 1 << 7}, nil
		}
		return FormatProfile{Order: order, Signed: true, Width: 1}, nil
	case 2, 4:
		return FormatProfile{Order: order, Signed: true, Width: width}, nil
	default:
		return FormatProfile{}, fmt.Errorf("%w: %d-byte samples", ErrUnsupportedFormat, width)
	}
}
