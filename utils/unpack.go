// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Uint8At returns b[0] as an unsigned 8-bit sample.
func Uint8At(b []byte) int {
	return int(b[0])
}

// Int8At returns b[0] as a signed 8-bit sample.
func Int8At(b []byte) int {
	return int(int8(b[0]))
}

// Int16At decodes a signed 16-bit sample from the first two bytes of b.
func Int16At(b []byte, order binary.ByteOrder) int {
	return int(int16(order.Uint16(b)))
}

// Int32At decodes a signed 32-bit sample from the first four bytes of b.
func Int32At(b []byte, order binary.ByteOrder) int {
	return int(int32(order.Uint32(b)))
}

// SampleAt decodes one sample of the given byte width.
// Width 1 honours signed; wider samples are always signed two's complement.
// It panics if width is not 1, 2 or 4 or b is shorter than width.
func SampleAt(b []byte, width int, signed bool, order binary.ByteOrder) int {
	switch width {
	case 1:
		if signed {
			return Int8At(b)
		}
		return Uint8At(b)
	case 2:
		return Int16At(b, order)
	case 4:
		return Int32At(b, order)
	default:
		panic("utils: unsupported sample width")
	}
}
