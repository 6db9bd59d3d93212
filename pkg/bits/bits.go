// Package bits provides the byte and bit-field primitives shared by the
// EDID, CTA-861 and DisplayID decoders.
//
// Multi-byte fields are little-endian. 16 and 32-bit fields are read with
// encoding/binary; Uint24LE covers the 24-bit ones.
package bits

import "fmt"

// HasBit reports whether bit index (0 = LSB) of b is set.
func HasBit(b byte, index uint) bool {
	return b&(1<<index) != 0
}

// Range extracts the inclusive bit range [low, high] of b, right-aligned.
// Both offsets start from zero. Range panics if high > 7 or low > high.
func Range(b byte, high, low uint) byte {
	if high > 7 || low > high {
		panic(fmt.Sprintf("bits: invalid range [%d:%d]", high, low))
	}
	n := high - low + 1
	mask := byte((1 << n) - 1)
	return (b >> low) & mask
}

// Uint24LE decodes a little-endian 24-bit value from the first 3 bytes of b.
func Uint24LE(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// Checksum returns the sum of all bytes of data modulo 256.
// A block is valid when its checksum is zero.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}

// AllZero reports whether every byte of data is zero.
// An empty slice is all zero.
func AllZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
