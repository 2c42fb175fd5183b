// Package bits answers per-bit questions about fixed-width integers.
//
// Every function is generic over the signed and unsigned integer types (8, 16, 32 and
// 64 bits, plus the platform-sized int, uint and uintptr). Positions are zero-based and
// counted from the least-significant bit. Signed values are inspected through their
// two's-complement bit pattern.
//
// The queries are total: a position past the end of a value never panics, it simply
// reports the bit as clear. Use Lookup when an out-of-range position must be reported.
package bits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits in the representation of v's type.
// For int, uint and uintptr the result follows the platform word size.
func Width[T constraints.Integer](v T) uint {
	return uint(unsafe.Sizeof(v)) * 8
}

// InBounds reports whether pos may be queried on v.
//
// The check is lenient: pos == Width(v) is accepted. Has returns false at that position
// because the mask is empty, so callers see the same result as for any other
// out-of-range position.
func InBounds[T constraints.Integer](v T, pos uint) bool {
	return pos <= Width(v)
}

// Mask returns a T with only the bit at pos set, or zero if pos is past the type's width.
func Mask[T constraints.Integer](pos uint) T {
	var one T = 1
	return one << pos
}

// Has reports whether the bit at pos is set in v.
// Out-of-range positions return false.
func Has[T constraints.Integer](v T, pos uint) bool {
	if !InBounds(v, pos) {
		return false
	}
	return v&Mask[T](pos) != 0
}

// HasMSB reports whether the most significant bit of v is set (the sign bit for signed types).
func HasMSB[T constraints.Integer](v T) bool {
	return Has(v, Width(v)-1)
}

// Signed reports whether T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// Positions lists the positions of the set bits in v, lowest first.
func Positions[T constraints.Integer](v T) []uint {
	var set []uint
	for pos := uint(0); pos < Width(v); pos++ {
		if Has(v, pos) {
			set = append(set, pos)
		}
	}
	return set
}
