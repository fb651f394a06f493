package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

// Pow2 returns 2^exp.
// The result is exact for every power a float64 can hold, subnormals included.
func Pow2(exp int) float64 {
	return math.Ldexp(1, exp)
}

// FracWeight returns the weight of bit 'bit' in a binary fraction
// of 'width' bits, where bit 0 is the least significant one: 2^(bit-width).
func FracWeight(bit, width int) float64 {
	return Pow2(bit - width)
}

// BinaryDigits returns the number of bits needed to represent 'value'.
// Zero needs no bits.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}
