// Package unitinterval maps bytes to float32 values in [0, 1) without a division.
//
// The byte is placed into the top bits of the mantissa of a float32 with
// the exponent fixed to -1, which gives a value in [0.5, 1).
// The result is then shifted and scaled to [0, 1).
package unitinterval

import (
	"math"

	"github.com/avdva/floatbits"
)

const (
	// half is the bit pattern of 0.5: zero sign and mantissa, decoded exponent -1.
	half = (floatbits.Bias - 1) << floatbits.MantissaBits
	// byteShift aligns a byte with the 8 most significant mantissa bits.
	byteShift = floatbits.MantissaBits - 8
)

// FromByte returns a value in [0, 1) for b. The result equals b/256,
// so 0x00 maps to 0, and 0xff maps to 0.99609375.
func FromByte(b byte) float32 {
	f := math.Float32frombits(half | uint32(b)<<byteShift)
	return 2 * (f - 0.5)
}

// FromBytes appends the values for src to dst and returns the extended slice.
func FromBytes(dst []float32, src []byte) []float32 {
	for _, b := range src {
		dst = append(dst, FromByte(b))
	}
	return dst
}

// FromByteDiv returns b/255, which is in [0, 1].
func FromByteDiv(b byte) float32 {
	return float32(b) / math.MaxUint8
}
