package floatbits

import (
	"fmt"
	"math"

	"github.com/avdva/floatbits/internal/mathutil"
)

// Category is the class of a binary32 value, as encoded by its exponent field.
type Category int

const (
	// Normal values have an exponent field in [1, 254] and an implicit leading one.
	Normal Category = iota
	// Subnormal values, zeros included, have a zero exponent field and no implicit leading one.
	Subnormal
	// Infinity has all exponent bits set and a zero fraction.
	Infinity
	// NaN has all exponent bits set and a non-zero fraction.
	NaN
)

var (
	categoryNames = [...]string{"normal", "subnormal", "infinity", "NaN"}
	signs         = [...]float32{1, -1}
)

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// IsSpecial returns true for infinities and NaNs.
func (c Category) IsSpecial() bool {
	return c == Infinity || c == NaN
}

// Decoded is the numeric meaning of binary32 fields.
// For finite values, the number equals Sign * Exponent * Mantissa.
// For infinities and NaNs only Category and Sign are set.
type Decoded struct {
	Category Category
	// Sign is +1 or -1.
	Sign float32
	// Exponent is Radix raised to Power.
	Exponent float32
	// Mantissa is in [1, 2) for normal values and in [0, 1) for subnormals.
	Mantissa float32
	// Power is the unbiased exponent, in [MinPower, MaxPower] for finite values.
	Power int
}

// Decode returns the numeric meaning of raw fields.
// Subnormal values are decoded with the power of the smallest normal number,
// and without the implicit leading one.
func Decode(f Fields) Decoded {
	d := Decoded{
		Category: f.Category(),
		Sign:     signs[f.Sign&1],
	}
	switch d.Category {
	case Infinity, NaN:
		return d
	case Subnormal:
		d.Power = MinPower
	default:
		d.Power = int(f.Exponent) - Bias
		d.Mantissa = 1
	}
	d.Exponent = float32(mathutil.Pow2(d.Power))
	d.Mantissa += decodeFraction(f.Fraction)
	return d
}

// decodeFraction sums the weights of the set fraction bits.
// Bit i contributes 2^(i-23).
func decodeFraction(fraction uint32) float32 {
	var result float32
	for i := 0; i < MantissaBits; i++ {
		if fraction&(1<<i) != 0 {
			result += float32(mathutil.FracWeight(i, MantissaBits))
		}
	}
	return result
}

// Float32 reconstructs the value. See Reconstruct.
func (d Decoded) Float32() float32 {
	return Reconstruct(d)
}

// IsZero returns true for both +0 and -0.
func (d Decoded) IsZero() bool {
	return d.Category == Subnormal && d.Mantissa == 0
}

// String returns a human readable form of the decoded value,
// like "-1 * 2^-3 * 1.25".
func (d Decoded) String() string {
	switch d.Category {
	case Infinity:
		if d.Sign < 0 {
			return "-Inf"
		}
		return "+Inf"
	case NaN:
		return "NaN"
	default:
		return fmt.Sprintf("%v * %d^%d * %v", d.Sign, Radix, d.Power, d.Mantissa)
	}
}

// Reconstruct multiplies decoded parts back into a float32.
// Infinities and NaNs are not computed, their canonical values are returned instead.
// Finite values are recovered up to floating-point rounding.
func Reconstruct(d Decoded) float32 {
	return FromParts(d.Sign, d.Exponent, d.Mantissa, d.Category)
}

// FromParts returns sign * exponent * mantissa for finite categories,
// an infinity with the given sign for Infinity, and a quiet NaN for NaN.
func FromParts(sign, exponent, mantissa float32, c Category) float32 {
	switch c {
	case Infinity:
		if sign < 0 {
			return float32(math.Inf(-1))
		}
		return float32(math.Inf(1))
	case NaN:
		return math.Float32frombits(canonicalNaN)
	default:
		return sign * exponent * mantissa
	}
}
