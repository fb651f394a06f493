// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatbits exposes the sign, exponent and mantissa fields of
// IEEE-754 binary32 values, decodes them into their numeric meaning
// and assembles decoded parts back into a float32.
//
// The pipeline is Split -> Decode -> Reconstruct:
//
//	fields := floatbits.Split(42.42)
//	decoded := fields.Decode()
//	f := decoded.Float32() // 42.42
package floatbits

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/avdva/floatbits/internal/mathutil"
)

var (
	errRange = errors.New("value out of range")
)

// Fields holds the raw bit fields of a binary32 value, without interpretation.
type Fields struct {
	// Sign is 0 or 1.
	Sign uint32
	// Exponent is the biased exponent.
	Exponent uint8
	// Fraction is the 23-bit mantissa field.
	Fraction uint32
}

// Split returns the raw fields of f. Split is defined for every float32,
// including zeros, subnormals, infinities, and NaNs.
func Split(f float32) Fields {
	return FieldsFromBits(math.Float32bits(f))
}

// FieldsFromBits returns the raw fields of a binary32 bit pattern.
func FieldsFromBits(bits uint32) Fields {
	return Fields{
		Sign:     bits >> signShift,
		Exponent: uint8(bits >> MantissaBits & ExponentMask),
		Fraction: bits & FractionMask,
	}
}

// NewFields returns fields for given raw values.
// Returns an error if the sign does not fit 1 bit, or the fraction does not fit 23 bits.
func NewFields(sign uint32, exponent uint8, fraction uint32) (Fields, error) {
	if mathutil.BinaryDigits(uint64(sign)) > 1 {
		return Fields{}, errors.Wrapf(errRange, "sign %d", sign)
	}
	if mathutil.BinaryDigits(uint64(fraction)) > MantissaBits {
		return Fields{}, errors.Wrapf(errRange, "fraction %#x", fraction)
	}
	return Fields{Sign: sign, Exponent: exponent, Fraction: fraction}, nil
}

// MustNewFields is like NewFields, but panics on error.
func MustNewFields(sign uint32, exponent uint8, fraction uint32) Fields {
	f, err := NewFields(sign, exponent, fraction)
	if err != nil {
		panic(err)
	}
	return f
}

// Bits concatenates sign, exponent and fraction into a binary32 bit pattern.
func (f Fields) Bits() uint32 {
	return f.Sign<<signShift | uint32(f.Exponent)<<MantissaBits | f.Fraction&FractionMask
}

// Float32 returns the float32 with the same bit pattern.
// Unlike Decoded.Float32, the result is bit-exact, NaN payloads included.
func (f Fields) Float32() float32 {
	return math.Float32frombits(f.Bits())
}

// Category returns the category encoded by the exponent and fraction fields.
func (f Fields) Category() Category {
	switch f.Exponent {
	case 0:
		return Subnormal
	case ExponentMask:
		if f.Fraction == 0 {
			return Infinity
		}
		return NaN
	default:
		return Normal
	}
}

// Decode returns the numeric meaning of the fields. See Decode.
func (f Fields) Decode() Decoded {
	return Decode(f)
}

// GoString returns debug string representation.
func (f Fields) GoString() string {
	return fmt.Sprintf("{%01b %08b %023b}", f.Sign, f.Exponent, f.Fraction)
}
