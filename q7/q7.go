// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package q7 implements the Q7 fixed-point format: a real number in [-1, 1]
// stored in a single signed byte, with 1 sign bit and 7 fractional bits.
// Can be used as a compact storage and transfer type for values with a known range,
// like model weights.
package q7

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/avdva/floatbits/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeFloat
)

const (
	// JSONModeFloat marshals values as floats, like `0.5`.
	JSONModeFloat = iota
	// JSONModeRaw marshals the stored integer, like `64`.
	JSONModeRaw
)

const (
	fracBits = 7
	scale    = 1 << fracBits
)

const (
	// Zero is Q7 zero.
	Zero = Q7(0)
	// Max is the maximum Q7 value, 127/128.
	Max = Q7(math.MaxInt8)
	// Min is the minimum Q7 value, -1.
	Min = Q7(math.MinInt8)
)

var (
	step = mathutil.Pow2(-fracBits)
)

// Q7 is a fixed-point number, where the int8 value v represents v * 2^-7.
type Q7 int8

// FromFloat64 returns the Q7 value for f.
// Values >= 1 saturate to Max, values <= -1 saturate to Min.
// Other values are scaled and truncated toward zero. NaN is converted to Zero.
func FromFloat64(f float64) Q7 {
	switch {
	case f >= 1:
		return Max
	case f <= -1:
		return Min
	case math.IsNaN(f):
		return Zero
	}
	return Q7(int8(f * scale))
}

// FromFloat32 returns the Q7 value for f. See FromFloat64.
func FromFloat32(f float32) Q7 {
	return FromFloat64(float64(f))
}

// From returns the Q7 value for a floating-point number of any width. See FromFloat64.
func From[T constraints.Float](f T) Q7 {
	return FromFloat64(float64(f))
}

// FromByte returns the Q7 value stored in b.
func FromByte(b byte) Q7 {
	return Q7(int8(b))
}

// Float64 returns q as a float64.
func (q Q7) Float64() float64 {
	return float64(q) * step
}

// Float32 returns q as a float32.
// Q7 values need 8 significant bits, so this conversion is exact.
func (q Q7) Float32() float32 {
	return float32(q.Float64())
}

// Int8 returns the stored integer.
func (q Q7) Int8() int8 {
	return int8(q)
}

// Byte returns the stored byte.
func (q Q7) Byte() byte {
	return byte(q)
}

// String returns the shortest decimal representation of the value.
func (q Q7) String() string {
	return strconv.FormatFloat(q.Float64(), 'f', -1, 64)
}

// GoString returns debug string representation.
func (q Q7) GoString() string {
	return q.String() + " {" + strconv.Itoa(int(q)) + "}"
}

// Quantize appends the Q7 values for src to dst and returns the extended slice.
func Quantize(dst []Q7, src []float32) []Q7 {
	for _, f := range src {
		dst = append(dst, FromFloat32(f))
	}
	return dst
}

// Dequantize appends the float32 values for src to dst and returns the extended slice.
func Dequantize(dst []float32, src []Q7) []float32 {
	for _, q := range src {
		dst = append(dst, q.Float32())
	}
	return dst
}

// MarshalJSON marshals value according to current JSONMode.
func (q Q7) MarshalJSON() ([]byte, error) {
	if JSONMode == JSONModeRaw {
		return strconv.AppendInt(nil, int64(q), 10), nil
	}
	return []byte(q.String()), nil
}

// UnmarshalJSON unmarshals a number or a quoted number according to current JSONMode.
// Out of range floats saturate, like in FromFloat64.
func (q *Q7) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if JSONMode == JSONModeRaw {
		i, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return errors.Wrapf(err, "bad q7 json %q", data)
		}
		*q = Q7(i)
		return nil
	}
	return errors.Wrap(q.parseFloat(s), "bad q7 json")
}

// MarshalText returns the decimal form of the value.
func (q Q7) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText parses a decimal number. Out of range values saturate, like in FromFloat64.
func (q *Q7) UnmarshalText(text []byte) error {
	return errors.Wrap(q.parseFloat(string(text)), "bad q7 text")
}

func (q *Q7) parseFloat(s string) error {
	if len(s) == 0 {
		return errors.New("empty input")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		// out of range input is returned as ±Inf or ±0 along with ErrRange.
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return err
		}
	}
	*q = FromFloat64(f)
	return nil
}
