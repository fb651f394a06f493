package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow2(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		exp int
		res float64
	}{
		{0, 1},
		{1, 2},
		{5, 32},
		{-1, 0.5},
		{-7, 0.0078125},
		{-23, 1.0 / (1 << 23)},
		{127, math.Float64frombits(uint64(1023+127) << 52)},
		{-126, math.Float64frombits(uint64(1023-126) << 52)},
		{-1074, math.SmallestNonzeroFloat64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Pow2(test.exp))
		})
	}
}

func TestFracWeight(t *testing.T) {
	a := assert.New(t)
	a.Equal(0.5, FracWeight(22, 23))
	a.Equal(0.25, FracWeight(21, 23))
	a.Equal(Pow2(-23), FracWeight(0, 23))
	a.Equal(0.0078125, FracWeight(0, 7))
	var sum float64
	for i := 0; i < 23; i++ {
		sum += FracWeight(i, 23)
	}
	a.Equal(1-Pow2(-23), sum)
}

func TestBinaryDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{0xff, 8},
		{0x7fffff, 23},
		{0x800000, 24},
		{math.MaxUint64, 64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, BinaryDigits(test.v))
		})
	}
}

func BenchmarkPow2(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		dummy += Pow2(i%254 - 126)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}

func BenchmarkMathPow(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		dummy += math.Pow(2, float64(i%254-126))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}
