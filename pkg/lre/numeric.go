package lre

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the set of floating-point types the metric is defined for.
type Float interface {
	constraints.Float
}

// MantissaBits returns the number of explicitly stored significand bits of T.
func MantissaBits[T Float]() int {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return 23
	}
	return 52
}

// SignificantDecimalDigits returns how many decimal digits T can faithfully
// distinguish. LRE never reports more correct digits than this.
//
// The values are fixed per type: 6 for 32-bit and 15 for 64-bit floats, which
// is floor(log10(2^MantissaBits)).
func SignificantDecimalDigits[T Float]() T {
	switch MantissaBits[T]() {
	case 23:
		return 6
	case 52:
		return 15
	default:
		return T(math.Floor(float64(MantissaBits[T]()) * math.Log10(2)))
	}
}

// Log10 returns the decimal logarithm of x.
func Log10[T Float](x T) T {
	return T(math.Log10(float64(x)))
}

// Pow returns base**exp.
func Pow[T Float](base, exp T) T {
	return T(math.Pow(float64(base), float64(exp)))
}

// bitSize returns the bit size strconv needs to parse literals into T.
func bitSize[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}
