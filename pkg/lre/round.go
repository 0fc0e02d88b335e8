package lre

import "math"

// RoundSignificant rounds x so that exactly digits significant decimal digits
// remain, whatever the magnitude of x. Halves round away from zero.
//
// Zero, NaN and infinities have no leading digit and are returned unchanged.
func RoundSignificant[T Float](x T, digits int) T {
	if x == 0 || math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		return x
	}

	exp := T(digits-1) - T(math.Floor(float64(Log10(abs(x)))))
	if exp >= 0 {
		factor := Pow(10, exp)
		return T(math.Round(float64(x*factor))) / factor
	}

	// Divide by an exact power of ten instead of multiplying by its inexact
	// reciprocal.
	factor := Pow(10, -exp)
	return T(math.Round(float64(x/factor))) * factor
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
