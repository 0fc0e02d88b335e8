package lre

// CountDigits returns how many significant digits a decimal literal specifies.
//
// Everything from the first exponent marker ('e', 'E', 'x' or 'X') onward is
// ignored, as are signs, decimal points, separators and leading zeros. A literal
// made only of zeros specifies as many digits as it has zeros, so "0.00000"
// counts 6. A literal without any digit counts 0, which no caller may use as an
// expectation.
//
//	CountDigits("1.234e-10")      // 4
//	CountDigits("1.234 x 10^-10") // 4
//	CountDigits("0.00001234")     // 4
//	CountDigits("123456.789")     // 9
func CountDigits(s string) int {
	digits := 0 // digits seen before the exponent marker
	zeros := 0  // leading zeros among them
	leading := true

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == 'e' || ch == 'E' || ch == 'x' || ch == 'X':
			return finishCount(digits, zeros)
		case ch >= '0' && ch <= '9':
			digits++
			if leading {
				if ch == '0' {
					zeros++
					continue
				}
				leading = false
			}
		}
	}

	return finishCount(digits, zeros)
}

func finishCount(digits, zeros int) int {
	if digits > 0 && digits == zeros {
		// all zeros
		return digits
	}
	return digits - zeros
}
