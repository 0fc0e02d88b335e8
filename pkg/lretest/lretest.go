// Package lretest reports lre judgments through Go's testing package.
//
// Configuration errors (a reference literal without digits or one that does
// not parse) stop the test with Fatalf. Precision mismatches in either
// direction are reported with Errorf so the test keeps running.
//
//	func TestMean(t *testing.T) {
//	    lretest.Literal(t, mean(data), "1000000.2", lre.LiteralOptions{})
//	}
package lretest

import (
	"github.com/AndreyAkinshin/lre/pkg/lre"
)

// TestingT is the subset of testing.TB the helpers need.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Digits asserts that x agrees with c to at least digits decimal digits.
func Digits[T lre.Float](t TestingT, x, c, digits T) bool {
	t.Helper()
	j := lre.Check(x, c, digits)
	if !j.Passed {
		t.Errorf("%s: %.2f digits, expected at least %g", j.Message, j.LRE, j.Target)
	}
	return j.Passed
}

// Literal asserts that x agrees with the reference literal exactly as
// expected: neither fewer digits than the target nor more than the target plus
// lre.Slack.
func Literal[T lre.Float](t TestingT, x T, reference string, opts lre.LiteralOptions) bool {
	t.Helper()
	j, err := lre.CheckLiteral(x, reference, opts)
	if err != nil {
		t.Fatalf("%v", err)
		return false
	}
	if !j.Passed {
		if j.TooPrecise {
			t.Errorf("%s: %.2f digits, expected at most %g; tighten the expectation", j.Message, j.LRE, j.Upper)
		} else {
			t.Errorf("%s: %.2f digits, expected at least %g", j.Message, j.LRE, j.Target)
		}
	}
	return j.Passed
}
