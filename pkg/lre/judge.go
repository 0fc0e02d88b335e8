package lre

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Slack is how far above its target an observed LRE may be before the
// expectation is reported as too loose.
const Slack = 0.1

// Configuration errors. They describe a broken test rather than a numerical
// mismatch and are never folded into a Judgment.
var (
	ErrNoDigits    = errors.New("reference literal specifies no digits")
	ErrUnparseable = errors.New("reference literal is not a valid number")
)

// ConfigError reports a reference literal that cannot drive an expectation.
type ConfigError struct {
	Reference string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("lre: reference %q: %v", e.Reference, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Judgment is the outcome of comparing a candidate with a reference.
type Judgment struct {
	// Passed is true when LRE lies within [Target, Upper].
	Passed bool

	// TooPrecise is true when LRE exceeds Upper: the expectation is looser
	// than what the candidate achieves and should be tightened.
	TooPrecise bool

	// LRE is the measurement the judgment is based on.
	LRE float64

	// Raw is the LRE of the unrounded candidate and Rounded the LRE of the
	// candidate rounded to the reference's digit count. In direct mode both
	// equal LRE.
	Raw     float64
	Rounded float64

	// Target is the lowest acceptable LRE, Upper the highest. Upper is +Inf
	// in direct mode.
	Target float64
	Upper  float64

	// DigitsPossible caps the expectation by the candidate type's precision
	// and, unless exact, by the digits the reference specifies.
	DigitsPossible float64

	Candidate        string // raw candidate
	RoundedCandidate string // candidate the LRE was measured on
	Reference        string

	// Message is the human-readable comparison, "saw <x> vs <c>", prefixed
	// with "better than expected: " when TooPrecise.
	Message string
}

func (j Judgment) String() string {
	status := "ok"
	if !j.Passed {
		status = "FAIL"
	}
	if math.IsInf(j.Upper, 1) {
		return fmt.Sprintf("%s: %s (%.2f digits, expected at least %g)", status, j.Message, j.LRE, j.Target)
	}
	return fmt.Sprintf("%s: %s (%.2f digits, expected %g to %g)", status, j.Message, j.LRE, j.Target, j.Upper)
}

// Record says where CheckLiteral stores its measurement.
type Record struct {
	Store      *Store
	Table      string
	TestCase   string
	Field      string
	Annotation string
}

// LiteralOptions configures CheckLiteral.
type LiteralOptions struct {
	// Exact expects agreement to the candidate type's full precision even when
	// the reference literal carries fewer digits.
	Exact bool

	// Digits is the expected number of correct digits. Zero means "as many as
	// possible". Values above the possible digits are capped.
	Digits float64

	// Slack overrides the default Slack when positive.
	Slack float64

	// Record, when set with a non-nil Store, appends the measurement.
	Record *Record
}

// Check compares candidate x with reference c and passes when they agree to at
// least digits decimal digits.
func Check[T Float](x, c, digits T) Judgment {
	l := LRE(x, c)
	return Judgment{
		Passed:           l >= digits,
		LRE:              float64(l),
		Raw:              float64(l),
		Rounded:          float64(l),
		Target:           float64(digits),
		Upper:            math.Inf(1),
		DigitsPossible:   float64(SignificantDecimalDigits[T]()),
		Candidate:        formatFloat(x),
		RoundedCandidate: formatFloat(x),
		Reference:        formatFloat(c),
		Message:          fmt.Sprintf("saw %s vs %s", formatFloat(x), formatFloat(c)),
	}
}

// CheckLiteral compares candidate x with a reference given as a decimal
// literal, whose own number of digits bounds what can be expected.
//
// The candidate is measured both as is and rounded to the reference's digit
// count; the more favorable measurement is used. The judgment passes only when
// the measurement lies within [target, target+Slack]: agreement well above the
// target fails too, because a loose expectation hides future regressions.
//
// A reference without digits or one that does not parse as T yields a
// *ConfigError and no judgment.
func CheckLiteral[T Float](x T, reference string, opts LiteralOptions) (Judgment, error) {
	refDigits := CountDigits(reference)
	if refDigits == 0 {
		return Judgment{}, &ConfigError{Reference: reference, Err: ErrNoDigits}
	}

	ref, err := ParseLiteral[T](reference)
	if err != nil {
		return Judgment{}, &ConfigError{Reference: reference, Err: err}
	}

	possible := SignificantDecimalDigits[T]()
	if !opts.Exact {
		possible = min(possible, T(refDigits))
	}

	xr := RoundSignificant(x, refDigits)
	rounded := min(possible, LRE(xr, ref))
	raw := min(possible, LRE(x, ref))

	l, used := raw, x
	if rounded >= raw {
		l, used = rounded, xr
	}

	target := possible
	if opts.Digits != 0 {
		target = min(T(opts.Digits), possible)
	}
	slack := T(Slack)
	if opts.Slack > 0 {
		slack = T(opts.Slack)
	}
	upper := target + slack

	seen := formatFloat(used)
	if used != x {
		seen += " (" + formatFloat(x) + ")"
	}

	j := Judgment{
		Passed:           l >= target && l <= upper,
		TooPrecise:       l > upper,
		LRE:              float64(l),
		Raw:              float64(raw),
		Rounded:          float64(rounded),
		Target:           float64(target),
		Upper:            float64(upper),
		DigitsPossible:   float64(possible),
		Candidate:        formatFloat(x),
		RoundedCandidate: formatFloat(used),
		Reference:        reference,
		Message:          fmt.Sprintf("saw %s vs %s", seen, reference),
	}
	if j.TooPrecise {
		j.Message = "better than expected: " + j.Message
	}

	if r := opts.Record; r != nil && r.Store != nil {
		r.Store.Add(Result{
			Table:          r.Table,
			TestCase:       r.TestCase,
			Field:          r.Field,
			LRE:            j.LRE,
			DigitsPossible: j.DigitsPossible,
			Annotation:     r.Annotation,
		})
	}

	return j, nil
}

// MustCheckLiteral is like CheckLiteral but panics on a configuration error.
func MustCheckLiteral[T Float](x T, reference string, opts LiteralOptions) Judgment {
	j, err := CheckLiteral(x, reference, opts)
	if err != nil {
		panic(err)
	}
	return j
}

// ParseLiteral parses a decimal literal into T. It accepts what CheckLiteral
// accepts as a reference.
func ParseLiteral[T Float](s string) (T, error) {
	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return T(v), nil
}

func formatFloat[T Float](x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, bitSize[T]())
}
