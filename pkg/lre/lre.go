// Package lre measures how many decimal digits of a computed value agree with
// a reference value (the Log Relative Error of McCullough, "Assessing the
// Reliability of Statistical Software", 1998) and judges test expectations
// written against decimal reference literals.
//
// Example usage in a Go test:
//
//	func TestMean(t *testing.T) {
//	    store := lre.NewStore()
//	    j, err := lre.CheckLiteral(mean(data), "1000000.2", lre.LiteralOptions{
//	        Record: &lre.Record{Store: store, Table: "Summary", TestCase: "NumAcc1", Field: "mean"},
//	    })
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    if !j.Passed {
//	        t.Error(j)
//	    }
//	    t.Log("\n" + store.Markdown())
//	}
package lre

// LRE returns the number of correct decimal digits of candidate x with respect
// to reference c.
//
// The relative error |x-c|/|c| is used when c is nonzero, so that agreement is
// reported identically at every scale. When c is exactly zero the absolute
// error |x-c| is used instead. The result is capped at
// SignificantDecimalDigits of T; an exact match returns the cap. The result is
// continuous: 9.7 digits is a meaningful answer.
func LRE[T Float](x, c T) T {
	delta := abs(x - c)
	if c != 0 {
		delta /= abs(c)
	}
	return min(SignificantDecimalDigits[T](), -Log10(delta))
}
