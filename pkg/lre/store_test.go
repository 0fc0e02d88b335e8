package lre

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStore_Markdown(t *testing.T) {
	t.Parallel()

	store := NewStore()
	MustCheckLiteral(1.2340, "1.2345", LiteralOptions{
		Digits: 3.3,
		Record: &Record{Store: store, Table: "Example", TestCase: "no annotation", Field: "value"},
	})
	MustCheckLiteral(1.2345, "1.2345", LiteralOptions{
		Record: &Record{Store: store, Table: "Example", TestCase: "annotation", Field: "value", Annotation: "35 iters"},
	})

	want := strings.Join([]string{
		"# Example",
		"| Case | value |",
		"| --- | ---: |",
		"| annotation | __5.0__  (35 iters) |",
		"| no annotation | 3.4 |",
	}, "\n")

	if diff := cmp.Diff(want, store.Markdown()); diff != "" {
		t.Errorf("Markdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_MarkdownMissingCellsAndColumns(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(Result{Table: "T", TestCase: "b", Field: "sd", LRE: 12.04, DigitsPossible: 15})
	store.Add(Result{Table: "T", TestCase: "a", Field: "mean", LRE: 15, DigitsPossible: 15})
	store.Add(Result{Table: "T", TestCase: "a", Field: "sd", LRE: -0.26, DigitsPossible: 15})

	want := strings.Join([]string{
		"# T",
		"| Case | mean | sd |",
		"| --- | ---: | ---: |",
		"| a | __15.0__ | -0.3 |",
		"| b | . | 12.0 |",
	}, "\n")

	if diff := cmp.Diff(want, store.Markdown()); diff != "" {
		t.Errorf("Markdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_MarkdownSeveralTables(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(Result{Table: "Zeta", TestCase: "c", Field: "f", LRE: 1, DigitsPossible: 2})
	store.Add(Result{Table: "Alpha", TestCase: "c", Field: "f", LRE: 2, DigitsPossible: 2})

	want := "# Alpha\n| Case | f |\n| --- | ---: |\n| c | __2.0__ |" +
		"\n\n" +
		"# Zeta\n| Case | f |\n| --- | ---: |\n| c | 1.0 |"

	if diff := cmp.Diff(want, store.Markdown()); diff != "" {
		t.Errorf("Markdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_MarkdownEmpty(t *testing.T) {
	t.Parallel()
	if got := NewStore().Markdown(); got != "" {
		t.Errorf("Markdown() = %q, want empty", got)
	}
}

func TestStore_RenderIgnoresInsertionOrder(t *testing.T) {
	t.Parallel()

	var results []Result
	for _, table := range []string{"Summary", "Regression"} {
		for _, tc := range []string{"Norris", "Pontius", "Longley", "Wampler1"} {
			for i, field := range []string{"b0", "b1", "sd"} {
				results = append(results, Result{
					Table:          table,
					TestCase:       tc,
					Field:          field,
					LRE:            float64(len(tc)+i) + 0.37,
					DigitsPossible: 10,
				})
			}
		}
	}
	// A duplicate cell must not make the output order dependent.
	results = append(results, Result{Table: "Summary", TestCase: "Norris", Field: "b0", LRE: 2, DigitsPossible: 10, Annotation: "rerun"})

	reference := NewStore()
	for _, r := range results {
		reference.Add(r)
	}
	want := reference.Markdown()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]Result(nil), results...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		store := NewStore()
		for _, r := range shuffled {
			store.Add(r)
		}
		if diff := cmp.Diff(want, store.Markdown()); diff != "" {
			t.Fatalf("permutation %d rendered differently (-want +got):\n%s", i, diff)
		}
	}
}

func TestStore_Merge(t *testing.T) {
	t.Parallel()

	a := NewStore()
	a.Add(Result{Table: "T", TestCase: "a", Field: "f", LRE: 1})
	b := NewStore()
	b.Add(Result{Table: "T", TestCase: "b", Field: "f", LRE: 2})
	b.Add(Result{Table: "T", TestCase: "c", Field: "f", LRE: 3})

	a.Merge(b, nil, a)

	got := a.Results()
	var cases []string
	for _, r := range got {
		cases = append(cases, r.TestCase)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, cases); diff != "" {
		t.Errorf("merged order mismatch (-want +got):\n%s", diff)
	}
	if b.Len() != 2 {
		t.Errorf("source store modified: Len() = %d", b.Len())
	}
}

func TestStore_ResultsIsACopy(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Add(Result{Table: "T", LRE: 1})
	got := s.Results()
	got[0].LRE = 99
	if s.Results()[0].LRE != 1 {
		t.Error("Results() exposed internal storage")
	}
}

func TestTable_Cell(t *testing.T) {
	t.Parallel()

	table := NewTable("T", []Result{
		{Table: "T", TestCase: "x", Field: "f", LRE: 7},
		{Table: "T", TestCase: "x", Field: "f", LRE: 4},
		{Table: "T", TestCase: "y", Field: "g", LRE: 9},
	})

	if diff := cmp.Diff([]string{"x", "y"}, table.TestCases); diff != "" {
		t.Errorf("TestCases mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"f", "g"}, table.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}

	r, ok := table.Cell("x", "f")
	if !ok || r.LRE != 4 {
		t.Errorf("Cell(x, f) = %v, %v; want LRE 4", r, ok)
	}
	if _, ok := table.Cell("y", "f"); ok {
		t.Error("Cell(y, f) found, want missing")
	}
}

func TestTable_CellPrefersNaN(t *testing.T) {
	t.Parallel()

	nan := Result{Table: "T", TestCase: "x", Field: "f", LRE: math.NaN(), DigitsPossible: 15}
	finite := Result{Table: "T", TestCase: "x", Field: "f", LRE: 3, DigitsPossible: 15}
	negInf := Result{Table: "T", TestCase: "x", Field: "f", LRE: math.Inf(-1), DigitsPossible: 15}

	orders := [][]Result{
		{nan, finite, negInf},
		{finite, nan, negInf},
		{negInf, finite, nan},
	}
	for i, entries := range orders {
		table := NewTable("T", entries)
		r, ok := table.Cell("x", "f")
		if !ok || !math.IsNaN(r.LRE) {
			t.Errorf("order %d: Cell(x, f) = %v, want the NaN entry", i, r.LRE)
		}
		if got := table.Markdown(); !strings.Contains(got, "| x | NaN |") {
			t.Errorf("order %d: Markdown() = %q, want NaN cell", i, got)
		}
	}
}

func TestResult_IsFullPrecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lre, possible float64
		want          bool
	}{
		{5, 5, true},
		{6, 5, true},
		{4.99, 5, false},
	}
	for _, tt := range tests {
		r := Result{LRE: tt.lre, DigitsPossible: tt.possible}
		if got := r.IsFullPrecision(); got != tt.want {
			t.Errorf("Result{LRE: %v, DigitsPossible: %v}.IsFullPrecision() = %v, want %v", tt.lre, tt.possible, got, tt.want)
		}
	}
}
