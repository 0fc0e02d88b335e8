package lre

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Table is the results of one table title arranged as a matrix: one row per
// test case and one column per field, both sorted.
type Table struct {
	Title     string
	TestCases []string
	Fields    []string
	Entries   []Result
}

type cellKey struct {
	testCase string
	field    string
}

// NewTable builds a table from entries that share title.
func NewTable(title string, entries []Result) Table {
	return Table{
		Title:     title,
		TestCases: distinct(entries, func(r Result) string { return r.TestCase }),
		Fields:    distinct(entries, func(r Result) string { return r.Field }),
		Entries:   entries,
	}
}

// Cell returns the entry for testCase and field. When several were recorded,
// the one with the lowest LRE is returned so the choice does not depend on
// insertion order.
func (t Table) Cell(testCase, field string) (Result, bool) {
	var (
		best  Result
		found bool
	)
	for _, e := range t.Entries {
		if e.TestCase != testCase || e.Field != field {
			continue
		}
		if !found || worse(e, best) {
			best, found = e, true
		}
	}
	return best, found
}

// Markdown renders the table:
//
//	# Title
//	| Case | field |
//	| --- | ---: |
//	| case | __5.0__  (note) |
func (t Table) Markdown() string {
	cells := make(map[cellKey]Result, len(t.Entries))
	for _, e := range t.Entries {
		k := cellKey{e.TestCase, e.Field}
		if prev, ok := cells[k]; !ok || worse(e, prev) {
			cells[k] = e
		}
	}

	var b strings.Builder
	b.WriteString("# " + t.Title + "\n")

	b.WriteString("| Case |")
	for _, f := range t.Fields {
		b.WriteString(" " + f + " |")
	}
	b.WriteString("\n")

	b.WriteString("| --- | ")
	sep := make([]string, len(t.Fields))
	for i := range sep {
		sep[i] = "---:"
	}
	b.WriteString(strings.Join(sep, " | "))
	b.WriteString(" |")

	for _, tc := range t.TestCases {
		b.WriteString("\n| " + tc + " |")
		for _, f := range t.Fields {
			e, ok := cells[cellKey{tc, f}]
			if !ok {
				b.WriteString(" . |")
				continue
			}
			b.WriteString(" " + formatCell(e) + " |")
		}
	}

	return b.String()
}

// formatCell renders an entry's value to one decimal, emphasized at full
// precision, followed by its annotation. The annotation keeps a space on both
// sides.
func formatCell(e Result) string {
	v := strconv.FormatFloat(math.Round(e.LRE*10)/10, 'f', 1, 64)
	if e.IsFullPrecision() {
		v = "__" + v + "__"
	}
	if e.Annotation != "" {
		v += "  (" + e.Annotation + ")"
	}
	return v
}

// worse orders duplicate cells. NaN ranks below every other LRE.
func worse(a, b Result) bool {
	if an, bn := math.IsNaN(a.LRE), math.IsNaN(b.LRE); an != bn {
		return an
	}
	if a.LRE != b.LRE && !math.IsNaN(a.LRE) {
		return a.LRE < b.LRE
	}
	return a.Annotation < b.Annotation
}

func distinct(entries []Result, key func(Result) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		k := key(e)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
