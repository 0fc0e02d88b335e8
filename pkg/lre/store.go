package lre

import (
	"sort"
	"strings"
)

// Result is one recorded (table, test case, field) measurement.
type Result struct {
	Table          string  `json:"table" yaml:"table"`
	TestCase       string  `json:"test_case" yaml:"test_case"`
	Field          string  `json:"field" yaml:"field"`
	LRE            float64 `json:"lre" yaml:"lre"`
	DigitsPossible float64 `json:"digits_possible" yaml:"digits_possible"`
	Annotation     string  `json:"annotation,omitempty" yaml:"annotation,omitempty"` // empty means none
}

// IsFullPrecision reports whether the measurement reached every digit that
// could be expected of it.
func (r Result) IsFullPrecision() bool {
	return r.LRE >= r.DigitsPossible
}

// Store is an append-only sequence of results, typically one per test run.
//
// Store does no locking. Concurrent test code should give each goroutine its
// own Store and Merge them afterwards, or guard Add with its own mutex.
type Store struct {
	results []Result
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends r. Results are neither deduplicated nor validated.
func (s *Store) Add(r Result) {
	s.results = append(s.results, r)
}

// Results returns a copy of the results in insertion order.
func (s *Store) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Len returns the number of results.
func (s *Store) Len() int {
	return len(s.results)
}

// Merge appends the results of others, in order.
func (s *Store) Merge(others ...*Store) {
	for _, o := range others {
		if o == nil || o == s {
			continue
		}
		s.results = append(s.results, o.results...)
	}
}

// Tables groups the results by table title. Tables are ordered by title so
// that rendering depends only on the store's contents.
func (s *Store) Tables() []Table {
	byTitle := make(map[string][]Result)
	for _, r := range s.results {
		byTitle[r.Table] = append(byTitle[r.Table], r)
	}

	titles := make([]string, 0, len(byTitle))
	for title := range byTitle {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	tables := make([]Table, 0, len(titles))
	for _, title := range titles {
		tables = append(tables, NewTable(title, byTitle[title]))
	}
	return tables
}

// Markdown renders every table, separated by a blank line.
func (s *Store) Markdown() string {
	tables := s.Tables()
	parts := make([]string, len(tables))
	for i, t := range tables {
		parts[i] = t.Markdown()
	}
	return strings.Join(parts, "\n\n")
}
