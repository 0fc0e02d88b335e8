package suite

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/lre/internal/errors"
	"github.com/AndreyAkinshin/lre/pkg/lre"
)

// Report formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Failure is a case whose judgment did not pass.
type Failure struct {
	Suite    string
	Case     string
	Field    string
	Judgment lre.Judgment
}

func (f Failure) String() string {
	return fmt.Sprintf("[%s] %s.%s: %s", f.Suite, f.Case, f.Field, f.Judgment)
}

// Report is the outcome of a run.
type Report struct {
	Store    *lre.Store
	Failures []Failure
	Total    int
	Passed   int
}

// Err returns a mismatch error when any case failed.
func (r *Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return errors.Mismatchf("%d of %d cases failed", len(r.Failures), r.Total)
}

// document is the structured form of a report.
type document struct {
	Total   int          `json:"total" yaml:"total"`
	Passed  int          `json:"passed" yaml:"passed"`
	Results []lre.Result `json:"results" yaml:"results"`
}

// MarshalJSON writes non-finite LREs, which JSON numbers cannot hold, as the
// strings "NaN", "+Inf" and "-Inf". A diverged candidate measures -Inf.
func (d document) MarshalJSON() ([]byte, error) {
	type result struct {
		Table          string  `json:"table"`
		TestCase       string  `json:"test_case"`
		Field          string  `json:"field"`
		LRE            any     `json:"lre"`
		DigitsPossible float64 `json:"digits_possible"`
		Annotation     string  `json:"annotation,omitempty"`
	}
	results := make([]result, len(d.Results))
	for i, r := range d.Results {
		results[i] = result{
			Table:          r.Table,
			TestCase:       r.TestCase,
			Field:          r.Field,
			LRE:            jsonFloat(r.LRE),
			DigitsPossible: r.DigitsPossible,
			Annotation:     r.Annotation,
		}
	}
	return json.Marshal(struct {
		Total   int      `json:"total"`
		Passed  int      `json:"passed"`
		Results []result `json:"results"`
	}{d.Total, d.Passed, results})
}

func jsonFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

// Render formats the recorded results. Markdown renders one table per title;
// JSON and YAML list the results in recording order.
func (r *Report) Render(format string) (string, error) {
	switch format {
	case FormatMarkdown, "":
		md := r.Store.Markdown()
		if md == "" {
			return "", nil
		}
		return md + "\n", nil
	case FormatJSON:
		data, err := json.MarshalIndent(r.document(), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case FormatYAML:
		var sb strings.Builder
		enc := yaml.NewEncoder(&sb)
		enc.SetIndent(2)
		if err := enc.Encode(r.document()); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
		return sb.String(), nil
	default:
		return "", errors.Configf("unknown report format %q", format)
	}
}

func (r *Report) document() document {
	return document{Total: r.Total, Passed: r.Passed, Results: r.Store.Results()}
}
