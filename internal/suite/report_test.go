package suite

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/lre/internal/errors"
	"github.com/AndreyAkinshin/lre/pkg/lre"
)

func sampleReport() *Report {
	store := lre.NewStore()
	store.Add(lre.Result{Table: "T", TestCase: "a", Field: "f", LRE: 5, DigitsPossible: 5, Annotation: "35 iters"})
	store.Add(lre.Result{Table: "T", TestCase: "b", Field: "f", LRE: 2.5, DigitsPossible: 15})
	return &Report{Store: store, Total: 2, Passed: 2}
}

func TestReport_RenderJSON(t *testing.T) {
	got, err := sampleReport().Render(FormatJSON)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var doc document
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, got)
	}
	want := document{Total: 2, Passed: 2, Results: sampleReport().Store.Results()}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(got, `"test_case": "a"`) {
		t.Errorf("JSON output missing snake_case keys:\n%s", got)
	}
	if strings.Count(got, "annotation") != 1 {
		t.Errorf("empty annotation should be omitted:\n%s", got)
	}
}

func TestReport_RenderYAML(t *testing.T) {
	got, err := sampleReport().Render(FormatYAML)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var doc document
	if err := yaml.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, got)
	}
	if doc.Total != 2 || len(doc.Results) != 2 {
		t.Errorf("decoded %+v", doc)
	}
	if !strings.Contains(got, "digits_possible: 15") {
		t.Errorf("YAML output missing digits_possible:\n%s", got)
	}
}

func TestReport_RenderJSONFiniteStaysNumeric(t *testing.T) {
	got, err := sampleReport().Render(FormatJSON)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, `"lre": 2.5`) {
		t.Errorf("finite LRE should render as a number:\n%s", got)
	}
}

func TestReport_RenderEmptyJSON(t *testing.T) {
	r := &Report{Store: lre.NewStore()}
	got, err := r.Render(FormatJSON)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got, `"results": []`) {
		t.Errorf("Render() = %s, want empty results array", got)
	}
}

func TestReport_RenderUnknownFormat(t *testing.T) {
	_, err := sampleReport().Render("html")
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("Render(html) error = %v, want configuration error", err)
	}
}

func TestReport_Err(t *testing.T) {
	r := sampleReport()
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}

	r.Failures = append(r.Failures, Failure{Suite: "s", Case: "a", Field: "f"})
	if got := errors.GetExitCode(r.Err()); got != errors.ExitMismatch {
		t.Errorf("GetExitCode(Err()) = %d, want %d", got, errors.ExitMismatch)
	}
}

func TestFailure_String(t *testing.T) {
	j := lre.MustCheckLiteral(1.2, "1.2345", lre.LiteralOptions{})
	f := Failure{Suite: "s", Case: "c", Field: "f", Judgment: j}

	got := f.String()
	if !strings.HasPrefix(got, "[s] c.f: FAIL: saw 1.2 vs 1.2345") {
		t.Errorf("String() = %q", got)
	}
}
