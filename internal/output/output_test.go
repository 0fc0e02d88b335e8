package output

import (
	"bytes"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return NewWithWriters(stdout, stderr, false), stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestWriter_SetQuiet(t *testing.T) {
	w, _, _ := newTestWriter()

	w.SetQuiet(true)
	if !w.quiet {
		t.Error("SetQuiet(true) did not set quiet")
	}

	w.SetQuiet(false)
	if w.quiet {
		t.Error("SetQuiet(false) did not unset quiet")
	}
}

func TestWriter_Print(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Print("hello %s", "world")

	if got := stdout.String(); got != "hello world" {
		t.Errorf("Print() = %q, want %q", got, "hello world")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Out(t *testing.T) {
	w, stdout, _ := newTestWriter()

	if _, err := w.Out().Write([]byte("report")); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "report" {
		t.Errorf("Out() wrote %q, want %q", got, "report")
	}
}

func TestWriter_Errorln(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Errorln("error %d", 42)

	if got := stderr.String(); got != "error 42\n" {
		t.Errorf("Errorln() = %q, want %q", got, "error 42\n")
	}
}

func TestWriter_Info(t *testing.T) {
	tests := []struct {
		name   string
		quiet  bool
		expect string
	}{
		{"normal mode", false, "info message\n"},
		{"quiet mode", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, stderr := newTestWriter()
			w.quiet = tt.quiet

			w.Info("info %s", "message")

			if got := stderr.String(); got != tt.expect {
				t.Errorf("Info() = %q, want %q", got, tt.expect)
			}
			if stdout.Len() != 0 {
				t.Errorf("Info() wrote to stdout: %q", stdout.String())
			}
		})
	}
}

func TestWriter_Warning(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		expect string
	}{
		{"without color", false, "warning: caution\n"},
		{"with color", true, "\033[33mwarning:\033[0m caution\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, stderr := newTestWriter()
			w.color = tt.color

			w.Warning("caution")

			if got := stderr.String(); got != tt.expect {
				t.Errorf("Warning() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	tests := []struct {
		name   string
		color  bool
		expect string
	}{
		{"without color", false, "lre: bad suite\n"},
		{"with color", true, "\033[31mlre:\033[0m bad suite\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, stderr := newTestWriter()
			w.color = tt.color

			w.ErrorPrefix("bad %s", "suite")

			if got := stderr.String(); got != tt.expect {
				t.Errorf("ErrorPrefix() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestWriter_Failure(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Failure("[norris] b0", "saw 1.2 vs 1.2345")

	if got, want := stderr.String(), "  x [norris] b0  saw 1.2 vs 1.2345\n"; got != want {
		t.Errorf("Failure() = %q, want %q", got, want)
	}
}

func TestWriter_Summary(t *testing.T) {
	tests := []struct {
		name   string
		quiet  bool
		expect string
	}{
		{"normal mode", false, "\n=== Summary ===\n  Suites: 2\n  Passed: 5\n  Failed: 1\n"},
		{"quiet mode", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, stderr := newTestWriter()
			w.quiet = tt.quiet

			w.SummaryHeader("Summary")
			w.SummaryItem("Suites", "2")
			w.SummaryPassed("Passed", "5")
			w.SummaryFailed("Failed", "1")

			if got := stderr.String(); got != tt.expect {
				t.Errorf("summary = %q, want %q", got, tt.expect)
			}
			if stdout.Len() != 0 {
				t.Errorf("summary wrote to stdout: %q", stdout.String())
			}
		})
	}
}

func TestWriter_HelpCommand(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.HelpCommand("digits <literal>", "Count digits", 18)

	if got, want := stdout.String(), "  digits <literal>    Count digits\n"; got != want {
		t.Errorf("HelpCommand() = %q, want %q", got, want)
	}
}

func TestWriter_HelpCommand_ColorPadsPlainWidth(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.color = true

	w.HelpFlag("--out=<path>", "Write report", 14)

	got := stdout.String()
	if !strings.Contains(got, colorPlaceholder+"<path>"+reset) {
		t.Errorf("HelpFlag() did not color placeholder: %q", got)
	}
	if !strings.Contains(got, reset+"    "+colorDescription+"Write report") {
		t.Errorf("HelpFlag() padding wrong: %q", got)
	}
}

func TestWriter_HelpSection(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.HelpTitle("lre - title")
	w.HelpSection("Usage:")
	w.HelpUsage("lre <command>")
	w.HelpExample("lre check", "Check suites")

	want := "lre - title\n\nUsage:\n  lre <command>\n  lre check\n      Check suites\n"
	if got := stdout.String(); got != want {
		t.Errorf("help = %q, want %q", got, want)
	}
}

func TestWriter_ColorPlaceholders(t *testing.T) {
	w, _, _ := newTestWriter()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a <b> c", "a " + reset + colorPlaceholder + "<b>" + reset + " c"},
		{"unclosed <b", "unclosed <b"},
	}
	for _, tt := range tests {
		if got := w.colorPlaceholders(tt.in); got != tt.want {
			t.Errorf("colorPlaceholders(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
