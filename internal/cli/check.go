package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/lre/internal/config"
	"github.com/AndreyAkinshin/lre/internal/errors"
	"github.com/AndreyAkinshin/lre/internal/suite"
)

// checkOptions holds the flags of the check command.
type checkOptions struct {
	files    []string
	format   string
	outPath  string
	parallel int // -1 means use the configuration
}

func parseCheckArgs(args []string) (*checkOptions, error) {
	co := &checkOptions{parallel: -1}

	value := func(i int, name string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("check: %s requires a value", name)
		}
		return args[i+1], nil
	}

	args = stripSeparator(args)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch {
		case arg == "--format":
			co.format, err = value(i, arg)
			i++
		case strings.HasPrefix(arg, "--format="):
			co.format = strings.TrimPrefix(arg, "--format=")
		case arg == "--out":
			co.outPath, err = value(i, arg)
			i++
		case strings.HasPrefix(arg, "--out="):
			co.outPath = strings.TrimPrefix(arg, "--out=")
		case strings.HasPrefix(arg, "--parallel="):
			co.parallel, err = strconv.Atoi(strings.TrimPrefix(arg, "--parallel="))
			if err != nil || co.parallel < 0 {
				err = fmt.Errorf("check: --parallel must be a non-negative integer")
			}
		case strings.HasPrefix(arg, "-"):
			err = fmt.Errorf("check: unknown flag: %s", arg)
		default:
			co.files = append(co.files, arg)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := config.ValidateFormat(co.format); err != nil {
		return nil, fmt.Errorf("check: --format: %w", err)
	}
	return co, nil
}

// cmdCheck judges reference suites and renders their LRE tables.
func cmdCheck(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printCheckUsage()
		return 0
	}

	co, err := parseCheckArgs(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	format := cfg.Report.Format
	if co.format != "" {
		format = co.format
	}
	outPath := cfg.Report.Path
	if co.outPath != "" {
		outPath = co.outPath
	}

	suites, err := loadSuites(co.files, cfg)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	logger, err := newLogger(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}
	defer func() { _ = logger.Sync() }()

	runner := suite.NewRunner(logger)
	runner.Parallel = cfg.Parallel
	if co.parallel >= 0 {
		runner.Parallel = co.parallel
	}
	runner.Slack = cfg.Judge.Slack

	report, err := runner.Run(context.Background(), suites)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	rendered, err := report.Render(format)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
			out.ErrorPrefix("failed to write report: %v", err)
			return errors.ExitRuntimeError
		}
		out.Info("wrote %s", outPath)
	} else {
		out.Print("%s", rendered)
	}

	for _, f := range report.Failures {
		out.Failure(fmt.Sprintf("[%s] %s.%s", f.Suite, f.Case, f.Field), f.Judgment.String())
	}
	printCheckSummary(len(suites), report)

	return errors.GetExitCode(report.Err())
}

func printCheckSummary(suiteCount int, report *suite.Report) {
	titleCase := cases.Title(language.English)
	out.SummaryHeader(titleCase.String("check summary"))
	out.SummaryItem("Suites", strconv.Itoa(suiteCount))
	out.SummaryItem("Cases", strconv.Itoa(report.Total))
	out.SummaryPassed("Passed", strconv.Itoa(report.Passed))
	if n := len(report.Failures); n > 0 {
		out.SummaryFailed("Failed", strconv.Itoa(n))
	}
}

// loadConfig loads the configuration named by --config, or the optional
// default file, and prints its warnings.
func loadConfig(opts *GlobalOptions) (*config.Config, error) {
	path := config.DefaultConfigFile
	optional := true
	if opts != nil && opts.ConfigPath != "" {
		path = opts.ConfigPath
		optional = false
	}

	cfg, warnings, err := config.LoadAndValidate(path, optional)
	for _, w := range warnings {
		out.Warning("%s", w)
	}
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, err.Error())
		}
		var ve *config.ValidationError
		if stderrors.As(err, &ve) {
			return nil, errors.WrapValidation(err, path)
		}
		return nil, errors.WrapConfig(err, path)
	}
	return cfg, nil
}

// loadSuites loads the named suite files, or every suite in the configured
// directory when none are named.
func loadSuites(files []string, cfg *config.Config) ([]*suite.Suite, error) {
	var (
		suites []*suite.Suite
		err    error
	)
	if len(files) == 0 {
		suites, err = suite.LoadDir(cfg.Suites.Directory, cfg.Suites.Pattern)
		if err == nil && len(suites) == 0 {
			return nil, errors.NotFound("suites", fmt.Sprintf("%s/%s", cfg.Suites.Directory, cfg.Suites.Pattern))
		}
	} else {
		for _, path := range files {
			var s *suite.Suite
			s, err = suite.Load(path)
			if err != nil {
				break
			}
			suites = append(suites, s)
		}
	}

	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, err.Error())
		}
		return nil, errors.WrapConfig(err, "invalid suite")
	}
	return suites, nil
}

// cmdConfig handles config subcommands.
func cmdConfig(args []string, opts *GlobalOptions) int {
	if len(args) == 0 || wantsHelp(args) {
		printConfigUsage()
		return 0
	}

	switch args[0] {
	case "validate":
		return cmdConfigValidate(opts)
	default:
		out.ErrorPrefix("config: unknown subcommand %q", args[0])
		printConfigUsage()
		return errors.ExitConfigError
	}
}

// cmdConfigValidate validates the configuration file. Unlike check, it
// requires the file to exist.
func cmdConfigValidate(opts *GlobalOptions) int {
	path := config.DefaultConfigFile
	if opts != nil && opts.ConfigPath != "" {
		path = opts.ConfigPath
	}

	cfg, warnings, err := config.LoadAndValidate(path, false)
	for _, w := range warnings {
		out.Warning("%s", w)
	}
	if err != nil {
		out.ErrorPrefix("%v", err)
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.ExitRuntimeError
		}
		return errors.ExitConfigError
	}

	out.Println("%s is valid", path)
	out.Info("  suites: %s/%s", cfg.Suites.Directory, cfg.Suites.Pattern)
	out.Info("  report: %s", cfg.Report.Format)
	return 0
}

func printCheckUsage() {
	w := out

	w.HelpTitle("lre check - judge reference suites")

	w.HelpSection("Usage:")
	w.HelpUsage("lre check [suite...] [options]")

	w.HelpSection("Description:")
	w.Println("  Evaluates every case of the named suite files, or of every suite in the")
	w.Println("  configured directory, and prints one LRE table per suite table.")
	w.Println("  Exits with %d when any case misses its expectation.", errors.ExitMismatch)

	w.HelpSection("Options:")
	w.HelpFlag("--format=<fmt>", "Report format: markdown, json, or yaml", widthFlagWithValue)
	w.HelpFlag("--out=<path>", "Write the report to a file", widthFlagWithValue)
	w.HelpFlag("--parallel=<n>", "Suites evaluated at once (0 = one per CPU)", widthFlagWithValue)
	w.HelpFlag("-h, --help", "Show this help", widthFlagWithValue)

	w.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	for _, format := range []string{suite.FormatMarkdown, suite.FormatJSON, suite.FormatYAML} {
		w.HelpExample("lre check --format="+format, titleCase.String(format)+" report of every suite")
	}
	w.Println("")
}

func printConfigUsage() {
	w := out

	w.HelpTitle("lre config - configuration utilities")

	w.HelpSection("Usage:")
	w.HelpUsage("lre config <subcommand>")

	w.HelpSection("Subcommands:")
	w.HelpCommand("validate", "Validate the configuration file", widthFlagShort)
	w.Println("")
}
