package config

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateSuites(cfg); err != nil {
		return nil, err
	}

	if err := validateReport(cfg); err != nil {
		return nil, err
	}

	if err := validateJudge(cfg); err != nil {
		return nil, err
	}

	if cfg.Parallel < 0 {
		return nil, &ValidationError{Field: "parallel", Message: "must not be negative"}
	}
	if n := runtime.NumCPU(); cfg.Parallel > 4*n {
		warnings = append(warnings, fmt.Sprintf("parallel = %d is far above the %d available CPUs", cfg.Parallel, n))
	}

	return warnings, nil
}

func validateSuites(cfg *Config) error {
	if cfg.Suites == nil {
		return nil
	}
	if _, err := filepath.Match(cfg.Suites.Pattern, ""); err != nil {
		return &ValidationError{
			Field:   "suites.pattern",
			Message: fmt.Sprintf("invalid glob %q: %v", cfg.Suites.Pattern, err),
		}
	}
	return nil
}

func validateReport(cfg *Config) error {
	if cfg.Report == nil {
		return nil
	}
	return ValidateFormat(cfg.Report.Format)
}

func validateJudge(cfg *Config) error {
	if cfg.Judge == nil {
		return nil
	}
	if cfg.Judge.Slack <= 0 || cfg.Judge.Slack >= 1 {
		return &ValidationError{
			Field:   "judge.slack",
			Message: "must be in (0, 1)",
		}
	}
	return nil
}

// ValidateFormat checks a report format name.
func ValidateFormat(format string) error {
	switch format {
	case "", "markdown", "json", "yaml":
		return nil
	default:
		return &ValidationError{
			Field:   "report.format",
			Message: fmt.Sprintf(`must be "markdown", "json", or "yaml" (got %q)`, format),
		}
	}
}
