// Package errors provides structured error types and exit codes for the lre CLI.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/AndreyAkinshin/lre/pkg/lre"
	"github.com/AndreyAkinshin/lre/pkg/lrecli"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = lrecli.ExitSuccess
	ExitRuntimeError = lrecli.ExitFailure
	ExitConfigError  = lrecli.ExitConfigError
	ExitMismatch     = lrecli.ExitMismatch
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindMismatch
)

// LREError is the base error type for the CLI.
type LREError struct {
	Kind    ErrorKind
	Message string
	Suite   string // Suite name if applicable
	Case    string // Test case name if applicable
	Cause   error  // Underlying error
}

func (e *LREError) Error() string {
	if e.Suite != "" && e.Case != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Suite, e.Case, e.Message)
	}
	if e.Suite != "" {
		return fmt.Sprintf("[%s] %s", e.Suite, e.Message)
	}
	return e.Message
}

func (e *LREError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *LREError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindMismatch:
		return ExitMismatch
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *LREError {
	return &LREError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Config creates a new configuration error.
func Config(message string) *LREError {
	return &LREError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *LREError {
	return Config(fmt.Sprintf(format, args...))
}

// Mismatchf creates a precision mismatch error with formatting.
func Mismatchf(format string, args ...interface{}) *LREError {
	return &LREError{
		Kind:    KindMismatch,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *LREError {
	return &LREError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// CaseError creates a configuration error for a specific suite case.
func CaseError(suite, testCase string, cause error) *LREError {
	return &LREError{
		Kind:    KindConfig,
		Suite:   suite,
		Case:    testCase,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *LREError {
	return &LREError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
// A bare *lre.ConfigError anywhere in the chain is a configuration error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var le *LREError
	if stderrors.As(err, &le) {
		return le.ExitCode()
	}
	var ce *lre.ConfigError
	if stderrors.As(err, &ce) {
		return ExitConfigError
	}
	return ExitRuntimeError
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, message string) *LREError {
	return &LREError{
		Kind:    KindConfig,
		Message: fmt.Sprintf("%s: %v", message, err),
		Cause:   err,
	}
}

// WrapValidation wraps a configuration value that parsed but failed validation.
func WrapValidation(err error, message string) *LREError {
	return &LREError{
		Kind:    KindValidation,
		Message: fmt.Sprintf("%s: %v", message, err),
		Cause:   err,
	}
}
