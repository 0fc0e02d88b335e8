// Package lrecli provides public constants for tools that run the lre command,
// such as CI scripts deciding whether a precision regression occurred.
package lrecli

// Exit codes returned by the lre CLI.
const (
	// ExitSuccess indicates every judged case passed.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (unreadable file, missing suite directory, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid lre.json, a suite
	// that fails validation, a reference literal without digits, etc.).
	ExitConfigError = 2

	// ExitMismatch indicates that at least one case agreed with its reference to
	// fewer digits than expected, or to noticeably more.
	ExitMismatch = 3
)
