package lrecli_test

import (
	"testing"

	"github.com/AndreyAkinshin/lre/internal/errors"
	"github.com/AndreyAkinshin/lre/pkg/lrecli"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", lrecli.ExitSuccess, 0},
		{"ExitFailure", lrecli.ExitFailure, 1},
		{"ExitConfigError", lrecli.ExitConfigError, 2},
		{"ExitMismatch", lrecli.ExitMismatch, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("lrecli.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodeConsistency keeps the public constants in step with the codes
// the CLI actually returns.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
	}{
		{"Success", lrecli.ExitSuccess, errors.ExitSuccess},
		{"Failure/RuntimeError", lrecli.ExitFailure, errors.ExitRuntimeError},
		{"ConfigError", lrecli.ExitConfigError, errors.ExitConfigError},
		{"Mismatch", lrecli.ExitMismatch, errors.ExitMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("exit code mismatch: lrecli constant = %d, errors constant = %d",
					tt.public, tt.internal)
			}
		})
	}
}
