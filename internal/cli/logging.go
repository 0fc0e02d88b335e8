package cli

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostic logger. Tests replace it.
var newLogger = buildLogger

// buildLogger logs JSON to stderr: warnings by default, debug events with
// --verbose, errors only with --quiet.
func buildLogger(opts *GlobalOptions) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(logLevel(opts))
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func logLevel(opts *GlobalOptions) zapcore.Level {
	switch {
	case opts == nil:
		return zapcore.WarnLevel
	case opts.Verbose:
		return zapcore.DebugLevel
	case opts.Quiet:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
