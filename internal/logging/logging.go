// Package logging builds the zap logger used across reps.
//
// The TUI owns the terminal, so log output goes to a file. Tests and
// callers that want no output use zap.NewNop.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created under the log directory.
const FileName = "reps.log"

// Options configure logger construction.
type Options struct {
	// Dir receives FileName. Empty disables the file sink and logs to stderr.
	Dir   string
	Level string
	// Verbose forces debug level regardless of Level.
	Verbose bool
}

// Path returns the log file path for dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// New builds a JSON production logger writing to Options.Dir.
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(opts.Level))
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Sampling = nil

	if dir := strings.TrimSpace(opts.Dir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		path := Path(dir)
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "dpanic", "panic", "fatal": // map to error semantics
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
