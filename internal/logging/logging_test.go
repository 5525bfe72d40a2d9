package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state", "reps")

	logger, err := New(Options{Dir: dir, Level: "info"})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Warn("gateway request failed", zap.String("reason", "http_status"), zap.Int("status", 403))
	_ = logger.Sync()

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `"msg":"gateway request failed"`)
	assert.Contains(t, text, `"status":403`)
	assert.NotContains(t, text, "hidden")
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(text), "\n")+1)
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Options{Dir: dir, Level: "error", Verbose: true})
	require.NoError(t, err)
	logger.Debug("visible")
	_ = logger.Sync()

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"DEBUG":   zapcore.DebugLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}
