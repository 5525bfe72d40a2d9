package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvLegacyAPIKey, "")
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearKeyEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ExerciseBaseURL != "https://exercisedb.p.rapidapi.com" {
		t.Fatalf("ExerciseBaseURL = %q", cfg.ExerciseBaseURL)
	}
	if cfg.VideoHost != "youtube-search-and-download.p.rapidapi.com" {
		t.Fatalf("VideoHost = %q", cfg.VideoHost)
	}
	if cfg.PageSize != 9 {
		t.Fatalf("PageSize = %d, want 9", cfg.PageSize)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.LogPath() != filepath.Join(wantLogDir, "reps.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
	if !errors.Is(cfg.Validate(), ErrMissingAPIKey) {
		t.Fatalf("Validate = %v, want ErrMissingAPIKey", cfg.Validate())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearKeyEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_key = "  secret  "
exercise_base_url = " http://localhost:9000 "
page_size = 12
request_timeout = 15
log_dir = "  ~/.reps/logs  "
log_level = "debug"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "secret" {
		t.Fatalf("APIKey = %q, want secret", cfg.APIKey)
	}
	if cfg.ExerciseBaseURL != "http://localhost:9000" {
		t.Fatalf("ExerciseBaseURL = %q", cfg.ExerciseBaseURL)
	}
	if cfg.ExerciseHost != "exercisedb.p.rapidapi.com" {
		t.Fatalf("ExerciseHost should keep default, got %q", cfg.ExerciseHost)
	}
	if cfg.PageSize != 12 || cfg.RequestTimeout != 15*time.Second || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %#v", cfg)
	}
	if cfg.LogDir != filepath.Join(home, ".reps", "logs") {
		t.Fatalf("LogDir = %q", cfg.LogDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
}

func TestLoad_EnvOverridesFileKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearKeyEnv(t)
	t.Setenv(EnvLegacyAPIKey, "legacy")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_key = "file"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "legacy" {
		t.Fatalf("APIKey = %q, want legacy", cfg.APIKey)
	}

	t.Setenv(EnvAPIKey, "primary")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "primary" {
		t.Fatalf("APIKey = %q, want primary", cfg.APIKey)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("page_size = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestValidate_PageSize(t *testing.T) {
	cfg := Default()
	cfg.APIKey = "k"
	cfg.PageSize = 0
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "page_size") {
		t.Fatalf("Validate = %v, want page_size error", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/foo/bar")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "foo", "bar") {
		t.Fatalf("expandPath = %q", got)
	}
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath(empty) should fail")
	}
}
