package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/logging"
	"github.com/five82/reps/internal/paginate"
	"github.com/five82/reps/internal/videosearch"
)

// Config holds everything reps needs to reach the APIs.
type Config struct {
	APIKey          string
	ExerciseBaseURL string
	ExerciseHost    string
	VideoBaseURL    string
	VideoHost       string
	PageSize        int
	RequestTimeout  time.Duration
	LogDir          string
	LogLevel        string
}

// Environment variables consulted for the API key, in order.
const (
	EnvAPIKey       = "REPS_RAPIDAPI_KEY"
	EnvLegacyAPIKey = "RAPID_API_KEY"
)

// ErrMissingAPIKey is reported by Validate when no key was configured.
var ErrMissingAPIKey = errors.New("rapidapi key is not configured (set api_key or " + EnvAPIKey + ")")

const (
	defaultConfigPath = "~/.config/reps/config.toml"
	defaultLogDir     = "~/.local/state/reps"
	defaultLogLevel   = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ExerciseBaseURL: exercisedb.DefaultBaseURL,
		ExerciseHost:    exercisedb.DefaultHost,
		VideoBaseURL:    videosearch.DefaultBaseURL,
		VideoHost:       videosearch.DefaultHost,
		PageSize:        paginate.DefaultPageSize,
		LogDir:          mustExpand(defaultLogDir),
		LogLevel:        defaultLogLevel,
	}
}

// Load parses the config at path, falling back to defaults when missing.
// The API key environment variables override the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIKey          string `toml:"api_key"`
		ExerciseBaseURL string `toml:"exercise_base_url"`
		ExerciseHost    string `toml:"exercise_host"`
		VideoBaseURL    string `toml:"video_base_url"`
		VideoHost       string `toml:"video_host"`
		PageSize        int    `toml:"page_size"`
		RequestTimeout  int    `toml:"request_timeout"`
		LogDir          string `toml:"log_dir"`
		LogLevel        string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	cfg.ExerciseBaseURL = orDefault(raw.ExerciseBaseURL, cfg.ExerciseBaseURL)
	cfg.ExerciseHost = orDefault(raw.ExerciseHost, cfg.ExerciseHost)
	cfg.VideoBaseURL = orDefault(raw.VideoBaseURL, cfg.VideoBaseURL)
	cfg.VideoHost = orDefault(raw.VideoHost, cfg.VideoHost)
	cfg.LogLevel = orDefault(raw.LogLevel, cfg.LogLevel)
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeout) * time.Second
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}

	cfg.applyEnv()
	return cfg, nil
}

// Validate reports configuration that would make every request fail.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.APIKey) == "" {
		errs = append(errs, ErrMissingAPIKey)
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	if strings.TrimSpace(c.ExerciseBaseURL) == "" {
		errs = append(errs, errors.New("exercise_base_url is empty"))
	}
	return errors.Join(errs...)
}

// LogPath returns the path of the reps log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return logging.Path(mustExpand(defaultLogDir))
	}
	return logging.Path(c.LogDir)
}

func (c *Config) applyEnv() {
	for _, name := range []string{EnvAPIKey, EnvLegacyAPIKey} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			c.APIKey = v
			return
		}
	}
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
