// Package prefs persists reps user preferences: the colour theme and the
// last selected body-part filter. Preferences are stored in
// ~/.config/reps/prefs.toml; every read error degrades to defaults.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme    string `toml:"theme"`
	BodyPart string `toml:"body_part"`
}

const (
	defaultPrefsPath = "~/.config/reps/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultBodyPart  = "all"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, BodyPart: defaultBodyPart}
}

// Load reads preferences from path (empty means DefaultPath). A missing,
// unreadable or malformed file yields Default; the error is always nil and
// kept for call-site symmetry with Save.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), nil
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.normalized(), nil
}

// Save writes p to path, creating parent directories.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Update loads the preferences at path, applies fn and saves the result.
func Update(path string, fn func(*Prefs)) (Prefs, error) {
	p, _ := Load(path)
	fn(&p)
	p = p.normalized()
	return p, Save(path, p)
}

// normalized trims values and fills blanks with defaults.
func (p Prefs) normalized() Prefs {
	d := Default()
	if p.Theme = strings.TrimSpace(p.Theme); p.Theme == "" {
		p.Theme = d.Theme
	}
	if p.BodyPart = strings.TrimSpace(p.BodyPart); p.BodyPart == "" {
		p.BodyPart = d.BodyPart
	}
	return p
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}
