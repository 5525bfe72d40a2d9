package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no file
		want    Prefs
	}{
		{"missing file", "", Default()},
		{"both fields", "theme = \"Slate\"\nbody_part = \"back\"\n", Prefs{Theme: "Slate", BodyPart: "back"}},
		{"theme only", "theme = \"Kanagawa\"\n", Prefs{Theme: "Kanagawa", BodyPart: "all"}},
		{"blank values", "theme = \"  \"\nbody_part = \"\"\n", Default()},
		{"padded values", "theme = \" Slate \"\nbody_part = \" waist\"\n", Prefs{Theme: "Slate", BodyPart: "waist"}},
		{"invalid toml", "not valid toml {{{\n", Default()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}
			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "reps")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("body_part = \"chest\"\n"), 0o644))

	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Prefs{Theme: "Nightfox", BodyPart: "chest"}, got)
}

func TestSave_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")

	require.NoError(t, Save(path, Prefs{Theme: "Slate"}))

	got, _ := Load(path)
	assert.Equal(t, Prefs{Theme: "Slate", BodyPart: "all"}, got)
}

func TestUpdate_PreservesOtherFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, Save(path, Prefs{Theme: "Kanagawa", BodyPart: "chest"}))

	got, err := Update(path, func(p *Prefs) { p.BodyPart = "waist" })
	require.NoError(t, err)
	assert.Equal(t, Prefs{Theme: "Kanagawa", BodyPart: "waist"}, got)

	loaded, _ := Load(path)
	assert.Equal(t, got, loaded)
}

func TestUpdate_StartsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	got, err := Update(path, func(p *Prefs) { p.Theme = "Slate" })
	require.NoError(t, err)
	assert.Equal(t, Prefs{Theme: "Slate", BodyPart: "all"}, got)
}
