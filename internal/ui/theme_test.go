package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetThemeFallsBackToNightfox(t *testing.T) {
	assert.Equal(t, "Kanagawa", GetTheme("Kanagawa").Name)
	assert.Equal(t, "Nightfox", GetTheme("").Name)
	assert.Equal(t, "Nightfox", GetTheme("Solarized").Name)
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		assert.Equal(t, names[(i+1)%len(names)], NextTheme(name))
	}
	assert.Equal(t, names[0], NextTheme("unknown"))
}

func TestEveryThemeIsRegistered(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		assert.Equal(t, name, theme.Name)
		assert.NotEmpty(t, theme.Background, name)
		assert.NotEmpty(t, theme.ChipActive, name)
	}
}
