package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle paints every segment of a bar, including the gaps between
// styled words, with one background color. lipgloss resets after each
// styled run, so unstyled spaces would show the terminal background.
type BgStyle struct {
	fill lipgloss.Style
}

// NewBgStyle returns a helper for bgColor.
func NewBgStyle(bgColor string) BgStyle {
	return BgStyle{fill: lipgloss.NewStyle().Background(lipgloss.Color(bgColor))}
}

// Render styles text word by word and joins the words with painted spaces.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	painted := style.Inherit(b.fill)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = painted.Render(w)
		}
	}
	return strings.Join(words, b.Space())
}

// Field renders "label value" with both halves on the background.
func (b BgStyle) Field(label, value string, labelStyle, valueStyle lipgloss.Style) string {
	return b.Render(label, labelStyle) + b.Space() + b.Render(value, valueStyle)
}

// Space returns one painted space.
func (b BgStyle) Space() string {
	return b.fill.Render(" ")
}

// Spaces returns n painted spaces.
func (b BgStyle) Spaces(n int) string {
	return b.Sep(strings.Repeat(" ", n))
}

// Sep paints an arbitrary separator.
func (b BgStyle) Sep(sep string) string {
	return b.fill.Render(sep)
}

// Join joins parts with a painted separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}
