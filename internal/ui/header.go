package ui

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reps/internal/rapidapi"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	parts := []string{bg.Render("reps", styles.Logo)}

	part := m.snapshot.BodyPart
	if part == "" {
		part = "all"
	}
	parts = append(parts,
		bg.Field("Body part:", titleCase(part), styles.MutedText, styles.Text))

	if term := m.snapshot.SearchTerm; term != "" {
		parts = append(parts,
			bg.Field("Search:", truncate(term, 20), styles.MutedText, styles.AccentText))
	}

	page := m.snapshot.Page()
	parts = append(parts,
		bg.Field("Exercises:", fmt.Sprintf("%d", page.Total), styles.MutedText, styles.Text))
	if page.ShowControl() {
		parts = append(parts,
			bg.Field("Page:", fmt.Sprintf("%d/%d", page.Index, page.TotalPages), styles.MutedText, styles.Text))
	}

	if m.pending > 0 || m.detailLoading {
		parts = append(parts, bg.Render(m.spinner.View(), styles.InfoText))
	}

	if f := m.snapshot.LastFailure; f != nil {
		label := "API ERROR"
		if m.snapshot.IsOffline() {
			label = "OFFLINE"
		}
		text := describeFailure(f)
		if compact {
			text = truncate(text, 30)
		}
		parts = append(parts,
			bg.Field(label, text, styles.DangerText.Bold(true), styles.DangerText))
	} else if !m.snapshot.LastUpdated.IsZero() && !compact {
		parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.MutedText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxWidth(m.width).
		Render(bg.Join(parts, sep))
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.searching:
		commands = []cmd{
			{"enter", "Search"},
			{"esc", "Cancel"},
		}
	case m.currentView == ViewDetail:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"esc", "Back"},
			{"D", "Diagnostics"},
			{"?", "More"},
		}
	case m.currentView == ViewDiagnostics:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"r", "Reload"},
			{"esc", "Back"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"h/l", "Body part"},
			{"enter", "Select"},
			{"/", "Search"},
			{"j/k", "Navigate"},
			{"n/p", "Page"},
			{"r", "Reload"},
			{"D", "Diagnostics"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		MaxWidth(m.width).
		Render(bg.Join(segments, "  "))
}

// describeFailure turns a gateway failure into a short user-facing reason.
func describeFailure(f *rapidapi.Failure) string {
	if f == nil {
		return ""
	}
	switch f.Reason {
	case rapidapi.ReasonHTTPStatus:
		switch f.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Sprintf("HTTP %d (check api_key)", f.Status)
		case http.StatusTooManyRequests:
			return "HTTP 429 (rate limited)"
		default:
			return fmt.Sprintf("HTTP %d", f.Status)
		}
	case rapidapi.ReasonTransport:
		return "network unreachable"
	case rapidapi.ReasonDecode:
		return "malformed response"
	case rapidapi.ReasonShape:
		return "unexpected response shape"
	default:
		return string(f.Reason)
	}
}
