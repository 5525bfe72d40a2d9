package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reps/internal/logtail"
)

// readDiagnosticsCmd loads the tail of the reps log.
func readDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return diagMsg{}
		}
		raw, err := logtail.Read(path, DiagnosticsLines)
		if err != nil {
			return diagMsg{err: err}
		}
		lines := make([]string, len(raw))
		for i, line := range raw {
			lines[i] = logtail.Parse(line).Summary()
		}
		return diagMsg{lines: lines}
	}
}

func (m *Model) handleDiagnostics(msg diagMsg) {
	m.diagLines = msg.lines
	m.diagErr = msg.err
	m.updateDiagViewport()
	m.diagViewport.GotoBottom()
}

func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Refresh) {
		return m, readDiagnosticsCmd(m.logPath)
	}
	var cmd tea.Cmd
	m.diagViewport, cmd = m.diagViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateDiagViewport() {
	if !m.ready && m.diagViewport.Width == 0 {
		return
	}
	styles := m.theme.Styles()
	switch {
	case m.diagErr != nil:
		m.diagViewport.SetContent(styles.DangerText.Render("Could not read log: " + m.diagErr.Error()))
	case len(m.diagLines) == 0:
		m.diagViewport.SetContent(styles.MutedText.Render("Log is empty"))
	default:
		var b strings.Builder
		for i, line := range m.diagLines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.colorizeDiagLine(line, styles))
		}
		m.diagViewport.SetContent(b.String())
	}
}

// colorizeDiagLine tints a summary by its level word.
func (m Model) colorizeDiagLine(line string, styles Styles) string {
	switch {
	case strings.Contains(line, " ERROR "):
		return styles.DangerText.Render(line)
	case strings.Contains(line, " WARN "):
		return styles.WarningText.Render(line)
	case strings.Contains(line, " DEBUG "):
		return styles.FaintText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}

func (m Model) renderDiagnostics() string {
	title := "Diagnostics"
	if m.logPath != "" {
		title += " · " + truncateMiddle(m.logPath, 50)
	}
	return m.renderTitledBox(title, m.diagViewport.View(), m.width, m.contentHeight(), true)
}
