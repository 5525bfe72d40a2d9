package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name, muscle, equipment or body part"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return ti
}

// startSearch focuses the search box.
func (m *Model) startSearch() tea.Cmd {
	m.searching = true
	m.searchInput.Width = max(m.width-8, 20)
	return m.searchInput.Focus()
}

// handleSearchKey processes input while the search box is focused.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		term := strings.TrimSpace(m.searchInput.Value())
		if term == "" || m.catalog == nil {
			// Nothing to search for; the collection stays as it is.
			return m, nil
		}
		m.searching = false
		m.searchInput.Blur()
		m.pending++
		return m, searchCmd(m.ctx, m.catalog, term)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}
