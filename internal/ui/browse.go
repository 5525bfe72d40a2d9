package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/paginate"
)

// handleBrowseKey processes keyboard input for the browse view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.snapshot.Page()

	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.startSearch()

	case key.Matches(msg, m.keys.Tab):
		if m.focus == focusResults {
			m.focus = focusFilters
		} else {
			m.focus = focusResults
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPart):
		m.focus = focusFilters
		if m.partCursor > 0 {
			m.partCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPart):
		m.focus = focusFilters
		if m.partCursor < len(m.bodyParts())-1 {
			m.partCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.goToPage(page.Index + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.goToPage(page.Index - 1)
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		m.goToPage(1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reload()

	case key.Matches(msg, m.keys.Open):
		if m.focus == focusFilters {
			m.focus = focusResults
			return m, m.selectBodyPart()
		}
		return m, m.openSelected()
	}

	if m.focus != focusResults || len(page.Items) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(page.Items)-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = len(page.Items) - 1
	}
	return m, nil
}

// reload re-fetches the active body part. Searches are not repeated.
func (m *Model) reload() tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	m.pending++
	return setBodyPartCmd(m.ctx, m.catalog, m.snapshot.BodyPart)
}

// goToPage moves the catalog to index and refreshes the local snapshot.
func (m *Model) goToPage(index int) {
	if m.catalog == nil {
		return
	}
	m.catalog.SetPage(index)
	m.snapshot = m.catalog.Snapshot()
	m.selectedRow = 0
}

// selectedExercise returns the highlighted row on the current page.
func (m Model) selectedExercise() (exercisedb.Exercise, bool) {
	items := m.snapshot.Page().Items
	if m.selectedRow < 0 || m.selectedRow >= len(items) {
		return exercisedb.Exercise{}, false
	}
	return items[m.selectedRow], true
}

// renderBrowse renders filter chips, the search line, the result table and
// the pagination control.
func (m Model) renderBrowse() string {
	height := m.contentHeight()
	page := m.snapshot.Page()

	chips := m.renderChips()
	search := m.renderSearchLine()
	var pager string
	if page.ShowControl() {
		pager = m.renderPager(page)
	}

	used := lipgloss.Height(chips) + lipgloss.Height(search)
	if pager != "" {
		used += lipgloss.Height(pager)
	}
	boxHeight := max(height-used, 3)

	title := fmt.Sprintf("Exercises (%d)", page.Total)
	if term := m.snapshot.SearchTerm; term != "" {
		title = fmt.Sprintf("Results for %q (%d)", term, page.Total)
	}
	table := m.renderTitledBox(title, m.renderResults(page, m.width-2), m.width, boxHeight, m.focus == focusResults)

	parts := []string{chips, search, table}
	if pager != "" {
		parts = append(parts, pager)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderChips renders the body-part filter row.
func (m Model) renderChips() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)
	active := m.snapshot.BodyPart

	chips := make([]string, 0, len(m.bodyParts()))
	for i, part := range m.bodyParts() {
		style := styles.Chip
		if part == active || (active == "" && i == 0) {
			style = styles.ChipActive
		}
		if m.focus == focusFilters && i == m.partCursor {
			style = style.Underline(true).Foreground(lipgloss.Color(m.theme.Accent))
		}
		chips = append(chips, style.Render(titleCase(part)))
	}
	row := bg.Join(chips, " ")
	return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Background(lipgloss.Color(m.theme.Background)).Render(row)
}

// renderSearchLine shows the search input or a hint.
func (m Model) renderSearchLine() string {
	styles := m.theme.Styles()
	if m.searching {
		return m.searchInput.View()
	}
	if m.notice != "" {
		return styles.DangerText.Render("! " + m.notice)
	}
	return styles.FaintText.Render("/ to search all exercises")
}

// renderResults renders the current page as styled rows.
func (m Model) renderResults(page paginate.Page[exercisedb.Exercise], width int) string {
	styles := m.theme.Styles()
	if len(page.Items) == 0 {
		switch {
		case m.pending > 0:
			return styles.MutedText.Render(m.spinner.View() + " Loading exercises...")
		case m.snapshot.LastFailure != nil:
			return styles.DangerText.Render("No exercises: " + describeFailure(m.snapshot.LastFailure))
		default:
			return styles.MutedText.Render("No exercises")
		}
	}

	bgColor := m.theme.SurfaceAlt
	if m.focus == focusResults {
		bgColor = m.theme.FocusBg
	}

	lines := make([]string, 0, len(page.Items))
	for i, ex := range page.Items {
		selected := m.focus == focusResults && i == m.selectedRow
		rowBg := bgColor
		if selected {
			rowBg = m.theme.SelectionBg
		}
		content := m.formatExerciseRow(page.First()+i+1, ex, width, rowBg, selected)
		lines = append(lines, lipgloss.NewStyle().Background(lipgloss.Color(rowBg)).Width(width).Render(content))
	}
	return strings.Join(lines, "\n")
}

// formatExerciseRow formats "N  Name · Target · Equipment".
func (m Model) formatExerciseRow(n int, ex exercisedb.Exercise, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	numStyle, nameStyle, metaStyle, sepStyle := styles.MutedText, styles.Text, styles.InfoText, styles.FaintText
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		numStyle, nameStyle, metaStyle, sepStyle = sel, sel.Bold(true), sel, sel
	}

	meta := []string{titleCase(ex.Target)}
	if m.width >= LayoutWideWidth {
		meta = append(meta, titleCase(ex.Equipment))
	}
	metaStr := strings.Join(meta, " · ")

	num := padRight(fmt.Sprintf("%d", n), 4)
	nameWidth := max(width-len(num)-lipgloss.Width(metaStr)-4, 10)

	return bg.Render(num, numStyle) +
		bg.Render(padRight(truncate(titleCase(ex.Name), nameWidth), nameWidth), nameStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(metaStr, metaStyle)
}

// renderPager renders "‹ Prev  Page 2 of 3  Next ›". Only called when the
// collection spans more than one page.
func (m Model) renderPager(page paginate.Page[exercisedb.Exercise]) string {
	styles := m.theme.Styles()
	prev := styles.FaintText.Render("‹ Prev")
	if page.HasPrev() {
		prev = styles.AccentText.Render("‹ Prev")
	}
	next := styles.FaintText.Render("Next ›")
	if page.HasNext() {
		next = styles.AccentText.Render("Next ›")
	}
	label := styles.Text.Render(fmt.Sprintf("Page %d of %d", page.Index, page.TotalPages))
	line := prev + "  " + label + "  " + next
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}
