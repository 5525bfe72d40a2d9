package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/rapidapi"
)

func (m *Model) initDetailViewport() {
	m.detailViewport = viewport.New(max(m.width-4, 10), max(m.contentHeight()-2, 1))
}

func (m *Model) initDiagViewport() {
	m.diagViewport = viewport.New(max(m.width-4, 10), max(m.contentHeight()-2, 1))
}

func (m *Model) resizeViewports() {
	w, h := max(m.width-4, 10), max(m.contentHeight()-2, 1)
	m.detailViewport.Width, m.detailViewport.Height = w, h
	m.diagViewport.Width, m.diagViewport.Height = w, h
}

// openSelected switches to the detail view and starts loading the
// highlighted exercise.
func (m *Model) openSelected() tea.Cmd {
	ex, ok := m.selectedExercise()
	if !ok || m.loader == nil {
		return nil
	}
	m.currentView = ViewDetail
	m.detailID = ex.ID
	m.detail = nil
	m.detailErr = nil
	m.detailLoading = true
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
	return loadDetailCmd(m.ctx, m.loader, ex.ID)
}

// handleDetail stores a finished detail load if it is still the one shown.
func (m *Model) handleDetail(msg detailMsg) {
	if msg.id != m.detailID {
		return
	}
	m.detailLoading = false
	if msg.err != nil {
		m.detailErr = msg.err
		m.detail = nil
	} else {
		d := msg.detail
		m.detail = &d
		m.detailErr = nil
	}
	m.updateDetailViewport()
}

// handleDetailKey scrolls the detail viewport.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateDetailViewport() {
	if !m.ready && m.detailViewport.Width == 0 {
		return
	}
	m.detailViewport.SetContent(m.detailContent())
}

func (m Model) renderDetail() string {
	title := "Exercise"
	if m.detail != nil {
		title = titleCase(m.detail.Exercise.Name)
	}
	return m.renderTitledBox(title, m.detailViewport.View(), m.width, m.contentHeight(), true)
}

// detailContent renders the exercise, its videos and similar exercises.
func (m Model) detailContent() string {
	styles := m.theme.Styles()
	switch {
	case m.detailLoading:
		return styles.MutedText.Render(m.spinner.View() + " Loading exercise...")
	case m.detailErr != nil:
		reason := m.detailErr.Error()
		if f, ok := rapidapi.AsFailure(m.detailErr); ok {
			reason = describeFailure(f)
		}
		return styles.DangerText.Render("Could not load exercise: " + reason)
	case m.detail == nil:
		return styles.MutedText.Render("Select an exercise")
	}

	d := m.detail
	ex := d.Exercise
	labelStyle := styles.MutedText.Width(18)

	var b strings.Builder
	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	field("ID", ex.ID)
	field("Body part", titleCase(ex.BodyPart))
	field("Target", titleCase(ex.Target))
	field("Equipment", titleCase(ex.Equipment))
	if len(ex.SecondaryMuscles) > 0 {
		muscles := make([]string, len(ex.SecondaryMuscles))
		for i, mu := range ex.SecondaryMuscles {
			muscles[i] = titleCase(mu)
		}
		field("Secondary", strings.Join(muscles, ", "))
	}
	field("Demo", ex.GifURL)

	if len(ex.Instructions) > 0 {
		b.WriteString("\n")
		b.WriteString(section(styles, "Instructions"))
		wrap := lipgloss.NewStyle().Width(max(m.detailViewport.Width-4, 20))
		for i, step := range ex.Instructions {
			b.WriteString(wrap.Render(fmt.Sprintf("%d. %s", i+1, step)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(section(styles, "Videos"))
	if len(d.Videos) == 0 {
		b.WriteString(styles.FaintText.Render("No videos found"))
		b.WriteString("\n")
	}
	for _, v := range d.Videos {
		b.WriteString(styles.Text.Render(truncate(v.Title, 60)))
		if v.Channel != "" {
			b.WriteString(styles.FaintText.Render("  " + v.Channel))
		}
		b.WriteString("\n  ")
		b.WriteString(styles.InfoText.Render(v.URL()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(section(styles, "Same target muscle"))
	b.WriteString(relatedList(styles, d.SameTarget))
	b.WriteString("\n")
	b.WriteString(section(styles, "Same equipment"))
	b.WriteString(relatedList(styles, d.SameEquipment))

	if len(d.Degraded) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Render("Unavailable: " + strings.Join(d.Degraded, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

func section(styles Styles, title string) string {
	return styles.AccentText.Bold(true).Render(title) + "\n"
}

func relatedList(styles Styles, items []exercisedb.Exercise) string {
	if len(items) == 0 {
		return styles.FaintText.Render("None") + "\n"
	}
	var b strings.Builder
	for _, ex := range items {
		b.WriteString(styles.Text.Render(titleCase(ex.Name)))
		if ex.Target != "" {
			b.WriteString(styles.FaintText.Render(" · " + titleCase(ex.Target)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
