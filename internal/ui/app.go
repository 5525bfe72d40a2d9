package ui

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/reps/internal/catalog"
	"github.com/five82/reps/internal/detail"
	"github.com/five82/reps/internal/prefs"
	"github.com/five82/reps/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewDetail
	ViewDiagnostics
)

// focusPane is the part of the browse view receiving navigation keys.
type focusPane int

const (
	focusResults focusPane = iota
	focusFilters
)

// Catalog is the collection controller as seen by the UI.
type Catalog interface {
	SetBodyPart(ctx context.Context, part string) catalog.Outcome
	Search(ctx context.Context, term string) catalog.Outcome
	SetPage(index int) int
	Snapshot() state.Snapshot
}

// DetailLoader loads the detail view for one exercise.
type DetailLoader interface {
	Load(ctx context.Context, id string) (detail.Detail, error)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   Catalog
	Detail    DetailLoader
	Logger    *zap.Logger
	ThemeName string
	BodyPart  string // initial filter; falls back to "all" when unknown
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	catalog   Catalog
	loader    DetailLoader
	logger    *zap.Logger
	prefsPath string
	logPath   string
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	focus       focusPane
	showHelp    bool
	spinner     spinner.Model
	pending     int
	notice      string

	// Data state
	snapshot state.Snapshot

	// Browse state
	partCursor  int
	selectedRow int
	searchInput textinput.Model
	searching   bool

	// Detail state
	detailViewport viewport.Model
	detailID       string
	detail         *detail.Detail
	detailErr      error
	detailLoading  bool

	// Diagnostics state
	diagViewport viewport.Model
	diagLines    []string
	diagErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := Model{
		ctx:         ctx,
		catalog:     opts.Catalog,
		loader:      opts.Detail,
		logger:      logger,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewBrowse,
		spinner:     sp,
		searchInput: newSearchInput(),
	}
	if m.catalog != nil {
		m.snapshot = m.catalog.Snapshot()
	}
	m.partCursor = m.partIndex(opts.BodyPart)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen, m.spinner.Tick}
	if m.catalog != nil {
		cmds = append(cmds, setBodyPartCmd(m.ctx, m.catalog, m.currentPart()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
			m.initDiagViewport()
		}
		m.ready = true
		m.resizeViewports()
		m.updateDetailViewport()
		m.updateDiagViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case collectionMsg:
		return m.handleCollection(msg)

	case detailMsg:
		m.handleDetail(msg)
		return m, nil

	case diagMsg:
		m.handleDiagnostics(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDetail:
		return m.renderDetail()
	case ViewDiagnostics:
		return m.renderDiagnostics()
	default:
		return m.renderBrowse()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		if m.currentView != ViewBrowse {
			m.currentView = ViewBrowse
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs(func(p *prefs.Prefs) { p.Theme = m.theme.Name })
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.currentView = ViewDiagnostics
		return m, readDiagnosticsCmd(m.logPath)

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewBrowse
		return m, nil
	}

	switch m.currentView {
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewDiagnostics:
		return m.handleDiagnosticsKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// handleCollection applies a finished filter or search fetch.
func (m Model) handleCollection(msg collectionMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}
	if msg.outcome.Skipped {
		return m, nil
	}
	m.snapshot = msg.snapshot
	if !msg.outcome.Applied {
		// Superseded by a newer fetch; its own message will follow.
		return m, nil
	}

	m.selectedRow = 0
	m.notice = ""
	if f := msg.outcome.Failure; f != nil {
		m.notice = describeFailure(f)
		return m, nil
	}
	if msg.search {
		m.searchInput.SetValue("")
		m.focus = focusResults
	}
	return m, nil
}

// selectBodyPart starts a filter fetch for the chip under the cursor.
func (m *Model) selectBodyPart() tea.Cmd {
	if m.catalog == nil {
		return nil
	}
	part := m.currentPart()
	m.pending++
	m.savePrefs(func(p *prefs.Prefs) { p.BodyPart = part })
	return setBodyPartCmd(m.ctx, m.catalog, part)
}

// currentPart returns the body part under the chip cursor.
func (m Model) currentPart() string {
	parts := m.bodyParts()
	if m.partCursor < 0 || m.partCursor >= len(parts) {
		return catalog.AllBodyParts
	}
	return parts[m.partCursor]
}

// bodyParts returns the filter chips, always starting with "all".
func (m Model) bodyParts() []string {
	if len(m.snapshot.BodyParts) == 0 {
		return []string{catalog.AllBodyParts}
	}
	return m.snapshot.BodyParts
}

func (m Model) partIndex(part string) int {
	if idx := slices.Index(m.bodyParts(), strings.TrimSpace(part)); idx >= 0 {
		return idx
	}
	return 0
}

func (m *Model) savePrefs(fn func(*prefs.Prefs)) {
	if m.prefsPath == "" {
		return
	}
	if _, err := prefs.Update(m.prefsPath, fn); err != nil {
		m.logger.Warn("save preferences failed", zap.Error(err))
	}
}

// Messages

type collectionMsg struct {
	outcome  catalog.Outcome
	search   bool
	snapshot state.Snapshot
}

type detailMsg struct {
	id     string
	detail detail.Detail
	err    error
}

type diagMsg struct {
	lines []string
	err   error
}

// Commands

func setBodyPartCmd(ctx context.Context, c Catalog, part string) tea.Cmd {
	return func() tea.Msg {
		out := c.SetBodyPart(ctx, part)
		return collectionMsg{outcome: out, snapshot: c.Snapshot()}
	}
}

func searchCmd(ctx context.Context, c Catalog, term string) tea.Cmd {
	return func() tea.Msg {
		out := c.Search(ctx, term)
		return collectionMsg{outcome: out, search: true, snapshot: c.Snapshot()}
	}
}

func loadDetailCmd(ctx context.Context, loader DetailLoader, id string) tea.Cmd {
	return func() tea.Msg {
		d, err := loader.Load(ctx, id)
		return detailMsg{id: id, detail: d, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
