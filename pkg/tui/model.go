package tui

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/stefanpenner/eternalquest/pkg/quest"
)

// FileChangedMsg is sent when the file watcher sees the save file change.
type FileChangedMsg struct{}

// Options configures a Model.
type Options struct {
	SavePath string
	// Autosave writes the save file after every change.
	Autosave bool
	Logger   *slog.Logger
}

// Model is the Bubble Tea model for the goal menu.
type Model struct {
	manager  *quest.Manager
	opts     Options
	logger   *slog.Logger
	keys     KeyMap
	width    int
	height   int
	rows     []Row
	visible  []Row
	cursor   int
	dirty    bool
	quitting bool

	// Modal state
	showHelpModal   bool
	showQuitConfirm bool

	// Add-goal form
	isAdding bool
	form     goalForm

	// Search state
	isSearching bool
	searchQuery string

	// Status message
	statusMsg     string
	statusStyle   lipgloss.Style
	statusTimeout time.Time

	// Cached glamour renderer (expensive to create)
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int
}

// NewModel creates a TUI model driving m. The model is the only caller of m
// while the program runs.
func NewModel(m *quest.Manager, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	model := Model{
		manager: m,
		opts:    opts,
		logger:  logger,
		keys:    DefaultKeyMap(),
	}
	model.refresh()
	return model
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.getGlamourRenderer(m.detailWidth() - 2)
		return m, tea.ClearScreen

	case FileChangedMsg:
		if m.dirty {
			m.setStatus("Save file changed on disk. Press R to reload (unsaved changes will be lost)")
			return m, nil
		}
		// Our own saves land here too, so keep the current status.
		m.reload(false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.isAdding {
		var cmd tea.Cmd
		m.form.input, cmd = m.form.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.isAdding {
		return m.handleFormInput(msg)
	}

	if m.isSearching {
		return m.handleSearchInput(msg)
	}

	if m.showHelpModal {
		switch msg.String() {
		case "esc", "enter", "?", "q":
			m.showHelpModal = false
		}
		return m, nil
	}

	if m.showQuitConfirm {
		switch msg.String() {
		case "y", "Y":
			if err := m.save(); err != nil {
				m.showQuitConfirm = false
				m.setError("Save failed: " + err.Error())
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		case "n", "N":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.showQuitConfirm = false
		}
		return m, nil
	}

	// Esc clears an active filter
	if m.searchQuery != "" && msg.Type == tea.KeyEsc {
		m.clearSearch()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty {
			m.showQuitConfirm = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}

	case key.Matches(msg, m.keys.Record):
		m.recordSelected()

	case key.Matches(msg, m.keys.Add):
		m.isAdding = true
		m.form = newGoalForm()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Save):
		if err := m.save(); err != nil {
			m.setError("Save failed: " + err.Error())
		} else {
			m.setStatus("Saved to " + m.opts.SavePath)
		}

	case key.Matches(msg, m.keys.Reload):
		m.reload(true)

	case key.Matches(msg, m.keys.Search):
		m.isSearching = true
		m.searchQuery = ""
		m.rebuildVisible()

	case key.Matches(msg, m.keys.Help):
		m.showHelpModal = !m.showHelpModal
	}

	return m, nil
}

// handleFormInput handles key messages while the add-goal form is open.
func (m Model) handleFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.isAdding = false
		m.setStatus("Add cancelled")
		return m, nil

	case tea.KeyEnter:
		done, err := m.form.submit()
		if err != nil {
			m.setError(err.Error())
			return m, textinput.Blink
		}
		if !done {
			return m, textinput.Blink
		}
		m.isAdding = false
		g, err := m.form.build()
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.manager.AddGoal(g)
		m.setStatus("Added: " + m.form.goal.Name)
		m.changed()
		m.cursor = len(m.visible) - 1
		return m, nil

	default:
		var cmd tea.Cmd
		m.form.input, cmd = m.form.input.Update(msg)
		return m, cmd
	}
}

// handleSearchInput handles key messages while typing in the search bar.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.isSearching = false
		m.clearSearch()
		return m, nil

	case tea.KeyEnter, tea.KeyDown, tea.KeyTab:
		// Keep the filter, go back to navigating
		m.isSearching = false
		return m, nil

	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			_, size := utf8.DecodeLastRuneInString(m.searchQuery)
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-size]
		}
		m.rebuildVisible()
		return m, nil

	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.searchQuery += string(msg.Runes)
			m.rebuildVisible()
		}
		return m, nil
	}
}

// recordSelected records an event for the goal under the cursor.
func (m *Model) recordSelected() {
	row, ok := m.selected()
	if !ok {
		return
	}
	res := m.manager.RecordEventForGoal(row.Index)
	if !res.Applied {
		return
	}

	switch {
	case res.LevelsGained > 0:
		m.setLevelUp(fmt.Sprintf("*** LEVEL UP! You are now Level %d! *** (+%d)", m.manager.Level(), res.Points))
	case res.Completed:
		m.setLevelUp(fmt.Sprintf("Completed %s! +%d points", row.Goal.Name, res.Points))
	case res.Points == 0:
		m.setStatus(row.Goal.Name + " is already complete")
	default:
		m.setStatus(fmt.Sprintf("+%d points", res.Points))
	}
	m.changed()
}

// changed refreshes the view after a mutation and autosaves if configured.
// An autosave failure replaces the current status message.
func (m *Model) changed() {
	m.dirty = true
	if m.opts.Autosave {
		if err := m.save(); err != nil {
			m.setError("Autosave failed: " + err.Error())
		}
	}
	m.refresh()
}

func (m *Model) save() error {
	if err := m.manager.Save(m.opts.SavePath); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

func (m *Model) reload(announce bool) {
	ok, err := m.manager.Load(m.opts.SavePath)
	switch {
	case err != nil:
		m.logger.Error("reload failed", "path", m.opts.SavePath, "err", err)
		m.setError("Load error: " + err.Error())
		return
	case !ok:
		if announce {
			m.setStatus("No save file at " + m.opts.SavePath)
		}
	default:
		m.dirty = false
		if announce {
			m.setStatus("Reloaded")
		}
	}
	m.refresh()
}

// refresh rebuilds rows from the manager.
func (m *Model) refresh() {
	m.rows = BuildRows(m.manager.Goals())
	m.rebuildVisible()
}

func (m *Model) rebuildVisible() {
	m.visible = FilterRows(m.rows, m.searchQuery)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clearSearch() {
	curIdx := -1
	if row, ok := m.selected(); ok {
		curIdx = row.Index
	}
	m.searchQuery = ""
	m.rebuildVisible()
	for i, r := range m.visible {
		if r.Index == curIdx {
			m.cursor = i
			break
		}
	}
}

func (m Model) selected() (Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return Row{}, false
	}
	return m.visible[m.cursor], true
}

// getGlamourRenderer returns a cached glamour renderer, creating one if needed
// or if the width changed.
func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", "err", err)
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.setStatusStyled(msg, StatusStyle)
}

func (m *Model) setLevelUp(msg string) {
	m.setStatusStyled(msg, LevelUpStyle)
}

func (m *Model) setError(msg string) {
	m.setStatusStyled(msg, ErrorStyle)
}

func (m *Model) setStatusStyled(msg string, style lipgloss.Style) {
	m.statusMsg = msg
	m.statusStyle = style
	m.statusTimeout = time.Now().Add(3 * time.Second)
}
