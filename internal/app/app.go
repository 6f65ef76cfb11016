package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henrilemoine/tabler/internal/config"
	"github.com/henrilemoine/tabler/internal/debug"
	"github.com/henrilemoine/tabler/internal/grid"
	"github.com/henrilemoine/tabler/internal/store"
	"github.com/henrilemoine/tabler/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateList State = iota
	StateFilter
	StateHelp
)

// TaskGrid is the grid type the app renders.
type TaskGrid = grid.Grid[int, *store.Task]

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config

	// Data
	store   *store.Store
	results *store.Results
	request store.Request
	grid    *TaskGrid

	// State
	state  State
	err    error
	status string

	// Filter
	filterInput textinput.Model

	// UI
	width  int
	height int
	keys   KeyMap

	// Exit behavior
	shouldQuit bool
}

// New creates a new Model over the tasks in st.
func New(cfg *config.Config, st *store.Store) Model {
	filterInput := textinput.New()
	filterInput.Placeholder = "filter..."
	filterInput.CharLimit = 50

	req := cfg.Request()
	m := Model{
		config:      cfg,
		store:       st,
		results:     st.Fetch(req),
		request:     req,
		keys:        KeyMapFromConfig(&cfg.Keys),
		filterInput: filterInput,
		state:       StateList,
	}
	m.buildGrid()
	m.grid.UpdateContext(func(ctx *grid.Context) {
		ctx.SortColumn = int(req.Sort)
		ctx.SortDescending = req.Descending
	})
	return m
}

// buildGrid creates the grid for the current width. Grid configuration is
// immutable, so a resize replaces the grid, carrying over hover and context.
func (m *Model) buildGrid() {
	base := grid.NewConfig(m.config.GridOptions()...)
	inner := ui.ContentWidth(m.width)

	opts := append(m.config.GridOptions(),
		grid.WithColumns(ui.Columns(inner-2, base.ColumnSpacing())...))
	cfg := grid.NewConfig(opts...)

	g := grid.New(cfg, m.results, ui.HeaderSlot, ui.RowSlot(cfg), ui.BackgroundSlot(inner))

	if old := m.grid; old != nil {
		prev := *old.Context()
		g.UpdateContext(func(ctx *grid.Context) {
			ctx.ShowHeader = prev.ShowHeader
			ctx.SortColumn = prev.SortColumn
			ctx.SortDescending = prev.SortDescending
		})
		if id, ok := old.Hovered(); ok {
			g.Enter(id)
		}
		old.Close()
	}

	g.OnInvalidate(func() {
		debug.Log("app: grid invalidated")
	})
	m.grid = g
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.buildGrid()
		return m, nil

	case tea.MouseMsg:
		if m.state != StateList {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.state == StateList {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)

	case TasksLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.store.Replace(msg.Tasks)
		m.status = "reloaded"
		return m, nil

	case TasksSavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.status = "saved"
		return m, nil
	}

	return m, nil
}

// handleMouse maps pointer motion onto row enter and exit events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	id, onRow := m.rowAt(msg.X, msg.Y)
	prev, hovered := m.grid.Hovered()

	if onRow && !(hovered && prev == id) {
		m.grid.Enter(id)
	}
	// The exit for the previous row arrives after the enter for the new one.
	if hovered && (!onRow || prev != id) {
		m.grid.Exit(prev)
	}

	if onRow && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.toggleDone(id)
	}
	return m, nil
}

// rowAt returns the task drawn at screen cell (x, y). The box border and
// padding belong to no row.
func (m Model) rowAt(x, y int) (int, bool) {
	if !ui.InGridColumns(x, m.width) {
		return 0, false
	}
	top := ui.GridTop(ui.RenderParams{
		State:       int(m.state),
		FilterValue: m.filterInput.Value(),
		Err:         m.err,
	})
	return m.grid.Render().RowAt(y - top)
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateList:
		return m.handleListKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		m.state = StateList
		return m, nil
	}
	return m, nil
}

// handleListKeys handles key presses in the list view.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveHover(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveHover(1)
	case key.Matches(msg, m.keys.Toggle):
		if id, ok := m.grid.Hovered(); ok {
			m.toggleDone(id)
		}
	case key.Matches(msg, m.keys.Sort):
		m.request.Sort = m.request.Sort.Next()
		m.refetch()
	case key.Matches(msg, m.keys.Reverse):
		m.request.Descending = !m.request.Descending
		m.refetch()
	case key.Matches(msg, m.keys.Header):
		m.grid.UpdateContext(func(ctx *grid.Context) {
			ctx.ShowHeader = !ctx.ShowHeader
		})
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Save):
		return m, saveTasks(m.store)
	case key.Matches(msg, m.keys.Reload):
		return m, loadTasks(m.store.Path())
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
	}
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateList
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.request.Query = ""
		m.refetch()
		return m, nil
	case tea.KeyEnter:
		m.state = StateList
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.request.Query = m.filterInput.Value()
	m.refetch()
	return m, cmd
}

// moveHover moves the hover by delta rows, starting from the first or last
// row when nothing is hovered.
func (m *Model) moveHover(delta int) {
	rows := m.grid.Render().Rows
	if len(rows) == 0 {
		return
	}

	idx := -1
	if id, ok := m.grid.Hovered(); ok {
		for i, r := range rows {
			if r.ID == id {
				idx = i
				break
			}
		}
	}

	next := idx + delta
	if idx < 0 {
		next = 0
		if delta < 0 {
			next = len(rows) - 1
		}
	}
	if next < 0 {
		next = 0
	}
	if next >= len(rows) {
		next = len(rows) - 1
	}
	m.grid.Enter(rows[next].ID)
}

// toggleDone flips the done flag of task id through the store.
func (m *Model) toggleDone(id int) {
	err := m.store.Update(id, func(f *store.Fields) {
		f.Done = !f.Done
	})
	if err != nil {
		m.err = err
		return
	}
	m.status = ""
}

// refetch re-evaluates the results and mirrors the sort in the header.
func (m *Model) refetch() {
	m.results.Refetch(m.request)
	req := m.request
	m.grid.UpdateContext(func(ctx *grid.Context) {
		ctx.SortColumn = int(req.Sort)
		ctx.SortDescending = req.Descending
	})
}

// View renders the UI.
func (m Model) View() string {
	frame := m.grid.Render()
	body := ""
	if len(frame.Rows) > 0 {
		body = frame.String()
	}

	sortLabel := m.request.Sort.String()
	if m.request.Descending {
		sortLabel += " desc"
	}

	return ui.Render(ui.RenderParams{
		State:        int(m.state),
		Grid:         body,
		RowCount:     len(frame.Rows),
		TotalCount:   m.store.Len(),
		Width:        m.width,
		Height:       m.height,
		Err:          m.err,
		Status:       m.status,
		DataPath:     m.store.Path(),
		SortLabel:    sortLabel,
		FilterInput:  m.filterInput.View(),
		FilterValue:  m.filterInput.Value(),
		ShowHelp:     m.config.UI.ShowHelp,
		HelpSections: m.helpSections(),
	})
}

// helpSections builds the help screen from the active key map.
func (m Model) helpSections() []ui.HelpSection {
	section := func(title string, bindings ...key.Binding) ui.HelpSection {
		s := ui.HelpSection{Title: title}
		for _, b := range bindings {
			h := b.Help()
			s.Bindings = append(s.Bindings, ui.HelpBinding{Keys: h.Key, Desc: h.Desc})
		}
		return s
	}
	return []ui.HelpSection{
		section("Rows", m.keys.Up, m.keys.Down, m.keys.Toggle),
		section("View", m.keys.Sort, m.keys.Reverse, m.keys.Filter, m.keys.Header),
		section("File", m.keys.Save, m.keys.Reload),
		section("General", m.keys.Help, m.keys.Quit),
	}
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Close releases the grid and the live results.
func (m Model) Close() {
	m.grid.Close()
	m.results.Close()
}

// Commands

func loadTasks(path string) tea.Cmd {
	return func() tea.Msg {
		tasks, err := store.ReadFile(path)
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

func saveTasks(st *store.Store) tea.Cmd {
	path, tasks := st.Path(), st.Snapshot()
	return func() tea.Msg {
		err := store.WriteFile(path, tasks)
		return TasksSavedMsg{Path: path, Err: err}
	}
}
