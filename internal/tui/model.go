// Package tui is the interactive front end for the payroll reconciler: two
// drop zones for the input spreadsheets, an automatic submit path, and a
// manual review screen where individual rows can be denied before writing.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jlsnow301/payroll-app/internal/backend"
	"github.com/jlsnow301/payroll-app/internal/dropzone"
	"github.com/jlsnow301/payroll-app/internal/review"
	"github.com/jlsnow301/payroll-app/internal/session"
)

// Screen represents the current screen of the TUI.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenReview
	ScreenHelp
)

// layout holds the current drop zone rectangles. The router's bounds
// callbacks read from it, so a resize retargets routing without
// re-registering anything.
type layout struct {
	orders dropzone.Rect
	hours  dropzone.Rect
}

// Model holds the main TUI state.
type Model struct {
	backend       backend.Commander
	session       *session.Session
	store         *review.Store
	router        *dropzone.Router
	layout        *layout
	pathInput     textinput.Model
	spinner       spinner.Model
	keymap        KeyMap
	theme         Theme
	pathTarget    string
	confirmation  string
	preloadOrders string
	preloadHours  string
	visible       []int
	cursor        int
	width         int
	height        int
	screen        Screen
	prevScreen    Screen
	typing        bool
	quitting      bool
}

// newModel creates a new model wired to the given backend.
func newModel(b backend.Commander) Model {
	lay := &layout{}
	router := dropzone.NewRouter()
	router.Register(session.ZoneCaterease, func() dropzone.Rect { return lay.orders })
	router.Register(session.ZoneIntuit, func() dropzone.Rect { return lay.hours })

	input := textinput.New()
	input.Placeholder = "path/to/file.xlsx"
	input.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		backend:   b,
		session:   session.New(),
		store:     review.NewStore(),
		router:    router,
		layout:    lay,
		pathInput: input,
		spinner:   sp,
		keymap:    DefaultKeyMap(),
		theme:     DefaultTheme,
		screen:    ScreenHome,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen, m.spinner.Tick}

	if path := m.preloadOrders; path != "" {
		cmds = append(cmds, func() tea.Msg {
			return zoneDroppedMsg{zoneID: session.ZoneCaterease, path: path}
		})
	}
	if path := m.preloadHours; path != "" {
		cmds = append(cmds, func() tea.Msg {
			return zoneDroppedMsg{zoneID: session.ZoneIntuit, path: path}
		})
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case zoneDroppedMsg:
		return m.handleDrop(msg)

	case ordersUploadedMsg:
		m.session.FinishUpload(session.ZoneCaterease, msg.label, msg.err)
		return m, nil

	case hoursUploadedMsg:
		m.session.FinishUpload(session.ZoneIntuit, msg.label, msg.err)
		return m, nil

	case submitDoneMsg:
		m.session.FinishSubmit(msg.result, msg.err)
		return m, nil

	case reviewLoadedMsg:
		if !m.session.FinishReview(msg.token, msg.result, msg.err) {
			return m, nil
		}
		if msg.err == nil {
			m.store.Load(msg.result.Rows)
			m.rebuildVisible()
			m.screen = ScreenReview
		}
		return m, nil

	case manualSubmitDoneMsg:
		m.store.FinishSubmit(msg.confirmation, msg.err)
		if msg.err == nil {
			m.confirmation = msg.confirmation
			return m, expireConfirmation()
		}
		return m, nil

	case clearConfirmationMsg:
		m.confirmation = ""
		return m, nil
	}

	return m, nil
}

// handleKey routes key presses by screen and typing mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.typing {
		return m.handleTypingKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp):
		if m.screen == ScreenHelp {
			m.screen = m.prevScreen
		} else {
			m.prevScreen = m.screen
			m.screen = ScreenHelp
		}
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.session.Reset()
		m.store.Clear()
		m.visible = nil
		m.cursor = 0
		m.confirmation = ""
		m.screen = ScreenHome
		return m, nil
	}

	switch m.screen {
	case ScreenHome:
		return m.handleHomeKey(msg)
	case ScreenReview:
		return m.handleReviewKey(msg)
	case ScreenHelp:
		if key.Matches(msg, m.keymap.Back) {
			m.screen = m.prevScreen
		}
	}
	return m, nil
}

// handleTypingKey feeds keys to the path input until confirmed or canceled.
func (m Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.typing = false
		m.pathInput.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.Confirm):
		path := m.pathInput.Value()
		zoneID := m.pathTarget
		m.typing = false
		m.pathInput.Blur()
		m.pathInput.SetValue("")
		return m, func() tea.Msg {
			return zoneDroppedMsg{zoneID: zoneID, path: path}
		}
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Orders):
		return m.promptForPath(session.ZoneCaterease), nil

	case key.Matches(msg, m.keymap.Hours):
		return m.promptForPath(session.ZoneIntuit), nil

	case key.Matches(msg, m.keymap.Submit):
		if m.session.BeginSubmit() {
			return m, m.runSubmit(m.session.Precision())
		}

	case key.Matches(msg, m.keymap.Review):
		if token, ok := m.session.BeginReview(); ok {
			return m, m.fetchReview(token)
		}

	case key.Matches(msg, m.keymap.PrecisionUp):
		m.session.SetPrecision(m.session.Precision() + 1)

	case key.Matches(msg, m.keymap.PrecisionDown):
		m.session.SetPrecision(m.session.Precision() - 1)
	}
	return m, nil
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.screen = ScreenHome
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Toggle):
		if m.cursor < len(m.visible) {
			m.store.Toggle(m.visible[m.cursor])
		}

	case key.Matches(msg, m.keymap.Submit):
		if m.store.CanSubmit() {
			m.store.BeginSubmit()
			return m, m.submitManual(m.store.Rows())
		}
	}
	return m, nil
}

// handleMouse routes clicks through the drop zone router.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenHome || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	evt := dropzone.Event{Position: dropzone.Point{X: msg.X, Y: msg.Y}}
	if zoneID, ok := m.router.Route(evt); ok {
		return m.promptForPath(zoneID), nil
	}
	return m, nil
}

// handleDrop validates a routed drop and starts the matching upload.
func (m Model) handleDrop(msg zoneDroppedMsg) (tea.Model, tea.Cmd) {
	machine := m.session.Machine(msg.zoneID)
	if machine == nil {
		return m, nil
	}

	path, ok := machine.Accept([]string{msg.path})
	if !ok {
		return m, nil
	}

	if !m.session.BeginUpload(msg.zoneID) {
		return m, nil
	}

	switch msg.zoneID {
	case session.ZoneCaterease:
		return m, m.uploadOrders(path)
	case session.ZoneIntuit:
		return m, m.uploadHours(path)
	}
	return m, nil
}

// promptForPath opens the path input aimed at the given zone.
func (m Model) promptForPath(zoneID string) Model {
	m.pathTarget = zoneID
	m.typing = true
	m.pathInput.Focus()
	return m
}

// rebuildVisible snapshots the listable row ids from the store.
func (m *Model) rebuildVisible() {
	m.visible = m.visible[:0]
	for row := range m.store.VisibleRows() {
		m.visible = append(m.visible, row.ID)
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

// updateLayout recomputes the drop zone rectangles for the current size.
// Two zones side by side across the top of the home screen.
func (m *Model) updateLayout() {
	half := m.width / 2
	m.layout.orders = dropzone.Rect{X: 0, Y: 0, Width: half, Height: zoneHeight}
	m.layout.hours = dropzone.Rect{X: half, Y: 0, Width: m.width - half, Height: zoneHeight}
}
