package ui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/calendar"
	"almanac/internal/config"
	"almanac/internal/reminders"
	"almanac/internal/store"
)

type ViewMode int

const (
	ViewMonth ViewMode = iota
	ViewEditor
	ViewConfirmDelete
	ViewHelp
)

type Model struct {
	// Core components
	config  *config.Config
	store   *store.Store
	watcher *store.Watcher

	// View state
	mode         ViewMode
	viewDate     time.Time // anchor for the month grid
	selectedDate time.Time
	events       []calendar.Event
	assets       []reminders.Asset

	// UI state
	width        int
	height       int
	message      string
	messageTimer *time.Timer

	// Editor state
	editor editorState

	// Delete confirmation state
	deleteID    string
	deleteTitle string

	// External reload notifications
	reloadCh chan struct{}

	// Styles and key dispatch, both derived from the rc file
	styles Styles
	keymap map[string]string
}

func NewModel(cfg *config.Config, st *store.Store) *Model {
	now := calendar.Noon(time.Now())

	m := &Model{
		config:       cfg,
		store:        st,
		mode:         ViewMonth,
		viewDate:     now,
		selectedDate: now,
		reloadCh:     make(chan struct{}, 1),
		styles:       StylesFromConfig(cfg.Colors),
		keymap:       invertBindings(cfg.KeyBindings),
	}
	m.refresh()

	// Pick up edits made outside the TUI.
	watcher, err := st.Watch(func(string) {
		select {
		case m.reloadCh <- struct{}{}:
		default:
		}
	})
	if err == nil {
		m.watcher = watcher
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.waitForReload(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		if m.config.AutoRefresh {
			m.reloadFromDisk()
		}
		return m, m.tickCmd()

	case reloadMsg:
		m.reloadFromDisk()
		return m, m.waitForReload()
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ViewEditor:
		return m.viewEditor()
	case ViewConfirmDelete:
		return m.viewConfirmDelete()
	case ViewHelp:
		return m.viewHelp()
	default:
		return m.viewMonth()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ViewEditor:
		return m.handleEditorKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ViewHelp:
		m.mode = ViewMonth
		return m, nil
	}

	switch m.action(msg.String()) {
	case "quit":
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit

	case "help":
		m.mode = ViewHelp

	case "refresh":
		m.reloadFromDisk()
		m.showMessage("Refreshed")

	case "today":
		now := calendar.Noon(time.Now())
		m.selectedDate = now
		m.viewDate = now

	case "next_day":
		m.moveSelection(0, 0, 1)

	case "prev_day":
		m.moveSelection(0, 0, -1)

	case "next_week":
		m.moveSelection(0, 0, 7)

	case "prev_week":
		m.moveSelection(0, 0, -7)

	case "next_month":
		m.moveSelection(0, 1, 0)

	case "prev_month":
		m.moveSelection(0, -1, 0)

	case "new_event":
		m.openEditorForNew(m.selectedDate)

	case "edit_event":
		if e, ok := m.firstEventOn(m.selectedDate); ok {
			m.openEditorForEdit(e)
		} else {
			m.showMessage("No event on " + calendar.FormatDate(m.selectedDate))
		}

	case "delete_event":
		if e, ok := m.firstEventOn(m.selectedDate); ok {
			if m.config.ConfirmDelete {
				m.deleteID = e.ID
				m.deleteTitle = e.Title
				m.mode = ViewConfirmDelete
			} else {
				m.deleteEvent(e.ID)
			}
		} else {
			m.showMessage("No event on " + calendar.FormatDate(m.selectedDate))
		}
	}

	return m, nil
}

// action resolves a pressed key through the rc-file bindings. Arrow keys,
// enter, and ctrl+c keep fixed meanings alongside whatever is bound.
func (m *Model) action(key string) string {
	switch key {
	case "ctrl+c":
		return "quit"
	case "right":
		return "next_day"
	case "left":
		return "prev_day"
	case "down":
		return "next_week"
	case "up":
		return "prev_week"
	case ">":
		return "next_month"
	case "<":
		return "prev_month"
	case "enter":
		return "new_event"
	}
	return m.keymap[key]
}

// invertBindings flips the config's action-to-key table into a key lookup.
func invertBindings(bindings map[string]string) map[string]string {
	keys := make(map[string]string, len(bindings))
	for action, key := range bindings {
		keys[key] = action
	}
	return keys
}

func (m *Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "d":
		m.deleteEvent(m.deleteID)
	case "n", "N", "esc", "q":
	default:
		// Dialog stays up; keep the target so a later confirm still works.
		return m, nil
	}
	m.mode = ViewMonth
	m.deleteID = ""
	m.deleteTitle = ""
	return m, nil
}

func (m *Model) moveSelection(years, months, days int) {
	m.selectedDate = m.selectedDate.AddDate(years, months, days)
	m.viewDate = m.selectedDate
}

// firstEventOn returns the first event whose date span covers the given day.
func (m *Model) firstEventOn(day time.Time) (calendar.Event, bool) {
	for _, e := range m.events {
		start, end, err := calendar.EventRange(e)
		if err != nil {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			return e, true
		}
	}
	return calendar.Event{}, false
}

func (m *Model) deleteEvent(id string) {
	if err := m.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.showMessage("Event already gone")
		} else {
			m.showMessage(fmt.Sprintf("Delete failed: %v", err))
		}
		return
	}
	m.refresh()
	m.showMessage("Event deleted")
}

// reloadFromDisk re-reads the documents and rebuilds the snapshot.
func (m *Model) reloadFromDisk() {
	if err := m.store.Reload(); err != nil {
		m.showMessage(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	m.refresh()
}

// refresh rebuilds the in-memory snapshot from the store. The grid and the
// segments are recomputed from scratch on every View call; this only swaps
// the inputs.
func (m *Model) refresh() {
	m.events = m.store.Events()
	m.assets = m.store.Assets()

	if bad := calendar.InvalidEvents(m.events); len(bad) > 0 {
		m.showMessage(fmt.Sprintf("%d event(s) have unreadable dates and are hidden", len(bad)))
	}
}

func (m *Model) showMessage(msg string) {
	m.message = msg
	if m.messageTimer != nil {
		m.messageTimer.Stop()
	}
	m.messageTimer = time.AfterFunc(3*time.Second, func() {
		m.message = ""
	})
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.config.RefreshRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *Model) waitForReload() tea.Cmd {
	return func() tea.Msg {
		<-m.reloadCh
		return reloadMsg{}
	}
}

// Message types
type tickMsg struct{}
type reloadMsg struct{}
