package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"almanac/internal/calendar"
)

const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Start date", "End date", "Notes"}

type editorState struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	editingID string // empty while creating
}

func newEditorState(e calendar.Event) editorState {
	var st editorState
	st.editingID = e.ID

	for i := range st.inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 40
		st.inputs[i] = ti
	}
	st.inputs[fieldTitle].Placeholder = "e.g., Vacation time"
	st.inputs[fieldStart].Placeholder = calendar.DateLayout
	st.inputs[fieldEnd].Placeholder = calendar.DateLayout
	st.inputs[fieldNotes].Placeholder = "Add details"

	st.inputs[fieldTitle].SetValue(e.Title)
	st.inputs[fieldStart].SetValue(e.Start)
	end := e.End
	if end == "" {
		end = e.Start
	}
	st.inputs[fieldEnd].SetValue(end)
	st.inputs[fieldNotes].SetValue(e.Notes)

	st.inputs[fieldTitle].Focus()
	return st
}

func (m *Model) openEditorForNew(day time.Time) {
	ymd := calendar.FormatDate(day)
	m.editor = newEditorState(calendar.Event{Start: ymd, End: ymd})
	m.mode = ViewEditor
}

func (m *Model) openEditorForEdit(e calendar.Event) {
	m.editor = newEditorState(e)
	m.mode = ViewEditor
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ViewMonth
		return m, nil

	case tea.KeyEnter:
		m.saveEditor()
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.editor.setFocus((m.editor.focus + 1) % fieldCount)
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.editor.setFocus((m.editor.focus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor.inputs[m.editor.focus], cmd = m.editor.inputs[m.editor.focus].Update(msg)
	return m, cmd
}

func (st *editorState) setFocus(i int) {
	st.inputs[st.focus].Blur()
	st.focus = i
	st.inputs[st.focus].Focus()
}

func (m *Model) saveEditor() {
	e := calendar.Event{
		ID:    m.editor.editingID,
		Title: strings.TrimSpace(m.editor.inputs[fieldTitle].Value()),
		Start: strings.TrimSpace(m.editor.inputs[fieldStart].Value()),
		End:   strings.TrimSpace(m.editor.inputs[fieldEnd].Value()),
		Notes: strings.TrimSpace(m.editor.inputs[fieldNotes].Value()),
	}

	var err error
	if e.ID == "" {
		_, err = m.store.Add(e)
	} else {
		err = m.store.Update(e)
	}
	if err != nil {
		m.showMessage(fmt.Sprintf("Save failed: %v", err))
		return
	}

	m.refresh()
	m.mode = ViewMonth
	if m.editor.editingID == "" {
		m.showMessage("Event added")
	} else {
		m.showMessage("Event updated")
	}
}

func (m *Model) viewEditor() string {
	var sections []string

	title := "New Event"
	if m.editor.editingID != "" {
		title = "Edit Event"
	}
	sections = append(sections, m.styles.Header.Render(title))
	sections = append(sections, "")

	for i, input := range m.editor.inputs {
		label := fieldLabels[i]
		if i == m.editor.focus {
			sections = append(sections, m.styles.Today.Render("> "+label))
		} else {
			sections = append(sections, m.styles.Normal.Render("  "+label))
		}
		sections = append(sections, "  "+input.View())
	}

	sections = append(sections, "")
	sections = append(sections, m.styles.Help.Render("Tab to move, Enter to save, Esc to cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
