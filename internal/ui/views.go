package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) viewHelp() string {
	help := []string{
		m.styles.Header.Render("Almanac Help"),
		"",
		m.styles.Header.Render("Navigation:"),
		m.styles.Help.Render("  h/←     - Previous day"),
		m.styles.Help.Render("  l/→     - Next day"),
		m.styles.Help.Render("  k/↑     - Previous week"),
		m.styles.Help.Render("  j/↓     - Next week"),
		m.styles.Help.Render("  [/<     - Previous month"),
		m.styles.Help.Render("  ]/>     - Next month"),
		m.styles.Help.Render("  t       - Go to today"),
		"",
		m.styles.Header.Render("Events:"),
		m.styles.Help.Render("  n/Enter - New event on selected day"),
		m.styles.Help.Render("  e       - Edit event on selected day"),
		m.styles.Help.Render("  d       - Delete event on selected day"),
		m.styles.Help.Render("  r       - Reload from disk"),
		"",
		m.styles.Help.Render("  ?       - Toggle help"),
		m.styles.Help.Render("  q       - Quit"),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) viewConfirmDelete() string {
	sections := []string{
		m.styles.Header.Render("Delete Event"),
		"",
		m.styles.Normal.Render(fmt.Sprintf("Delete %q?", m.deleteTitle)),
		"",
		m.styles.Help.Render("y to delete, n to cancel"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
