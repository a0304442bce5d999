package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"almanac/internal/calendar"
	"almanac/internal/reminders"
)

const (
	minCellWidth = 5
	maxCellWidth = 14
)

func (m *Model) cellWidth() int {
	// Leave a third of the screen for the sidebar.
	w := (m.width * 2 / 3) / calendar.DaysPerWeek
	if w < minCellWidth {
		w = minCellWidth
	}
	if w > maxCellWidth {
		w = maxCellWidth
	}
	return w
}

func (m *Model) viewMonth() string {
	today := calendar.Noon(time.Now())
	weeks := calendar.BuildMonthGrid(m.viewDate, today, m.config.WeekStart)

	grid := m.renderGrid(weeks)
	sidebar := m.renderSidebar(today)

	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", sidebar)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) renderGrid(weeks []calendar.Week) string {
	cellW := m.cellWidth()
	gridW := cellW * calendar.DaysPerWeek

	var lines []string

	monthLabel := m.viewDate.Format("January 2006")
	lines = append(lines, m.styles.Header.Render(monthLabel))

	var header strings.Builder
	for _, label := range m.config.WeekStart.Labels() {
		header.WriteString(pad(label, cellW))
	}
	lines = append(lines, m.styles.Help.Render(header.String()))

	for _, week := range weeks {
		var row strings.Builder
		for _, day := range week {
			cell := pad(fmt.Sprintf("%2d", day.Date.Day()), cellW)

			style := m.styles.Normal
			switch {
			case calendar.SameDay(day.Date, m.selectedDate):
				style = m.styles.Selected
			case day.IsToday:
				style = m.styles.Today
			case !day.InMonth:
				style = m.styles.Dim
			case isWeekend(day.Date):
				style = m.styles.Weekend
			}
			row.WriteString(style.Render(cell))
		}
		lines = append(lines, row.String())

		// One bar line per segment, spanning its columns the way the web
		// version spanned CSS grid columns.
		for _, seg := range calendar.SegmentsForWeek(m.events, week) {
			lines = append(lines, m.renderSegmentBar(seg, cellW))
		}
	}

	return lipgloss.NewStyle().Width(gridW).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderSegmentBar(seg calendar.Segment, cellW int) string {
	indent := strings.Repeat(" ", (seg.StartCol-1)*cellW)
	span := (seg.EndCol-seg.StartCol+1)*cellW - 1

	// Display-width truncation so multibyte titles never split mid-rune.
	title := runewidth.Truncate(seg.Title, span, "...")
	bar := pad(title, span)
	return indent + m.styles.Event.Render(bar)
}

func (m *Model) renderSidebar(today time.Time) string {
	width := m.width - m.cellWidth()*calendar.DaysPerWeek - 3
	if width < 24 {
		width = 24
	}

	var lines []string

	lines = append(lines, m.styles.Header.Render("Selected"))
	lines = append(lines, m.selectedDate.Format(m.config.DateFormat))

	dayEvents := m.eventsOn(m.selectedDate)
	if len(dayEvents) == 0 {
		lines = append(lines, m.styles.Help.Render("(no events)"))
	}
	for _, e := range dayEvents {
		lines = append(lines, m.styles.Event.Render(" "+e.Title+" "))
		if e.Notes != "" {
			wrapped := wordwrap.String(e.Notes, width-2)
			for _, line := range strings.Split(wrapped, "\n") {
				if line != "" {
					lines = append(lines, m.styles.Help.Render("  "+line))
				}
			}
		}
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.Header.Render("Expiring warranties"))
	lines = append(lines, m.renderReminderItems(
		reminders.ExpiringWarranties(m.assets, today, m.config.ReminderWindow()), width)...)

	lines = append(lines, "")
	lines = append(lines, m.styles.Header.Render("Upcoming maintenance"))
	lines = append(lines, m.renderReminderItems(
		reminders.UpcomingMaintenance(m.assets, today, m.config.ReminderWindow()), width)...)

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.Border.Width(width).Render(content)
}

func (m *Model) renderReminderItems(items []reminders.Item, width int) []string {
	if len(items) == 0 {
		return []string{m.styles.Help.Render(fmt.Sprintf("(none within %d days)", m.config.ReminderWindowDays))}
	}

	var lines []string
	for _, it := range items {
		line := fmt.Sprintf("%s  %s: %s", it.Due.Format("Jan 2"), it.AssetLabel, it.Type)
		line = runewidth.Truncate(line, width-2, "...")
		lines = append(lines, m.styles.Reminder.Render(line))
	}
	return lines
}

// eventsOn returns the events whose range covers the given day, in snapshot
// order.
func (m *Model) eventsOn(day time.Time) []calendar.Event {
	var out []calendar.Event
	for _, e := range m.events {
		start, end, err := calendar.EventRange(e)
		if err != nil {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			out = append(out, e)
		}
	}
	return out
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | Events: %d",
		m.selectedDate.Format(m.config.DateFormat),
		len(m.events))

	right := "n:new  e:edit  d:delete  t:today  ?:help  q:quit "
	if m.message != "" {
		right = m.styles.Message.Render(m.message)
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}

	return m.styles.Help.Render(left + strings.Repeat(" ", width) + right)
}

func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
