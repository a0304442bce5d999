package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the stored form of all event dates.
const DateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" string into a noon-pinned local time.
// Comparing dates at noon avoids the off-by-one day shifts that midnight
// arithmetic produces around DST transitions.
func ParseDate(ymd string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, ymd, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", ymd, err)
	}
	return Noon(t), nil
}

// Noon returns t's calendar day pinned to 12:00 local time.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// FormatDate renders a time as its stored "YYYY-MM-DD" form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// dayIndex returns t's zero-based column offset from the week start.
func dayIndex(t time.Time, ws WeekStart) int {
	// time.Weekday is 0=Sunday..6=Saturday.
	offset := int(t.Weekday() - ws.Weekday())
	return (offset + DaysPerWeek) % DaysPerWeek
}

// startOfWeek returns the week-start day on or before t, pinned to noon.
func startOfWeek(t time.Time, ws WeekStart) time.Time {
	return Noon(t).AddDate(0, 0, -dayIndex(t, ws))
}

// endOfWeek returns the last day of t's week, pinned to noon.
func endOfWeek(t time.Time, ws WeekStart) time.Time {
	return startOfWeek(t, ws).AddDate(0, 0, DaysPerWeek-1)
}
