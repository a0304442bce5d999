package calendar

import (
	"time"
)

// Event is an all-day calendar entry. Start and End carry the stored
// "YYYY-MM-DD" form; End may be empty for single-day events.
type Event struct {
	ID    string
	Title string
	Start string
	End   string
	Notes string
}

// Day is one cell of a month grid. Date is pinned to local noon.
type Day struct {
	Date    time.Time
	InMonth bool
	IsToday bool
}

// DaysPerWeek is the number of columns in a week row.
const DaysPerWeek = 7

// Week is one row of a month grid, week-start day first.
type Week [DaysPerWeek]Day

// First returns the week's first day.
func (w Week) First() time.Time { return w[0].Date }

// Last returns the week's last day.
func (w Week) Last() time.Time { return w[DaysPerWeek-1].Date }

// Segment is the portion of an event's date range that falls inside one
// week, expressed as 1-indexed columns within that week.
type Segment struct {
	EventID  string
	Title    string
	StartCol int
	EndCol   int
}

// WeekStart selects which weekday begins a week row.
type WeekStart int

const (
	WeekStartMonday WeekStart = iota
	WeekStartSunday
)

func (ws WeekStart) String() string {
	if ws == WeekStartSunday {
		return "sunday"
	}
	return "monday"
}

// Weekday returns the time.Weekday that opens a week.
func (ws WeekStart) Weekday() time.Weekday {
	if ws == WeekStartSunday {
		return time.Sunday
	}
	return time.Monday
}

// Labels returns the weekday header labels in column order.
func (ws WeekStart) Labels() []string {
	if ws == WeekStartSunday {
		return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	}
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}
