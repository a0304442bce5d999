package calendar

import (
	"time"
)

// BuildMonthGrid returns the week rows covering anchor's month. The grid is
// expanded to whole weeks: it begins on the week-start day on or before the
// 1st and ends on the last weekday of the week containing the month's final
// day, so each row holds exactly DaysPerWeek days in chronological order.
//
// Only anchor's year and month matter for the grid shape. The injected today
// value sets the IsToday tag and nothing else, which keeps the function
// deterministic for tests.
func BuildMonthGrid(anchor, today time.Time, ws WeekStart) []Week {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 12, 0, 0, 0, anchor.Location())
	last := first.AddDate(0, 1, -1)

	start := startOfWeek(first, ws)
	end := endOfWeek(last, ws)

	var weeks []Week
	for cur := start; !cur.After(end); {
		var week Week
		for i := 0; i < DaysPerWeek; i++ {
			week[i] = Day{
				Date:    cur,
				InMonth: cur.Month() == anchor.Month() && cur.Year() == anchor.Year(),
				IsToday: SameDay(cur, today),
			}
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
