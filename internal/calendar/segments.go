package calendar

import (
	"time"
)

// SegmentsForWeek projects events onto one week row. Each event overlapping
// the week yields a single segment clamped to the week's bounds, with
// 1-indexed columns measured from the week's first day. Events that miss the
// week entirely yield nothing, and input order is preserved.
//
// Events whose dates do not parse are skipped rather than reported; callers
// that care use InvalidEvents to surface them.
func SegmentsForWeek(events []Event, week Week) []Segment {
	ws := weekStartOf(week)
	wStart := week.First()
	wEnd := week.Last()

	var segs []Segment
	for _, e := range events {
		start, end, err := EventRange(e)
		if err != nil {
			continue
		}
		if end.Before(wStart) || start.After(wEnd) {
			continue
		}

		overlapStart := start
		if overlapStart.Before(wStart) {
			overlapStart = wStart
		}
		overlapEnd := end
		if overlapEnd.After(wEnd) {
			overlapEnd = wEnd
		}

		segs = append(segs, Segment{
			EventID:  e.ID,
			Title:    e.Title,
			StartCol: dayIndex(overlapStart, ws) + 1,
			EndCol:   dayIndex(overlapEnd, ws) + 1,
		})
	}
	return segs
}

// InvalidEvents returns the events whose stored dates cannot be parsed and
// which SegmentsForWeek therefore never places.
func InvalidEvents(events []Event) []Event {
	var bad []Event
	for _, e := range events {
		if _, _, err := EventRange(e); err != nil {
			bad = append(bad, e)
		}
	}
	return bad
}

// EventRange resolves an event to its noon-pinned start and end days,
// defaulting a missing end to the start.
func EventRange(e Event) (start, end time.Time, err error) {
	start, err = ParseDate(e.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if e.End == "" {
		return start, start, nil
	}
	end, err = ParseDate(e.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// weekStartOf recovers the week-start convention from a built week row.
func weekStartOf(week Week) WeekStart {
	if week.First().Weekday() == time.Sunday {
		return WeekStartSunday
	}
	return WeekStartMonday
}
