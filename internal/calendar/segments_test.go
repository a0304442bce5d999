package calendar

import (
	"testing"
)

func gridFor(t *testing.T, anchor string) []Week {
	t.Helper()
	return BuildMonthGrid(mustDate(t, anchor), mustDate(t, "2020-01-01"), WeekStartMonday)
}

func weekContaining(t *testing.T, weeks []Week, ymd string) Week {
	t.Helper()
	day := mustDate(t, ymd)
	for _, week := range weeks {
		if !day.Before(week.First()) && !day.After(week.Last()) {
			return week
		}
	}
	t.Fatalf("no week contains %s", ymd)
	return Week{}
}

func TestSegmentsSingleDayEvent(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	events := []Event{{ID: "a", Title: "Inspection", Start: "2025-03-12", End: "2025-03-12"}}
	week := weekContaining(t, gridFor(t, "2025-03-01"), "2025-03-12")

	segs := SegmentsForWeek(events, week)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].StartCol != 3 || segs[0].EndCol != 3 {
		t.Errorf("columns = %d..%d, want 3..3", segs[0].StartCol, segs[0].EndCol)
	}
	if segs[0].EventID != "a" || segs[0].Title != "Inspection" {
		t.Errorf("segment identity = %+v", segs[0])
	}
}

func TestSegmentsMissingEndDefaultsToStart(t *testing.T) {
	week := weekContaining(t, gridFor(t, "2025-06-01"), "2025-06-10")

	noEnd := SegmentsForWeek([]Event{{ID: "a", Start: "2025-06-10"}}, week)
	withEnd := SegmentsForWeek([]Event{{ID: "a", Start: "2025-06-10", End: "2025-06-10"}}, week)

	if len(noEnd) != 1 || len(withEnd) != 1 {
		t.Fatalf("got %d and %d segments, want 1 and 1", len(noEnd), len(withEnd))
	}
	if noEnd[0] != withEnd[0] {
		t.Errorf("missing end behaves differently: %+v vs %+v", noEnd[0], withEnd[0])
	}
}

// TestSegmentsSpanClippedAtWeekBoundary projects an event crossing both a
// week and a month boundary (Thu Jan 30 .. Mon Feb 3 2025) onto the two
// weeks it touches.
func TestSegmentsSpanClippedAtWeekBoundary(t *testing.T) {
	events := []Event{{ID: "trip", Title: "Ski trip", Start: "2025-01-30", End: "2025-02-03"}}
	// The February grid's first two rows are the weeks the event spans.
	weeks := gridFor(t, "2025-02-01")

	var all []Segment
	touched := 0
	for _, week := range weeks {
		segs := SegmentsForWeek(events, week)
		if len(segs) > 0 {
			touched++
			all = append(all, segs...)
		}
	}

	if touched != 2 || len(all) != 2 {
		t.Fatalf("event touched %d weeks with %d segments, want 2 and 2", touched, len(all))
	}
	// First week: Thursday through Sunday.
	if all[0].StartCol != 4 || all[0].EndCol != 7 {
		t.Errorf("first segment = %d..%d, want 4..7", all[0].StartCol, all[0].EndCol)
	}
	// Second week: clipped to start on Monday.
	if all[1].StartCol != 1 || all[1].EndCol != 1 {
		t.Errorf("second segment = %d..%d, want 1..1", all[1].StartCol, all[1].EndCol)
	}
}

func TestSegmentsNoOverlapExcluded(t *testing.T) {
	week := weekContaining(t, gridFor(t, "2025-03-01"), "2025-03-12")

	events := []Event{
		{ID: "before", Start: "2025-02-01", End: "2025-02-20"},
		{ID: "after", Start: "2025-04-01"},
		{ID: "ends-day-before-week", Start: "2025-03-01", End: "2025-03-09"},
		{ID: "starts-day-after-week", Start: "2025-03-17", End: "2025-03-20"},
	}
	if segs := SegmentsForWeek(events, week); len(segs) != 0 {
		t.Errorf("got %d segments for non-overlapping events: %+v", len(segs), segs)
	}
}

func TestSegmentsColumnsAlwaysInRange(t *testing.T) {
	weeks := gridFor(t, "2025-01-01")
	events := []Event{
		{ID: "a", Start: "2024-12-15", End: "2025-02-15"}, // spans the whole grid
		{ID: "b", Start: "2025-01-01", End: "2025-01-31"},
		{ID: "c", Start: "2025-01-10"},
	}

	for wi, week := range weeks {
		for _, seg := range SegmentsForWeek(events, week) {
			if seg.StartCol < 1 || seg.EndCol > DaysPerWeek || seg.StartCol > seg.EndCol {
				t.Errorf("week %d: segment %q columns %d..%d out of range",
					wi, seg.EventID, seg.StartCol, seg.EndCol)
			}
		}
	}

	// An event covering every week yields one segment per week.
	count := 0
	for _, week := range weeks {
		for _, seg := range SegmentsForWeek(events[:1], week) {
			count++
			if seg.StartCol != 1 || seg.EndCol != DaysPerWeek {
				t.Errorf("full-width segment = %d..%d", seg.StartCol, seg.EndCol)
			}
		}
	}
	if count != len(weeks) {
		t.Errorf("spanning event yielded %d segments across %d weeks", count, len(weeks))
	}
}

func TestSegmentsPreserveInputOrder(t *testing.T) {
	week := weekContaining(t, gridFor(t, "2025-03-01"), "2025-03-12")

	events := []Event{
		{ID: "z", Start: "2025-03-14"},
		{ID: "m", Start: "2025-03-10", End: "2025-03-16"},
		{ID: "a", Start: "2025-03-12"},
	}
	segs := SegmentsForWeek(events, week)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	for i, want := range []string{"z", "m", "a"} {
		if segs[i].EventID != want {
			t.Errorf("segs[%d] = %q, want %q", i, segs[i].EventID, want)
		}
	}
}

func TestSegmentsSkipUnparseableDates(t *testing.T) {
	week := weekContaining(t, gridFor(t, "2025-03-01"), "2025-03-12")

	events := []Event{
		{ID: "bad-start", Start: "03/12/2025"},
		{ID: "bad-end", Start: "2025-03-12", End: "soon"},
		{ID: "ok", Start: "2025-03-12"},
	}
	segs := SegmentsForWeek(events, week)
	if len(segs) != 1 || segs[0].EventID != "ok" {
		t.Fatalf("segments = %+v, want only %q", segs, "ok")
	}

	bad := InvalidEvents(events)
	if len(bad) != 2 {
		t.Fatalf("InvalidEvents found %d, want 2", len(bad))
	}
	if bad[0].ID != "bad-start" || bad[1].ID != "bad-end" {
		t.Errorf("InvalidEvents = %q, %q", bad[0].ID, bad[1].ID)
	}
}

func TestSegmentsSundayFirstColumns(t *testing.T) {
	anchor := mustDate(t, "2025-03-01")
	weeks := BuildMonthGrid(anchor, mustDate(t, "2020-01-01"), WeekStartSunday)
	week := weekContaining(t, weeks, "2025-03-12")

	// Wednesday is column 4 when the week opens on Sunday.
	segs := SegmentsForWeek([]Event{{ID: "a", Start: "2025-03-12"}}, week)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].StartCol != 4 || segs[0].EndCol != 4 {
		t.Errorf("columns = %d..%d, want 4..4", segs[0].StartCol, segs[0].EndCol)
	}
}
