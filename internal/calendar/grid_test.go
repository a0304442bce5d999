package calendar

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, ymd string) time.Time {
	t.Helper()
	d, err := ParseDate(ymd)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", ymd, err)
	}
	return d
}

// TestBuildMonthGridCoversWholeMonth checks that every grid is whole weeks,
// starts on the week-start day, and contains every day of the anchor month
// tagged in-month.
func TestBuildMonthGridCoversWholeMonth(t *testing.T) {
	tests := []struct {
		name      string
		anchor    string
		ws        WeekStart
		wantWeeks int
		firstDay  string // date in the grid's top-left cell
		lastDay   string // date in the grid's bottom-right cell
	}{
		{
			// September 2025 starts on a Monday, grid needs no leading days.
			name:      "month starting on week start",
			anchor:    "2025-09-15",
			ws:        WeekStartMonday,
			wantWeeks: 5,
			firstDay:  "2025-09-01",
			lastDay:   "2025-10-05",
		},
		{
			// February 2026 spans Sunday..Saturday under Monday-first.
			name:      "short month",
			anchor:    "2026-02-01",
			ws:        WeekStartMonday,
			wantWeeks: 5,
			firstDay:  "2026-01-26",
			lastDay:   "2026-03-01",
		},
		{
			// August 2026 needs 6 rows under Monday-first.
			name:      "six week month",
			anchor:    "2026-08-31",
			ws:        WeekStartMonday,
			wantWeeks: 6,
			firstDay:  "2026-07-27",
			lastDay:   "2026-09-06",
		},
		{
			name:      "sunday first",
			anchor:    "2025-09-15",
			ws:        WeekStartSunday,
			wantWeeks: 5,
			firstDay:  "2025-08-31",
			lastDay:   "2025-10-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := mustDate(t, tt.anchor)
			today := mustDate(t, "2025-01-01")
			weeks := BuildMonthGrid(anchor, today, tt.ws)

			if len(weeks) != tt.wantWeeks {
				t.Fatalf("got %d weeks, want %d", len(weeks), tt.wantWeeks)
			}

			first := weeks[0].First()
			if first.Weekday() != tt.ws.Weekday() {
				t.Errorf("grid starts on %v, want %v", first.Weekday(), tt.ws.Weekday())
			}
			if got := FormatDate(first); got != tt.firstDay {
				t.Errorf("first day = %s, want %s", got, tt.firstDay)
			}
			last := weeks[len(weeks)-1].Last()
			if got := FormatDate(last); got != tt.lastDay {
				t.Errorf("last day = %s, want %s", got, tt.lastDay)
			}

			// Consecutive days across the whole grid, each one day apart.
			prev := first
			inMonth := 0
			for wi, week := range weeks {
				for di, day := range week {
					if wi == 0 && di == 0 {
						if day.Date.Hour() != 12 {
							t.Errorf("day not pinned to noon: %v", day.Date)
						}
						if day.InMonth {
							inMonth++
						}
						continue
					}
					if got := day.Date.Sub(prev.AddDate(0, 0, 1)); got >= 24*time.Hour || got <= -24*time.Hour {
						t.Fatalf("non-consecutive day at week %d col %d: %v after %v", wi, di, day.Date, prev)
					}
					prev = day.Date
					if day.InMonth {
						inMonth++
					}
				}
			}

			daysIn := time.Date(anchor.Year(), anchor.Month(), 1, 12, 0, 0, 0, time.Local).
				AddDate(0, 1, -1).Day()
			if inMonth != daysIn {
				t.Errorf("in-month days = %d, want %d", inMonth, daysIn)
			}
		})
	}
}

func TestBuildMonthGridDeterministic(t *testing.T) {
	anchor := mustDate(t, "2025-03-10")
	today := mustDate(t, "2025-03-12")

	a := BuildMonthGrid(anchor, today, WeekStartMonday)
	b := BuildMonthGrid(anchor, today, WeekStartMonday)

	if len(a) != len(b) {
		t.Fatalf("week counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		for j := range a[i] {
			if !a[i][j].Date.Equal(b[i][j].Date) ||
				a[i][j].InMonth != b[i][j].InMonth ||
				a[i][j].IsToday != b[i][j].IsToday {
				t.Fatalf("grids differ at week %d col %d: %+v vs %+v", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestBuildMonthGridTodayTag(t *testing.T) {
	anchor := mustDate(t, "2025-03-01")
	today := mustDate(t, "2025-03-12")

	weeks := BuildMonthGrid(anchor, today, WeekStartMonday)
	found := 0
	for _, week := range weeks {
		for _, day := range week {
			if day.IsToday {
				found++
				if got := FormatDate(day.Date); got != "2025-03-12" {
					t.Errorf("IsToday on %s, want 2025-03-12", got)
				}
			}
		}
	}
	if found != 1 {
		t.Errorf("IsToday set on %d days, want 1", found)
	}

	// A reference date outside the grid tags nothing.
	weeks = BuildMonthGrid(anchor, mustDate(t, "2024-07-01"), WeekStartMonday)
	for _, week := range weeks {
		for _, day := range week {
			if day.IsToday {
				t.Errorf("unexpected IsToday on %s", FormatDate(day.Date))
			}
		}
	}
}

// TestBuildMonthGridDSTMonth walks a month containing a DST transition in a
// zone that observes it and checks no stored date shifts by a day.
func TestBuildMonthGridDSTMonth(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// March 2025: US DST begins March 9.
	anchor := time.Date(2025, time.March, 9, 12, 0, 0, 0, loc)
	weeks := BuildMonthGrid(anchor, anchor, WeekStartMonday)

	want := time.Date(2025, time.February, 24, 12, 0, 0, 0, loc)
	for wi, week := range weeks {
		for di, day := range week {
			wy, wm, wd := want.Date()
			gy, gm, gd := day.Date.Date()
			if wy != gy || wm != gm || wd != gd {
				t.Fatalf("week %d col %d: day %04d-%02d-%02d, want %04d-%02d-%02d",
					wi, di, gy, gm, gd, wy, wm, wd)
			}
			want = want.AddDate(0, 0, 1)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Hour() != 12 || d.Minute() != 0 {
		t.Errorf("not pinned to noon: %v", d)
	}
	if FormatDate(d) != "2025-06-10" {
		t.Errorf("round trip = %s", FormatDate(d))
	}

	for _, bad := range []string{"", "not-a-date", "2025-13-01", "06/10/2025"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}
