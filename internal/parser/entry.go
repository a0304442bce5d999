package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entry is a parsed quick-entry line: an all-day date range plus a title.
type Entry struct {
	Start time.Time
	End   time.Time
	Title string
}

// EntryParser turns quick-entry text like "tomorrow Oil change" or
// "2025-01-30..2025-02-03 Ski trip" into an Entry. The reference time is
// injectable so relative dates are testable.
type EntryParser struct {
	now      time.Time
	location *time.Location
}

func NewEntryParser() *EntryParser {
	return &EntryParser{
		now:      time.Now(),
		location: time.Local,
	}
}

func (p *EntryParser) SetNow(now time.Time) {
	p.now = now
}

// Parse extracts a leading date (or date range) and treats the remainder as
// the event title. With no recognizable date the entry defaults to today.
func (p *EntryParser) Parse(input string) (*Entry, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	result := &Entry{}
	remaining := input

	if date, text, ok := p.parseRelativeDate(remaining); ok {
		result.Start = date
		remaining = text
	} else if date, text, ok := p.parseAbsoluteDate(remaining); ok {
		result.Start = date
		remaining = text
	} else {
		result.Start = p.today()
	}

	// Optional range: "..", "to", or "-" followed by a second date.
	if text, ok := trimRangeSeparator(remaining); ok {
		if date, rest, found := p.parseRelativeDate(text); found {
			result.End = date
			remaining = rest
		} else if date, rest, found := p.parseAbsoluteDate(text); found {
			result.End = date
			remaining = rest
		}
	}
	if result.End.IsZero() {
		result.End = result.Start
	}

	result.Title = strings.TrimSpace(remaining)
	if result.Title == "" {
		return nil, fmt.Errorf("missing event title")
	}
	return result, nil
}

func trimRangeSeparator(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	switch {
	case strings.HasPrefix(trimmed, ".."):
		return strings.TrimSpace(trimmed[2:]), true
	case strings.HasPrefix(strings.ToLower(trimmed), "to "):
		return strings.TrimSpace(trimmed[3:]), true
	case strings.HasPrefix(trimmed, "- "):
		return strings.TrimSpace(trimmed[2:]), true
	case strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "--"):
		return strings.TrimSpace(trimmed[1:]), true
	}
	return input, false
}

func (p *EntryParser) parseRelativeDate(input string) (time.Time, string, bool) {
	lower := strings.ToLower(input)

	if strings.HasPrefix(lower, "today") {
		return p.today(), strings.TrimSpace(input[5:]), true
	}

	if strings.HasPrefix(lower, "tomorrow") || strings.HasPrefix(lower, "tmrw") {
		prefixLen := 8
		if strings.HasPrefix(lower, "tmrw") {
			prefixLen = 4
		}
		return p.today().AddDate(0, 0, 1), strings.TrimSpace(input[prefixLen:]), true
	}

	if strings.HasPrefix(lower, "yesterday") {
		return p.today().AddDate(0, 0, -1), strings.TrimSpace(input[9:]), true
	}

	// Next/this weekday
	weekdayRe := regexp.MustCompile(`^(next|this)\s+(mon|monday|tue|tuesday|wed|wednesday|thu|thursday|fri|friday|sat|saturday|sun|sunday)\b`)
	if matches := weekdayRe.FindStringSubmatch(lower); matches != nil {
		isNext := matches[1] == "next"
		weekday := p.parseWeekday(matches[2])
		date := p.findNextWeekday(weekday, isNext)
		remaining := input[len(matches[0]):]
		return date, strings.TrimSpace(remaining), true
	}

	// In N days/weeks/months
	inRe := regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks|month|months)\b`)
	if matches := inRe.FindStringSubmatch(lower); matches != nil {
		n, _ := strconv.Atoi(matches[1])
		unit := matches[2]
		date := p.today()

		switch {
		case strings.HasPrefix(unit, "day"):
			date = date.AddDate(0, 0, n)
		case strings.HasPrefix(unit, "week"):
			date = date.AddDate(0, 0, n*7)
		case strings.HasPrefix(unit, "month"):
			date = date.AddDate(0, n, 0)
		}

		remaining := input[len(matches[0]):]
		return date, strings.TrimSpace(remaining), true
	}

	return time.Time{}, input, false
}

func (p *EntryParser) parseAbsoluteDate(input string) (time.Time, string, bool) {
	// YYYY-MM-DD, the stored form
	isoRe := regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	if matches := isoRe.FindStringSubmatch(input); matches != nil {
		year, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		day, _ := strconv.Atoi(matches[3])

		date := time.Date(year, time.Month(month), day, 12, 0, 0, 0, p.location)
		remaining := input[len(matches[0]):]
		return date, strings.TrimSpace(remaining), true
	}

	// MM/DD/YYYY
	dateRe := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	if matches := dateRe.FindStringSubmatch(input); matches != nil {
		month, _ := strconv.Atoi(matches[1])
		day, _ := strconv.Atoi(matches[2])
		year, _ := strconv.Atoi(matches[3])

		date := time.Date(year, time.Month(month), day, 12, 0, 0, 0, p.location)
		remaining := input[len(matches[0]):]
		return date, strings.TrimSpace(remaining), true
	}

	// MM/DD (assume current year)
	shortDateRe := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\b`)
	if matches := shortDateRe.FindStringSubmatch(input); matches != nil {
		month, _ := strconv.Atoi(matches[1])
		day, _ := strconv.Atoi(matches[2])
		year := p.now.Year()

		date := time.Date(year, time.Month(month), day, 12, 0, 0, 0, p.location)
		remaining := input[len(matches[0]):]
		return date, strings.TrimSpace(remaining), true
	}

	// Month DD, YYYY or Month DD
	monthNameRe := regexp.MustCompile(`^(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)\s+(\d{1,2})(?:,?\s+(\d{4}))?`)
	if matches := monthNameRe.FindStringSubmatch(strings.ToLower(input)); matches != nil {
		month := p.parseMonth(matches[1])
		day, _ := strconv.Atoi(matches[2])
		year := p.now.Year()
		if matches[3] != "" {
			year, _ = strconv.Atoi(matches[3])
		}

		date := time.Date(year, month, day, 12, 0, 0, 0, p.location)
		remaining := input[len(matches[0]):]
		return date, strings.TrimSpace(remaining), true
	}

	return time.Time{}, input, false
}

func (p *EntryParser) parseWeekday(s string) time.Weekday {
	switch strings.ToLower(s) {
	case "sun", "sunday":
		return time.Sunday
	case "mon", "monday":
		return time.Monday
	case "tue", "tuesday":
		return time.Tuesday
	case "wed", "wednesday":
		return time.Wednesday
	case "thu", "thursday":
		return time.Thursday
	case "fri", "friday":
		return time.Friday
	case "sat", "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}

func (p *EntryParser) parseMonth(s string) time.Month {
	switch strings.ToLower(s) {
	case "jan", "january":
		return time.January
	case "feb", "february":
		return time.February
	case "mar", "march":
		return time.March
	case "apr", "april":
		return time.April
	case "may":
		return time.May
	case "jun", "june":
		return time.June
	case "jul", "july":
		return time.July
	case "aug", "august":
		return time.August
	case "sep", "september":
		return time.September
	case "oct", "october":
		return time.October
	case "nov", "november":
		return time.November
	case "dec", "december":
		return time.December
	default:
		return time.January
	}
}

func (p *EntryParser) findNextWeekday(target time.Weekday, skipThisWeek bool) time.Time {
	date := p.today()
	daysUntilTarget := int(target - date.Weekday())

	if daysUntilTarget <= 0 || skipThisWeek {
		daysUntilTarget += 7
	}

	return date.AddDate(0, 0, daysUntilTarget)
}

// today returns the reference day pinned to noon, matching the calendar
// package's normalization.
func (p *EntryParser) today() time.Time {
	y, m, d := p.now.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, p.location)
}
