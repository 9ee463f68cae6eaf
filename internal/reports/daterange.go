// Package reports resolves the dashboard's named date-range tokens and shapes
// the attendance and chapter performance aggregations.
package reports

import (
	"strings"
	"time"
)

// DateRange is a half-open interval [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// ResolveRange turns a named token into absolute instants relative to now.
// Unknown or empty tokens resolve to All Time. Weeks start on Monday.
func ResolveRange(token string, now time.Time) DateRange {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(strings.TrimSpace(token)) {
	case "today":
		return DateRange{day, day.AddDate(0, 0, 1)}
	case "yesterday":
		return DateRange{day.AddDate(0, 0, -1), day}
	case "this week":
		start := startOfWeek(day)
		return DateRange{start, start.AddDate(0, 0, 7)}
	case "last week":
		start := startOfWeek(day).AddDate(0, 0, -7)
		return DateRange{start, start.AddDate(0, 0, 7)}
	case "this month":
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return DateRange{start, start.AddDate(0, 1, 0)}
	case "last month":
		end := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return DateRange{end.AddDate(0, -1, 0), end}
	case "last 3 months":
		end := day.AddDate(0, 0, 1)
		return DateRange{end.AddDate(0, -3, 0), end}
	case "last 6 months":
		end := day.AddDate(0, 0, 1)
		return DateRange{end.AddDate(0, -6, 0), end}
	case "this year":
		start := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
		return DateRange{start, start.AddDate(1, 0, 0)}
	case "last year":
		end := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
		return DateRange{end.AddDate(-1, 0, 0), end}
	default:
		// All Time
		return DateRange{time.Time{}, day.AddDate(0, 0, 1)}
	}
}

func startOfWeek(day time.Time) time.Time {
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	return day.AddDate(0, 0, -(wd - 1))
}
