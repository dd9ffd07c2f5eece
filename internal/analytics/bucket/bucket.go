// Package bucket classifies dates into the discrete time slots the
// dashboard series are keyed by.
package bucket

import (
	"fmt"
	"time"
)

// Granularity is the bucket size chosen for a date range.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

const (
	dayFormat   = "2006-01-02"
	monthFormat = "2006-01"
)

// Key returns the bucket key for t under the given granularity. Week
// buckets are fixed 7-day windows anchored at rangeStart, not calendar
// weeks; a date outside [rangeStart, rangeEnd] has no window and
// degrades to its plain day key.
func Key(t time.Time, g Granularity, rangeStart, rangeEnd time.Time) string {
	switch g {
	case Month:
		return t.Format(monthFormat)
	case Week:
		return weekKey(dateOnly(t), dateOnly(rangeStart), dateOnly(rangeEnd))
	default:
		return t.Format(dayFormat)
	}
}

// Keys returns every bucket key spanning [rangeStart, rangeEnd] in
// chronological order, including buckets no data falls into. A week
// range whose length is not a multiple of 7 ends with a truncated
// window.
func Keys(g Granularity, rangeStart, rangeEnd time.Time) []string {
	start := dateOnly(rangeStart)
	end := dateOnly(rangeEnd)
	if end.Before(start) {
		return nil
	}

	var keys []string
	switch g {
	case Month:
		last := monthStart(end)
		for m := monthStart(start); !m.After(last); m = m.AddDate(0, 1, 0) {
			keys = append(keys, m.Format(monthFormat))
		}
	case Week:
		for ws := start; !ws.After(end); ws = ws.AddDate(0, 0, 7) {
			keys = append(keys, labelWeek(ws, weekWindowEnd(ws, end)))
		}
	default:
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			keys = append(keys, d.Format(dayFormat))
		}
	}
	return keys
}

func weekKey(t, start, end time.Time) string {
	if t.Before(start) || t.After(end) {
		return t.Format(dayFormat)
	}
	window := daysBetween(start, t) / 7
	ws := start.AddDate(0, 0, 7*window)
	return labelWeek(ws, weekWindowEnd(ws, end))
}

func weekWindowEnd(windowStart, rangeEnd time.Time) time.Time {
	we := windowStart.AddDate(0, 0, 6)
	if we.After(rangeEnd) {
		return rangeEnd
	}
	return we
}

// labelWeek renders the compact window label the UI keys off: the start
// day carries its month only when the window straddles a month boundary.
func labelWeek(start, end time.Time) string {
	if start.Month() == end.Month() {
		return fmt.Sprintf("%d.-%d.%d", start.Day(), end.Day(), int(end.Month()))
	}
	return fmt.Sprintf("%d.%d-%d.%d", start.Day(), int(start.Month()), end.Day(), int(end.Month()))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, t time.Time) int {
	return int(t.Sub(start) / (24 * time.Hour))
}
