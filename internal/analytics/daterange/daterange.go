// Package daterange resolves dashboard range presets into the current
// reporting window, the comparison window before it, and the bucketing
// granularity for both.
package daterange

import (
	"errors"
	"fmt"
	"time"

	"github.com/mercura/storefront-analytics/internal/analytics/bucket"
)

// Preset names the supported reporting windows.
type Preset string

const (
	ThisMonth       Preset = "this-month"
	LastMonth       Preset = "last-month"
	LastThreeMonths Preset = "last-3-months"
	Custom          Preset = "custom"
)

var (
	ErrInvalidPreset = errors.New("invalid preset")
	ErrMissingBound  = errors.New("missing custom range bound")
	ErrInvalidDate   = errors.New("invalid date")
)

const dateFormat = "2006-01-02"

// Request carries the raw range parameters as supplied by the caller.
// From and To are only consulted for the custom preset.
type Request struct {
	Preset Preset
	From   string
	To     string
}

// Range is an inclusive calendar-date window.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive day count of the range.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start)/(24*time.Hour)) + 1
}

// Resolution is the outcome of resolving a preset: the window to report
// on, the equal-length window preceding it, and the granularity both
// windows are bucketed at.
type Resolution struct {
	Current     Range
	Previous    Range
	Granularity bucket.Granularity
}

// ParsePreset validates a raw preset name.
func ParsePreset(raw string) (Preset, error) {
	switch p := Preset(raw); p {
	case ThisMonth, LastMonth, LastThreeMonths, Custom:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPreset, raw)
	}
}

// Resolve computes the current and previous windows for the request,
// anchored at now. The previous window always matches the current
// window's length; for month presets it is aligned to the first of the
// preceding month rather than slid back day for day.
func Resolve(req Request, now time.Time) (Resolution, error) {
	today := dateOnly(now)

	var current, previous Range
	switch req.Preset {
	case ThisMonth:
		current = Range{Start: monthStart(today), End: today}
		prevStart := current.Start.AddDate(0, -1, 0)
		previous = Range{Start: prevStart, End: prevStart.AddDate(0, 0, current.Days()-1)}
	case LastMonth:
		start := monthStart(today).AddDate(0, -1, 0)
		current = Range{Start: start, End: monthStart(today).AddDate(0, 0, -1)}
		prevStart := start.AddDate(0, -1, 0)
		previous = Range{Start: prevStart, End: start.AddDate(0, 0, -1)}
	case LastThreeMonths:
		current = Range{Start: today.AddDate(0, -3, 0), End: today}
		previous = precedingWindow(current)
	case Custom:
		if req.From == "" || req.To == "" {
			return Resolution{}, fmt.Errorf("%w: custom preset requires date_from and date_to", ErrMissingBound)
		}
		from, err := parseDate(req.From)
		if err != nil {
			return Resolution{}, err
		}
		to, err := parseDate(req.To)
		if err != nil {
			return Resolution{}, err
		}
		current = Range{Start: from, End: to}
		previous = precedingWindow(current)
	default:
		return Resolution{}, fmt.Errorf("%w: %q", ErrInvalidPreset, req.Preset)
	}

	return Resolution{
		Current:     current,
		Previous:    previous,
		Granularity: granularityFor(current.Days()),
	}, nil
}

// precedingWindow returns the window of equal length ending the day
// before r starts.
func precedingWindow(r Range) Range {
	span := r.Days()
	return Range{
		Start: r.Start.AddDate(0, 0, -span),
		End:   r.Start.AddDate(0, 0, -1),
	}
}

func granularityFor(days int) bucket.Granularity {
	switch {
	case days <= 30:
		return bucket.Day
	case days <= 120:
		return bucket.Week
	default:
		return bucket.Month
	}
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
