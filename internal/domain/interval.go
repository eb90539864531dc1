package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Interval is a half-open interval [Start, End) of absolute instants
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if Start is strictly before End
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps reports whether the two intervals intersect
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

// Contains reports whether Start <= t < End
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Clip returns the part of the interval inside window.
// The result is empty (Start == End) when they do not intersect.
func (i Interval) Clip(window Interval) Interval {
	start := i.Start
	if start.Before(window.Start) {
		start = window.Start
	}
	end := i.End
	if end.After(window.End) {
		end = window.End
	}
	if !start.Before(end) {
		return Interval{Start: start, End: start}
	}
	return Interval{Start: start, End: end}
}

// Minutes returns the whole minutes of the interval, truncated; never negative
func (i Interval) Minutes() int {
	if !i.IsValid() {
		return 0
	}
	return int(i.End.Sub(i.Start) / time.Minute)
}

// CombineDateTime builds an absolute instant from the calendar day of date and a time of day,
// in the location of date. Instants inside a DST transition are normalized by time.Date and
// are not otherwise handled.
func CombineDateTime(date time.Time, timeOfDay types.TimeString) (time.Time, error) {
	hour, minute, err := timeOfDay.Clock()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, date.Location()), nil
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

// StartOfDay returns midnight of the calendar day of t in its location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in the location of a
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// WorkingWindow returns the 06:00–18:00 window on the calendar day of date
func WorkingWindow(date time.Time) Interval {
	y, m, d := date.Date()
	loc := date.Location()
	return Interval{
		Start: time.Date(y, m, d, WorkdayStartHour, 0, 0, 0, loc),
		End:   time.Date(y, m, d, WorkdayEndHour, 0, 0, 0, loc),
	}
}
