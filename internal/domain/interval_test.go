package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, 10, day, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{name: "contained", aStart: at(14, 8, 0), aEnd: at(14, 18, 0), bStart: at(14, 10, 0), bEnd: at(14, 11, 0), want: true},
		{name: "partial", aStart: at(14, 13, 0), aEnd: at(14, 18, 0), bStart: at(14, 12, 0), bEnd: at(14, 14, 0), want: true},
		{name: "identical", aStart: at(14, 9, 0), aEnd: at(14, 10, 0), bStart: at(14, 9, 0), bEnd: at(14, 10, 0), want: true},
		{name: "touching end", aStart: at(14, 9, 0), aEnd: at(14, 10, 0), bStart: at(14, 10, 0), bEnd: at(14, 11, 0), want: false},
		{name: "disjoint", aStart: at(14, 6, 0), aEnd: at(14, 12, 0), bStart: at(14, 13, 0), bEnd: at(14, 18, 0), want: false},
		{name: "same time other day", aStart: at(14, 9, 0), aEnd: at(14, 10, 0), bStart: at(15, 9, 0), bEnd: at(15, 10, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetric under swapping the intervals
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestOverlaps_FalseWhenSeparated(t *testing.T) {
	base := at(14, 6, 0)
	for a := 0; a < 24; a++ {
		for b := a + 1; b < 25; b++ {
			for c := b; c < 26; c++ {
				aStart := base.Add(time.Duration(a) * 30 * time.Minute)
				aEnd := base.Add(time.Duration(b) * 30 * time.Minute)
				cStart := base.Add(time.Duration(c) * 30 * time.Minute)
				cEnd := cStart.Add(time.Hour)

				assert.False(t, Overlaps(aStart, aEnd, cStart, cEnd), "b <= c must not overlap")
				assert.False(t, Overlaps(cStart, cEnd, aStart, aEnd), "d <= a must not overlap")
			}
		}
	}
}

func TestInterval_Contains(t *testing.T) {
	interval := Interval{Start: at(14, 13, 0), End: at(14, 18, 0)}

	assert.True(t, interval.Contains(at(14, 13, 0)))
	assert.True(t, interval.Contains(at(14, 17, 59)))
	assert.False(t, interval.Contains(at(14, 18, 0)))
	assert.False(t, interval.Contains(at(14, 12, 59)))
}

func TestInterval_Clip(t *testing.T) {
	window := WorkingWindow(at(14, 0, 0))

	early := Interval{Start: at(14, 5, 0), End: at(14, 7, 30)}
	assert.Equal(t, 90, early.Clip(window).Minutes())

	late := Interval{Start: at(14, 17, 0), End: at(14, 20, 0)}
	assert.Equal(t, 60, late.Clip(window).Minutes())

	outside := Interval{Start: at(14, 19, 0), End: at(14, 21, 0)}
	clipped := outside.Clip(window)
	assert.False(t, clipped.IsValid())
	assert.Equal(t, 0, clipped.Minutes())

	spanning := Interval{Start: at(14, 0, 0), End: at(14, 23, 0)}
	assert.Equal(t, WorkdayMinutes, spanning.Clip(window).Minutes())
}

func TestInterval_MinutesTruncates(t *testing.T) {
	interval := Interval{Start: at(14, 9, 0), End: at(14, 9, 0).Add(90*time.Second + time.Millisecond)}
	assert.Equal(t, 1, interval.Minutes())

	reversed := Interval{Start: at(14, 10, 0), End: at(14, 9, 0)}
	assert.Equal(t, 0, reversed.Minutes())
}

func TestCombineDateTime(t *testing.T) {
	loc := time.FixedZone("office", 2*60*60)
	date, err := ParseDate("2026-10-14", loc)
	require.NoError(t, err)

	instant, err := CombineDateTime(date, types.TimeString("14:30"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 14, 14, 30, 0, 0, loc), instant)

	_, err = CombineDateTime(date, types.TimeString("25:00"))
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("14.10.2026", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)

	date, err := ParseDate("2026-02-28", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, StartOfDay(date), date)
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(at(14, 0, 0), at(14, 23, 59)))
	assert.False(t, SameDay(at(14, 23, 59), at(15, 0, 0)))
}
