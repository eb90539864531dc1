package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookedPercent_Scenario(t *testing.T) {
	day := at(14, 0, 0)
	intervals := []Interval{
		{Start: at(14, 9, 0), End: at(14, 10, 30)},
		{Start: at(14, 11, 0), End: at(14, 12, 0)},
	}

	assert.InDelta(t, 150.0/720.0*100, BookedPercent(day, intervals), 1e-9)
	assert.InDelta(t, 20.83, BookedPercent(day, intervals), 0.01)
}

func TestBookedPercent_Bounds(t *testing.T) {
	day := at(14, 0, 0)

	tests := []struct {
		name      string
		intervals []Interval
		want      float64
	}{
		{name: "no bookings", intervals: nil, want: 0},
		{name: "entirely before window", intervals: []Interval{{Start: at(14, 0, 0), End: at(14, 6, 0)}}, want: 0},
		{name: "entirely after window", intervals: []Interval{{Start: at(14, 18, 0), End: at(14, 23, 0)}}, want: 0},
		{name: "spanning window", intervals: []Interval{{Start: at(14, 1, 0), End: at(14, 23, 0)}}, want: 100},
		{name: "other day", intervals: []Interval{{Start: at(15, 8, 0), End: at(15, 18, 0)}}, want: 0},
		{name: "overlapping input still clamped", intervals: []Interval{
			{Start: at(14, 6, 0), End: at(14, 18, 0)},
			{Start: at(14, 6, 0), End: at(14, 18, 0)},
		}, want: 100},
		{name: "reversed interval ignored", intervals: []Interval{{Start: at(14, 12, 0), End: at(14, 8, 0)}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BookedPercent(day, tt.intervals)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestBookedPercent_MonotonicInDuration(t *testing.T) {
	day := at(14, 0, 0)
	fixed := Interval{Start: at(14, 6, 0), End: at(14, 8, 0)}

	previous := -1.0
	for end := 9; end <= 18; end++ {
		growing := Interval{Start: at(14, 9, 0), End: at(14, end, 0)}
		got := BookedPercent(day, []Interval{fixed, growing})
		assert.GreaterOrEqual(t, got, previous)
		previous = got
	}
}

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, BadgeColorFree, BadgeColor(0))
	assert.Equal(t, BadgeColorPartial, BadgeColor(20.83))
	assert.Equal(t, BadgeColorPartial, BadgeColor(94.9))
	assert.Equal(t, BadgeColorFull, BadgeColor(95))
	assert.Equal(t, BadgeColorFull, BadgeColor(100))
}
