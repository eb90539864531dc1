package domain

import "time"

// BookedMinutes sums the whole minutes of the intervals that fall inside window.
// Intervals are assumed not to overlap each other.
func BookedMinutes(window Interval, intervals []Interval) int {
	total := 0
	for _, interval := range intervals {
		total += interval.Clip(window).Minutes()
	}
	return total
}

// BookedPercent computes the share of the working window on date covered by intervals, in [0, 100]
func BookedPercent(date time.Time, intervals []Interval) float64 {
	minutes := BookedMinutes(WorkingWindow(date), intervals)
	if minutes > WorkdayMinutes {
		minutes = WorkdayMinutes
	}
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / float64(WorkdayMinutes) * 100
}

// BadgeColor returns the floorplan marker color for a booked percentage
func BadgeColor(percent float64) string {
	switch {
	case percent <= 0:
		return BadgeColorFree
	case percent >= BadgeFullThreshold:
		return BadgeColorFull
	default:
		return BadgeColorPartial
	}
}
