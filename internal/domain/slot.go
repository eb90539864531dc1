package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// DeskSlot is a fixed preset interval offered for desk bookings
type DeskSlot struct {
	Value string
	Label string
	Start types.TimeString
	End   types.TimeString
}

const (
	DeskSlotMorning   = "morning"
	DeskSlotAfternoon = "afternoon"
	DeskSlotFullDay   = "fullday"
)

// DeskSlots lists the presets in display order
var DeskSlots = []DeskSlot{
	{Value: DeskSlotMorning, Label: "Half-day Morning", Start: "06:00", End: "12:00"},
	{Value: DeskSlotAfternoon, Label: "Half-day Afternoon", Start: "13:00", End: "18:00"},
	{Value: DeskSlotFullDay, Label: "Full-day", Start: "08:00", End: "18:00"},
}

// FindDeskSlot looks a preset up by value
func FindDeskSlot(value string) (DeskSlot, bool) {
	for _, slot := range DeskSlots {
		if slot.Value == value {
			return slot, true
		}
	}
	return DeskSlot{}, false
}

// MatchDeskSlot returns the preset whose times equal the booking interval.
// Falls back to the full-day preset when nothing matches.
func MatchDeskSlot(b *Booking) DeskSlot {
	start := types.NewTimeString(b.Start)
	end := types.NewTimeString(b.End)
	for _, slot := range DeskSlots {
		if slot.Start == start && slot.End == end {
			return slot
		}
	}
	fullDay, _ := FindDeskSlot(DeskSlotFullDay)
	return fullDay
}

// ResolveInterval turns booking input into an absolute interval on date.
// Desks take a slot preset, rooms take a free start and end time.
// The interval is not checked for Start < End here.
func ResolveInterval(
	resource *Resource,
	date time.Time,
	slot *string,
	startTime *types.TimeString,
	endTime *types.TimeString,
) (Interval, error) {
	var start, end types.TimeString

	if resource.IsDesk() {
		if slot == nil || *slot == "" {
			return Interval{}, ErrDeskSlotRequired
		}
		preset, ok := FindDeskSlot(*slot)
		if !ok {
			return Interval{}, fmt.Errorf("%w: %q", ErrUnknownDeskSlot, *slot)
		}
		start, end = preset.Start, preset.End
	} else {
		if startTime == nil || endTime == nil || startTime.IsZero() || endTime.IsZero() {
			return Interval{}, ErrTimeRangeRequired
		}
		start, end = *startTime, *endTime
	}

	startAt, err := CombineDateTime(date, start)
	if err != nil {
		return Interval{}, err
	}
	endAt, err := CombineDateTime(date, end)
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: startAt, End: endAt}, nil
}
