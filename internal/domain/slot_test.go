package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

func TestResolveInterval_Desk(t *testing.T) {
	desk := &Resource{ID: "d1", Kind: ResourceKindDesk}

	interval, err := ResolveInterval(desk, at(14, 0, 0), ptr.Ptr(DeskSlotAfternoon), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, at(14, 13, 0), interval.Start)
	assert.Equal(t, at(14, 18, 0), interval.End)

	_, err = ResolveInterval(desk, at(14, 0, 0), nil, ptr.Ptr(types.TimeString("10:00")), ptr.Ptr(types.TimeString("11:00")))
	assert.ErrorIs(t, err, ErrDeskSlotRequired)

	_, err = ResolveInterval(desk, at(14, 0, 0), ptr.Ptr("evening"), nil, nil)
	assert.ErrorIs(t, err, ErrUnknownDeskSlot)
}

func TestResolveInterval_Room(t *testing.T) {
	room := &Resource{ID: "r1", Kind: ResourceKindRoom}

	interval, err := ResolveInterval(room, at(14, 0, 0), nil, ptr.Ptr(types.TimeString("10:00")), ptr.Ptr(types.TimeString("11:30")))
	require.NoError(t, err)
	assert.Equal(t, 90, interval.Minutes())

	_, err = ResolveInterval(room, at(14, 0, 0), ptr.Ptr(DeskSlotMorning), nil, nil)
	assert.ErrorIs(t, err, ErrTimeRangeRequired)

	// start == end is resolved; rejecting it is the validator's job
	interval, err = ResolveInterval(room, at(14, 0, 0), nil, ptr.Ptr(types.TimeString("10:00")), ptr.Ptr(types.TimeString("10:00")))
	require.NoError(t, err)
	assert.False(t, interval.IsValid())
}

func TestMatchDeskSlot(t *testing.T) {
	morning := &Booking{Start: at(14, 6, 0), End: at(14, 12, 0)}
	assert.Equal(t, DeskSlotMorning, MatchDeskSlot(morning).Value)

	custom := &Booking{Start: at(14, 7, 0), End: at(14, 9, 0)}
	assert.Equal(t, DeskSlotFullDay, MatchDeskSlot(custom).Value)
}

func TestParseResourceKind(t *testing.T) {
	kind, err := ParseResourceKind("room")
	require.NoError(t, err)
	assert.Equal(t, ResourceKindRoom, kind)

	_, err = ParseResourceKind("sofa")
	assert.ErrorIs(t, err, ErrInvalidResourceKind)
}

func TestBookingsFilter_Matches(t *testing.T) {
	b := &Booking{ID: "b3", UserID: "u1", ResourceID: "d5", Start: at(14, 13, 0), End: at(14, 18, 0)}

	assert.True(t, BookingsFilter{}.Matches(b))
	assert.True(t, BookingsFilter{ResourceID: ptr.Ptr("d5"), UserID: ptr.Ptr("u1"), Date: ptr.Ptr(at(14, 0, 0))}.Matches(b))
	assert.False(t, BookingsFilter{ResourceID: ptr.Ptr("d1")}.Matches(b))
	assert.False(t, BookingsFilter{Date: ptr.Ptr(at(15, 0, 0))}.Matches(b))
	assert.True(t, BookingsFilter{EndsAfter: ptr.Ptr(at(14, 0, 0))}.Matches(b))
	assert.False(t, BookingsFilter{EndsAfter: ptr.Ptr(at(14, 18, 0))}.Matches(b))
}
