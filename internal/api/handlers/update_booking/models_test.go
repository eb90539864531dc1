package update_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

func TestToUseCaseRequest_KeepsDateWhenOmitted(t *testing.T) {
	req := UpdateBookingRequest{Slot: ptr.Ptr(domain.DeskSlotAfternoon)}

	got, err := req.ToUseCaseRequest("u1", "b3", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "b3", got.BookingID)
	assert.Nil(t, got.Date)
	assert.Nil(t, got.StartTime)
	assert.Equal(t, domain.DeskSlotAfternoon, *got.Slot)
}

func TestToUseCaseRequest_MoveToAnotherDay(t *testing.T) {
	req := UpdateBookingRequest{
		Date:      ptr.Ptr("2026-10-15"),
		StartTime: ptr.Ptr("09:00"),
		EndTime:   ptr.Ptr("10:00"),
	}

	got, err := req.ToUseCaseRequest("u4", "b4", time.UTC)
	require.NoError(t, err)

	require.NotNil(t, got.Date)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), *got.Date)
	assert.Equal(t, types.TimeString("09:00"), *got.StartTime)
}

func TestToUseCaseRequest_Errors(t *testing.T) {
	_, err := (&UpdateBookingRequest{Date: ptr.Ptr("tomorrow")}).ToUseCaseRequest("u1", "b3", time.UTC)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = (&UpdateBookingRequest{EndTime: ptr.Ptr("25:00")}).ToUseCaseRequest("u1", "b3", time.UTC)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}
