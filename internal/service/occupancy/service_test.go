package occupancy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/testfixtures"
)

func newTestService() (*Service, *testfixtures.Office) {
	office := testfixtures.NewOffice()
	return NewService(office.Bookings, office.Resources, office.Users, testfixtures.Logger()), office
}

func TestBookedPercent(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name       string
		resourceID string
		want       float64
	}{
		{name: "full day desk", resourceID: "d1", want: 10.0 * 60 / 720 * 100},
		{name: "morning desk", resourceID: "d4", want: 50},
		{name: "free desk", resourceID: "d2", want: 0},
		{name: "room with two meetings", resourceID: "r1", want: 150.0 / 720 * 100},
		{name: "room B", resourceID: "r2", want: 90.0 / 720 * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.BookedPercent(context.Background(), tt.resourceID, testfixtures.Day)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBookedPercent_ClipsToWorkingWindow(t *testing.T) {
	svc, office := newTestService()
	ctx := context.Background()

	// 05:00-07:00 counts 60 minutes, 17:30-20:00 counts 30 minutes
	_, err := office.Bookings.Create(ctx, "r2", "u1", testfixtures.At(5, 0), testfixtures.At(7, 0))
	require.NoError(t, err)
	_, err = office.Bookings.Create(ctx, "r2", "u1", testfixtures.At(17, 30), testfixtures.At(20, 0))
	require.NoError(t, err)

	got, err := svc.BookedPercent(ctx, "r2", testfixtures.Day)
	require.NoError(t, err)
	assert.InDelta(t, (90.0+60+30)/720*100, got, 1e-9)
}

func TestBookedPercent_OtherDayIsFree(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.BookedPercent(context.Background(), "d1", testfixtures.Day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestBookedPercent_ResourceNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.BookedPercent(context.Background(), "missing", testfixtures.Day)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestOccupantAt(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name       string
		resourceID string
		hour, min  int
		wantUser   string
	}{
		{name: "desk booked full day", resourceID: "d1", hour: 9, min: 0, wantUser: "u2"},
		{name: "start is inclusive", resourceID: "d5", hour: 13, min: 0, wantUser: "u1"},
		{name: "end is exclusive", resourceID: "d4", hour: 12, min: 0},
		{name: "free desk", resourceID: "d2", hour: 9, min: 0},
		{name: "room is never occupied by a person", resourceID: "r1", hour: 9, min: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.OccupantAt(context.Background(), tt.resourceID, testfixtures.Day, testfixtures.At(tt.hour, tt.min))
			require.NoError(t, err)
			if tt.wantUser == "" {
				assert.Nil(t, user)
				return
			}
			require.NotNil(t, user)
			assert.Equal(t, tt.wantUser, user.ID)
		})
	}
}

func TestOccupantAt_UnknownOwner(t *testing.T) {
	svc, office := newTestService()
	ctx := context.Background()

	_, err := office.Bookings.Create(ctx, "d2", "ghost", testfixtures.At(6, 0), testfixtures.At(12, 0))
	require.NoError(t, err)

	user, err := svc.OccupantAt(ctx, "d2", testfixtures.Day, testfixtures.At(7, 0))
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestBookingAt_HalfOpen(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: "a", Start: testfixtures.At(9, 0), End: testfixtures.At(10, 0)},
		{ID: "b", Start: testfixtures.At(10, 0), End: testfixtures.At(11, 0)},
	}

	assert.Equal(t, "b", bookingAt(bookings, testfixtures.At(10, 0)).ID)
	assert.Nil(t, bookingAt(bookings, testfixtures.At(11, 0)))
	assert.Nil(t, bookingAt(nil, testfixtures.At(9, 0)))
}
