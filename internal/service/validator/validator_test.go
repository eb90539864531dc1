package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/testfixtures"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

func newTestValidator() (*Validator, *testfixtures.Office) {
	office := testfixtures.NewOffice()
	return NewValidator(office.Bookings, office.Resources, testfixtures.Logger()), office
}

func TestValidate_ResourceConflict(t *testing.T) {
	v, _ := newTestValidator()

	// d1: b1 08:00-18:00
	err := v.Validate(context.Background(), Proposal{
		ResourceID: "d1",
		UserID:     "u3",
		Start:      testfixtures.At(10, 0),
		End:        testfixtures.At(11, 0),
	})

	assert.ErrorIs(t, err, ErrResourceConflict)
	assert.Equal(t, OutcomeResourceConflict, Outcome(err))
}

func TestValidate_UserDeskConflict(t *testing.T) {
	v, _ := newTestValidator()

	// u1 holds d5 13:00-18:00 (b3); d2 is free
	err := v.Validate(context.Background(), Proposal{
		ResourceID: "d2",
		UserID:     "u1",
		Start:      testfixtures.At(14, 0),
		End:        testfixtures.At(15, 0),
	})

	assert.ErrorIs(t, err, ErrUserDeskConflict)
	assert.Equal(t, OutcomeUserDeskConflict, Outcome(err))
}

func TestValidate_ResourceConflictWinsOverDeskConflict(t *testing.T) {
	v, _ := newTestValidator()

	// d1 is taken by b1 and u1 also holds d5 at this time
	err := v.Validate(context.Background(), Proposal{
		ResourceID: "d1",
		UserID:     "u1",
		Start:      testfixtures.At(14, 0),
		End:        testfixtures.At(15, 0),
	})

	assert.ErrorIs(t, err, ErrResourceConflict)
}

func TestValidate_RoomExemptFromDeskRule(t *testing.T) {
	v, office := newTestValidator()
	ctx := context.Background()

	// u1 holds desk d5 13:00-18:00, a room at 14:00-15:00 is fine (r1 is free then)
	err := v.Validate(ctx, Proposal{
		ResourceID: "r1",
		UserID:     "u1",
		Start:      testfixtures.At(14, 0),
		End:        testfixtures.At(15, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeOK, Outcome(err))

	// and the other way round: a room booking does not block a desk
	_, err = office.Bookings.Create(ctx, "r1", "u3", testfixtures.At(6, 0), testfixtures.At(8, 0))
	require.NoError(t, err)
	err = v.Validate(ctx, Proposal{
		ResourceID: "d2",
		UserID:     "u3",
		Start:      testfixtures.At(6, 0),
		End:        testfixtures.At(8, 0),
	})
	assert.ErrorIs(t, err, ErrUserDeskConflict, "u3 still holds d4 06:00-12:00")

	err = v.Validate(ctx, Proposal{
		ResourceID: "d2",
		UserID:     "u3",
		Start:      testfixtures.At(13, 0),
		End:        testfixtures.At(18, 0),
	})
	assert.NoError(t, err)
}

func TestValidate_ExcludeBookingOnEdit(t *testing.T) {
	v, _ := newTestValidator()

	proposal := Proposal{
		ResourceID: "d5",
		UserID:     "u1",
		Start:      testfixtures.At(14, 0),
		End:        testfixtures.At(18, 0),
	}

	// without exclusion b3 conflicts with itself
	assert.ErrorIs(t, v.Validate(context.Background(), proposal), ErrResourceConflict)

	proposal.ExcludeBookingID = ptr.Ptr("b3")
	assert.NoError(t, v.Validate(context.Background(), proposal))
}

func TestValidate_TouchingIntervalsDoNotConflict(t *testing.T) {
	v, _ := newTestValidator()

	// r1: b4 09:00-10:30, b5 11:00-12:00
	err := v.Validate(context.Background(), Proposal{
		ResourceID: "r1",
		UserID:     "u1",
		Start:      testfixtures.At(10, 30),
		End:        testfixtures.At(11, 0),
	})

	assert.NoError(t, err)
}

func TestValidate_OtherDayDoesNotConflict(t *testing.T) {
	v, _ := newTestValidator()

	err := v.Validate(context.Background(), Proposal{
		ResourceID: "d1",
		UserID:     "u3",
		Start:      testfixtures.At(10, 0).AddDate(0, 0, 1),
		End:        testfixtures.At(11, 0).AddDate(0, 0, 1),
	})

	assert.NoError(t, err)
}

func TestValidate_InvalidInterval(t *testing.T) {
	v, _ := newTestValidator()

	tests := []struct {
		name       string
		startH     int
		endH       int
		resourceID string
	}{
		{name: "reversed room interval", startH: 17, endH: 16, resourceID: "r2"},
		{name: "empty room interval", startH: 16, endH: 16, resourceID: "r2"},
		{name: "reversed desk interval", startH: 17, endH: 16, resourceID: "d3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), Proposal{
				ResourceID: tt.resourceID,
				UserID:     "u4",
				Start:      testfixtures.At(tt.startH, 0),
				End:        testfixtures.At(tt.endH, 0),
			})
			assert.ErrorIs(t, err, ErrInvalidInterval)
			assert.Equal(t, OutcomeInvalidInterval, Outcome(err))
		})
	}
}

func TestValidate_ResourceNotFound(t *testing.T) {
	v, _ := newTestValidator()

	err := v.Validate(context.Background(), Proposal{
		ResourceID: "deleted",
		UserID:     "u1",
		Start:      testfixtures.At(9, 0),
		End:        testfixtures.At(10, 0),
	})

	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Equal(t, OutcomeNotFound, Outcome(err))
}

type countingLogger struct {
	warns  int
	errors int
}

func (l *countingLogger) Info(string, ...interface{})  {}
func (l *countingLogger) Warn(string, ...interface{})  { l.warns++ }
func (l *countingLogger) Error(string, ...interface{}) { l.errors++ }

func TestValidate_RejectionsAreNotLogged(t *testing.T) {
	office := testfixtures.NewOffice()
	log := &countingLogger{}
	v := NewValidator(office.Bookings, office.Resources, log)
	ctx := context.Background()

	proposals := []Proposal{
		{ResourceID: "d1", UserID: "u3", Start: testfixtures.At(10, 0), End: testfixtures.At(11, 0)},
		{ResourceID: "d2", UserID: "u1", Start: testfixtures.At(14, 0), End: testfixtures.At(15, 0)},
		{ResourceID: "r2", UserID: "u1", Start: testfixtures.At(16, 0), End: testfixtures.At(16, 0)},
		{ResourceID: "missing", UserID: "u1", Start: testfixtures.At(9, 0), End: testfixtures.At(10, 0)},
	}
	for _, p := range proposals {
		require.Error(t, v.Validate(ctx, p))
	}

	assert.Zero(t, log.warns)
	assert.Zero(t, log.errors)
}
