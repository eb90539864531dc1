package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 10, 14, hour, min, 0, 0, time.UTC)
}

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func newTestBookingRepository() *BookingRepository {
	fixed := time.Date(2026, 10, 14, 5, 0, 0, 0, time.UTC)
	return NewBookingRepository(
		WithIDGenerator(sequentialIDs("b")),
		WithClock(func() time.Time { return fixed }),
	)
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := newTestBookingRepository()

	first, err := repo.Create(ctx, "d1", "u2", at(8, 0), at(18, 0))
	require.NoError(t, err)
	second, err := repo.Create(ctx, "d4", "u3", at(6, 0), at(12, 0))
	require.NoError(t, err)

	assert.Equal(t, "b1", first.ID)
	assert.Equal(t, "b2", second.ID)
	assert.Equal(t, 2, repo.Count())

	stored, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "u2", stored.UserID)
	assert.Equal(t, "d1", stored.ResourceID)
	assert.Equal(t, at(8, 0), stored.Start)
	assert.False(t, stored.CreatedAt.IsZero())

	_, err = repo.Create(ctx, "", "u1", at(8, 0), at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookingRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newTestBookingRepository()

	created, err := repo.Create(ctx, "d1", "u1", at(8, 0), at(9, 0))
	require.NoError(t, err)
	created.Start = at(1, 0)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, at(8, 0), stored.Start)
}

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestBookingRepository()

	created, err := repo.Create(ctx, "d5", "u1", at(13, 0), at(18, 0))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, at(14, 0), at(18, 0))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "d5", updated.ResourceID)
	assert.Equal(t, "u1", updated.UserID)
	assert.Equal(t, at(14, 0), updated.Start)

	_, err = repo.Update(ctx, "missing", at(14, 0), at(18, 0))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingRepository_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestBookingRepository()

	keep, err := repo.Create(ctx, "d1", "u2", at(8, 0), at(18, 0))
	require.NoError(t, err)
	drop, err := repo.Create(ctx, "r1", "u4", at(9, 0), at(10, 30))
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, drop.ID))
	once, err := repo.List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, drop.ID))
	twice, err := repo.List(ctx, domain.BookingsFilter{})
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	require.Len(t, twice, 1)
	assert.Equal(t, keep.ID, twice[0].ID)
}

func TestBookingRepository_RemoveAllForResource(t *testing.T) {
	ctx := context.Background()
	repo := newTestBookingRepository()

	_, err := repo.Create(ctx, "r1", "u4", at(9, 0), at(10, 30))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "r1", "u2", at(11, 0), at(12, 0))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "r2", "u3", at(14, 0), at(15, 30))
	require.NoError(t, err)

	removed, err := repo.RemoveAllForResource(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	left, err := repo.List(ctx, domain.BookingsFilter{ResourceID: ptr.Ptr("r1")})
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.Equal(t, 1, repo.Count())
}

func TestBookingRepository_ListSortedAndFiltered(t *testing.T) {
	ctx := context.Background()
	repo := newTestBookingRepository()

	_, err := repo.Create(ctx, "r1", "u2", at(11, 0), at(12, 0))
	require.NoError(t, err)
	_, err = repo.Create(ctx, "r1", "u4", at(9, 0), at(10, 30))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &domain.Booking{
		ID: "tomorrow", UserID: "u4", ResourceID: "r1",
		Start: at(9, 0).AddDate(0, 0, 1), End: at(10, 0).AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	today, err := repo.List(ctx, domain.BookingsFilter{ResourceID: ptr.Ptr("r1"), Date: ptr.Ptr(at(0, 0))})
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, at(9, 0), today[0].Start)
	assert.Equal(t, at(11, 0), today[1].Start)

	mine, err := repo.List(ctx, domain.BookingsFilter{UserID: ptr.Ptr("u4")})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	_, err = repo.Insert(ctx, &domain.Booking{ID: "tomorrow", UserID: "u1", ResourceID: "d1"})
	assert.ErrorIs(t, err, ErrBookingAlreadyExists)
}
