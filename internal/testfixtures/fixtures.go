package testfixtures

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBooking/internal/seed"
	"github.com/m04kA/SMC-DeskBooking/pkg/logger"
)

// Day is the calendar day the default office bookings are placed on.
var Day = time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)

// At returns an instant on Day.
func At(hour, minute int) time.Time {
	return time.Date(Day.Year(), Day.Month(), Day.Day(), hour, minute, 0, 0, Day.Location())
}

// Office bundles the in-memory stores filled with the default seed data.
type Office struct {
	Users     *memory.UserRepository
	Resources *memory.ResourceRepository
	Bookings  *memory.BookingRepository
}

var idCounter uint64

// NewOffice returns stores holding users u1-u4, desks d1-d5, rooms r1-r2 and bookings b1-b6 on Day.
// New bookings and resources get deterministic ids of the form "new-001".
func NewOffice() *Office {
	gen := memory.WithIDGenerator(func() string {
		return fmt.Sprintf("new-%03d", atomic.AddUint64(&idCounter, 1))
	})
	clock := memory.WithClock(func() time.Time { return At(5, 0) })

	office := &Office{
		Users:     memory.NewUserRepository(),
		Resources: memory.NewResourceRepository(gen),
		Bookings:  memory.NewBookingRepository(gen, clock),
	}

	fixtures, err := seed.Default()
	if err != nil {
		panic(fmt.Sprintf("testfixtures: default seed: %v", err))
	}
	if err := fixtures.Apply(context.Background(), Day, office.Users, office.Resources, office.Bookings); err != nil {
		panic(fmt.Sprintf("testfixtures: apply seed: %v", err))
	}

	return office
}

// Logger returns a logger that discards everything.
func Logger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, logger.LevelError)
}
