package domain

import "errors"

var (
	// ErrInvalidResourceKind is returned for kinds other than desk and room
	ErrInvalidResourceKind = errors.New("domain: invalid resource kind")

	// ErrUnknownDeskSlot is returned when a desk slot preset does not exist
	ErrUnknownDeskSlot = errors.New("domain: unknown desk slot")

	// ErrDeskSlotRequired is returned when a desk is booked without a slot preset
	ErrDeskSlotRequired = errors.New("domain: desk bookings require a slot preset")

	// ErrTimeRangeRequired is returned when a room is booked without start and end time
	ErrTimeRangeRequired = errors.New("domain: room bookings require start and end time")

	// ErrInvalidDate is returned for dates not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("domain: invalid date")
)
