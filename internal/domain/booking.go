package domain

import "time"

// Booking reserves a resource for a user over a half-open interval on one calendar day
type Booking struct {
	ID         string
	UserID     string
	ResourceID string
	Start      time.Time
	End        time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booked interval
func (b *Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// IsOwnedBy returns true if the booking belongs to the user
func (b *Booking) IsOwnedBy(userID string) bool {
	return b.UserID == userID
}

// IsOnDate returns true if the booking starts on the calendar day of date
func (b *Booking) IsOnDate(date time.Time) bool {
	return SameDay(b.Start, date)
}

// BookingsFilter selects bookings from the store; nil fields are not applied
type BookingsFilter struct {
	ResourceID *string
	UserID     *string
	Date       *time.Time // calendar day of the booking start
	EndsAfter  *time.Time // strictly after
}

// Matches reports whether the booking satisfies every set field of the filter
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.ResourceID != nil && b.ResourceID != *f.ResourceID {
		return false
	}
	if f.UserID != nil && b.UserID != *f.UserID {
		return false
	}
	if f.Date != nil && !b.IsOnDate(*f.Date) {
		return false
	}
	if f.EndsAfter != nil && !b.End.After(*f.EndsAfter) {
		return false
	}
	return true
}
