package validator

import "time"

// Proposal предлагаемое бронирование (новое или изменённое)
type Proposal struct {
	ResourceID string
	UserID     string
	Start      time.Time
	End        time.Time

	// ExcludeBookingID бронирование, которое редактируется на месте (не конфликтует само с собой)
	ExcludeBookingID *string
}

func (p Proposal) excludes(bookingID string) bool {
	return p.ExcludeBookingID != nil && *p.ExcludeBookingID == bookingID
}
