package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
// Для стола передаётся slot, для переговорной startTime и endTime
type CreateBookingRequest struct {
	ResourceID string  `json:"resourceId"`
	Date       string  `json:"date"` // "2026-10-14"
	Slot       *string `json:"slot,omitempty"`
	StartTime  *string `json:"startTime,omitempty"` // "14:00"
	EndTime    *string `json:"endTime,omitempty"`   // "15:00"
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	ResourceID   string  `json:"resourceId"`
	ResourceName string  `json:"resourceName"`
	ResourceKind string  `json:"resourceKind"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Slot         *string `json:"slot,omitempty"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string, loc *time.Location) (*createBooking.Request, error) {
	date, err := domain.ParseDate(r.Date, loc)
	if err != nil {
		return nil, err
	}

	startTime, err := parseOptionalTime(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := parseOptionalTime(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		ResourceID: r.ResourceID,
		Date:       date,
		Slot:       r.Slot,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}

func parseOptionalTime(value *string) (*types.TimeString, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidTimeString, *value)
	}
	return &t, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) BookingResponse {
	return BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		ResourceID:   resp.ResourceID,
		ResourceName: resp.ResourceName,
		ResourceKind: resp.ResourceKind,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Slot:         resp.Slot,
		Start:        resp.Start.Format(time.RFC3339),
		End:          resp.End.Format(time.RFC3339),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
