package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	updateBooking "github.com/m04kA/SMC-DeskBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// UpdateBookingRequest HTTP request model
// Все поля опциональны; дата по умолчанию остаётся прежней
type UpdateBookingRequest struct {
	Date      *string `json:"date,omitempty"`
	Slot      *string `json:"slot,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// UpdateBookingResponse HTTP response model
type UpdateBookingResponse struct {
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
func (r *UpdateBookingRequest) ToUseCaseRequest(userID, bookingID string, loc *time.Location) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		Slot:      r.Slot,
	}

	if r.Date != nil && *r.Date != "" {
		date, err := domain.ParseDate(*r.Date, loc)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	var err error
	if req.StartTime, err = parseOptionalTime(r.StartTime); err != nil {
		return nil, err
	}
	if req.EndTime, err = parseOptionalTime(r.EndTime); err != nil {
		return nil, err
	}

	return req, nil
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
func FromUseCaseResponse(resp *updateBooking.Response) BookingResponse {
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
