package models

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Request модели

// ListResourceDayRequest запрос расписания ресурса на день
type ListResourceDayRequest struct {
	ResourceID string    `json:"resourceId"`
	Date       time.Time `json:"date"`
}

// ListUpcomingRequest запрос предстоящих бронирований пользователя
type ListUpcomingRequest struct {
	UserID string    `json:"userId"`
	Now    time.Time `json:"now"` // бронирования, закончившиеся до начала этого дня, не попадают в ответ
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	UserName     string  `json:"userName,omitempty"`
	ResourceID   string  `json:"resourceId"`
	ResourceName string  `json:"resourceName,omitempty"`
	ResourceKind string  `json:"resourceKind,omitempty"`
	Date         string  `json:"date"`      // "2026-10-14"
	StartTime    string  `json:"startTime"` // "08:00"
	EndTime      string  `json:"endTime"`   // "18:00"
	Slot         *string `json:"slot,omitempty"`
	SlotLabel    *string `json:"slotLabel,omitempty"`

	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// resource и user могут быть nil, если запись уже удалена
func FromDomainBooking(b *domain.Booking, resource *domain.Resource, user *domain.User) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		ResourceID: b.ResourceID,
		Date:       b.Start.Format(domain.DateFormat),
		StartTime:  types.NewTimeString(b.Start).String(),
		EndTime:    types.NewTimeString(b.End).String(),
		Start:      b.Start,
		End:        b.End,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if user != nil {
		resp.UserName = user.Name
	}

	if resource != nil {
		resp.ResourceName = resource.Name
		resp.ResourceKind = string(resource.Kind)
		if resource.IsDesk() {
			slot := domain.MatchDeskSlot(b)
			resp.Slot = ptr.Ptr(slot.Value)
			resp.SlotLabel = ptr.Ptr(slot.Label)
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(
	bookings []*domain.Booking,
	resources map[string]*domain.Resource,
	users map[string]*domain.User,
) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, resources[booking.ResourceID], users[booking.UserID]); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
