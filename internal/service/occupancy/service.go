package occupancy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

// Service считает занятость ресурсов в рабочем окне дня
type Service struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	userRepo     UserRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса занятости
func NewService(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// BookedPercent возвращает долю рабочего окна 06:00-18:00, занятую бронированиями ресурса на дату
// Результат всегда в диапазоне [0, 100]
func (s *Service) BookedPercent(ctx context.Context, resourceID string, date time.Time) (float64, error) {
	if _, err := s.getResource(ctx, "BookedPercent", resourceID); err != nil {
		return 0, err
	}

	bookings, err := s.dayBookings(ctx, resourceID, date)
	if err != nil {
		s.logger.Error("BookedPercent: failed to list bookings of resource id=%s: %v", resourceID, err)
		return 0, fmt.Errorf("%w: BookedPercent - repository error: %v", ErrInternal, err)
	}

	return percent(date, bookings), nil
}

// OccupantAt возвращает владельца бронирования стола, содержащего момент instant
// Для переговорных и свободных столов возвращает nil
func (s *Service) OccupantAt(ctx context.Context, resourceID string, date, instant time.Time) (*domain.User, error) {
	resource, err := s.getResource(ctx, "OccupantAt", resourceID)
	if err != nil {
		return nil, err
	}
	if !resource.IsDesk() {
		return nil, nil
	}

	bookings, err := s.dayBookings(ctx, resourceID, date)
	if err != nil {
		s.logger.Error("OccupantAt: failed to list bookings of resource id=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: OccupantAt - repository error: %v", ErrInternal, err)
	}

	booking := bookingAt(bookings, instant)
	if booking == nil {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			// бронирование осталось от пользователя, которого нет в справочнике
			s.logger.Warn("OccupantAt: owner id=%s of booking id=%s not found", booking.UserID, booking.ID)
			return nil, nil
		}
		s.logger.Error("OccupantAt: failed to get user id=%s: %v", booking.UserID, err)
		return nil, fmt.Errorf("%w: OccupantAt - repository error: %v", ErrInternal, err)
	}

	return user, nil
}

// percent считает занятость по уже выбранным бронированиям одного ресурса на дату
func percent(date time.Time, bookings []*domain.Booking) float64 {
	intervals := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, b.Interval())
	}
	return domain.BookedPercent(date, intervals)
}

// bookingAt возвращает бронирование, содержащее instant (start <= instant < end)
func bookingAt(bookings []*domain.Booking, instant time.Time) *domain.Booking {
	for _, b := range bookings {
		if b.Interval().Contains(instant) {
			return b
		}
	}
	return nil
}

func (s *Service) getResource(ctx context.Context, op, resourceID string) (*domain.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, memory.ErrResourceNotFound) {
			s.logger.Warn("%s: resource id=%s not found", op, resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("%s: failed to get resource id=%s: %v", op, resourceID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return resource, nil
}

func (s *Service) dayBookings(ctx context.Context, resourceID string, date time.Time) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, domain.BookingsFilter{
		ResourceID: ptr.Ptr(resourceID),
		Date:       ptr.Ptr(date),
	})
}
