package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

// MutationCancel метка операции для метрик
const MutationCancel = "cancel"

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	userRepo     UserRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Бронирования видны всем пользователям офиса
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	var resp *models.BookingResponse
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, memory.ErrBookingNotFound) {
				s.logger.Warn("GetByID: booking id=%s not found", id)
				return ErrBookingNotFound
			}
			s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
		}

		resources, users, err := s.directory(txCtx)
		if err != nil {
			s.logger.Error("GetByID: %v", err)
			return err
		}

		resp = models.FromDomainBooking(booking, resources[booking.ResourceID], users[booking.UserID])
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return resp, nil
}

// ListResourceDay получает расписание ресурса на день, отсортированное по времени начала
func (s *Service) ListResourceDay(ctx context.Context, req *models.ListResourceDayRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListResourceDay: fetching bookings for resource=%s, date=%s",
		req.ResourceID, req.Date.Format(domain.DateFormat))

	if req.ResourceID == "" || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: resourceID and date are required", ErrInvalidInput)
	}

	var resp *models.BookingListResponse
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := s.resourceRepo.GetByID(txCtx, req.ResourceID); err != nil {
			if errors.Is(err, memory.ErrResourceNotFound) {
				s.logger.Warn("ListResourceDay: resource id=%s not found", req.ResourceID)
				return ErrResourceNotFound
			}
			s.logger.Error("ListResourceDay: repository error for resource id=%s: %v", req.ResourceID, err)
			return fmt.Errorf("%w: ListResourceDay - repository error: %v", ErrInternal, err)
		}

		bookings, err := s.bookingRepo.List(txCtx, domain.BookingsFilter{
			ResourceID: ptr.Ptr(req.ResourceID),
			Date:       ptr.Ptr(req.Date),
		})
		if err != nil {
			s.logger.Error("ListResourceDay: repository error for resource id=%s: %v", req.ResourceID, err)
			return fmt.Errorf("%w: ListResourceDay - repository error: %v", ErrInternal, err)
		}

		resources, users, err := s.directory(txCtx)
		if err != nil {
			s.logger.Error("ListResourceDay: %v", err)
			return err
		}

		resp = models.FromDomainBookingList(bookings, resources, users)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListResourceDay: successfully fetched %d bookings for resource=%s", len(resp.Bookings), req.ResourceID)
	return resp, nil
}

// ListUpcoming получает бронирования пользователя, которые заканчиваются после начала текущего дня
func (s *Service) ListUpcoming(ctx context.Context, req *models.ListUpcomingRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListUpcoming: fetching bookings for user=%s", req.UserID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	var resp *models.BookingListResponse
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		bookings, err := s.bookingRepo.List(txCtx, domain.BookingsFilter{
			UserID:    ptr.Ptr(req.UserID),
			EndsAfter: ptr.Ptr(domain.StartOfDay(req.Now)),
		})
		if err != nil {
			s.logger.Error("ListUpcoming: repository error for user=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
		}

		resources, users, err := s.directory(txCtx)
		if err != nil {
			s.logger.Error("ListUpcoming: %v", err)
			return err
		}

		resp = models.FromDomainBookingList(bookings, resources, users)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListUpcoming: successfully fetched %d bookings for user=%s", len(resp.Bookings), req.UserID)
	return resp, nil
}

// Cancel удаляет бронирование
// Удалить может только владелец; отсутствующее бронирование считается уже удалённым
func (s *Service) Cancel(ctx context.Context, bookingID string, userID string) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, userID)

	removed := false
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, memory.ErrBookingNotFound) {
				s.logger.Info("Cancel: booking id=%s already removed", bookingID)
				return nil
			}
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !booking.IsOwnedBy(userID) {
			s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%s", userID, bookingID)
			return ErrAccessDenied
		}

		if err := s.bookingRepo.Remove(txCtx, bookingID); err != nil {
			s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		removed = true
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		s.metrics.RecordMutation(MutationCancel)
		s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	}
	return nil
}

// Вспомогательные методы

// directory загружает ресурсы и пользователей для денормализации ответа
func (s *Service) directory(ctx context.Context) (map[string]*domain.Resource, map[string]*domain.User, error) {
	resources, err := s.resourceRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list users: %v", ErrInternal, err)
	}

	resourcesByID := make(map[string]*domain.Resource, len(resources))
	for _, r := range resources {
		resourcesByID[r.ID] = r
	}

	usersByID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	return resourcesByID, usersByID, nil
}
