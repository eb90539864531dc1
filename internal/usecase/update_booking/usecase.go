package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBooking/internal/service/validator"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// MutationUpdate метка операции для метрик
const MutationUpdate = "update"

// UseCase use case для изменения времени бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	validator    BookingValidator
	txManager    TransactionManager
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	validator BookingValidator,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		validator:    validator,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case изменения бронирования
// Изменяемое бронирование исключается из проверки конфликтов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%s, user=%s, slot=%s, time=%s-%s",
		req.BookingID, req.UserID,
		ptr.Value(req.Slot, "-"), ptr.Value(req.StartTime, "-"), ptr.Value(req.EndTime, "-"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		result   *domain.Booking
		resource *domain.Resource
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем бронирование и проверяем владельца
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, memory.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.IsOwnedBy(req.UserID) {
			uc.logger.Warn("UpdateBooking: user=%s is not the owner of booking id=%s", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		// 3. Получаем ресурс бронирования
		resource, err = uc.resourceRepo.GetByID(txCtx, booking.ResourceID)
		if err != nil {
			if errors.Is(err, memory.ErrResourceNotFound) {
				uc.logger.Warn("UpdateBooking: resource id=%s not found", booking.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get resource id=%s: %v", booking.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		// 4. Строим новый интервал
		date := domain.StartOfDay(booking.Start)
		if req.Date != nil {
			date = *req.Date
		}

		interval, err := domain.ResolveInterval(resource, date, req.Slot, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Warn("UpdateBooking: cannot resolve interval for booking id=%s: %v", req.BookingID, err)
			return mapResolveError(err)
		}

		// 5. Проверяем конфликты без учёта самого бронирования
		err = uc.validator.Validate(txCtx, validator.Proposal{
			ResourceID:       booking.ResourceID,
			UserID:           booking.UserID,
			Start:            interval.Start,
			End:              interval.End,
			ExcludeBookingID: ptr.Ptr(booking.ID),
		})
		uc.metrics.RecordValidation(validator.Outcome(err))
		if err != nil {
			uc.logger.Warn("UpdateBooking: proposal rejected for booking id=%s: %v", booking.ID, err)
			return mapValidationError(err)
		}

		// 6. Сохраняем новый интервал
		updated, err := uc.bookingRepo.Update(txCtx, booking.ID, interval.Start, interval.End)
		if err != nil {
			if errors.Is(err, memory.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordMutation(MutationUpdate)
	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", result.ID)

	resp := &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		ResourceID:   result.ResourceID,
		ResourceName: resource.Name,
		ResourceKind: string(resource.Kind),
		Date:         domain.StartOfDay(result.Start),
		StartTime:    types.NewTimeString(result.Start),
		EndTime:      types.NewTimeString(result.End),
		Start:        result.Start,
		End:          result.End,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}
	if resource.IsDesk() {
		resp.Slot = ptr.Ptr(domain.MatchDeskSlot(result).Value)
	}

	return resp, nil
}
