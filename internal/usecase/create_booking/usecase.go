package create_booking

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

// MutationCreate метка операции для метрик
const MutationCreate = "create"

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка и запись выполняются в одной сериализуемой секции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, resource=%s, date=%s, slot=%s, time=%s-%s",
		req.UserID, req.ResourceID, req.Date.Format(domain.DateFormat),
		ptr.Value(req.Slot, "-"), ptr.Value(req.StartTime, "-"), ptr.Value(req.EndTime, "-"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		result   *domain.Booking
		resource *domain.Resource
	)

	// 2. Проверка и создание в сериализуемой секции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем ресурс
		var err error
		resource, err = uc.resourceRepo.GetByID(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, memory.ErrResourceNotFound) {
				uc.logger.Warn("CreateBooking: resource id=%s not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get resource id=%s: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		// 2.2. Строим интервал: стол по пресету, переговорная по времени
		interval, err := domain.ResolveInterval(resource, req.Date, req.Slot, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Warn("CreateBooking: cannot resolve interval for resource id=%s: %v", req.ResourceID, err)
			return mapResolveError(err)
		}

		// 2.3. Проверяем конфликты
		err = uc.validator.Validate(txCtx, validator.Proposal{
			ResourceID: resource.ID,
			UserID:     req.UserID,
			Start:      interval.Start,
			End:        interval.End,
		})
		uc.metrics.RecordValidation(validator.Outcome(err))
		if err != nil {
			uc.logger.Warn("CreateBooking: proposal rejected for resource id=%s, user=%s: %v", resource.ID, req.UserID, err)
			return mapValidationError(err)
		}

		// 2.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, resource.ID, req.UserID, interval.Start, interval.End)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordMutation(MutationCreate)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return toResponse(result, resource), nil
}

func toResponse(b *domain.Booking, resource *domain.Resource) *Response {
	resp := &Response{
		ID:           b.ID,
		UserID:       b.UserID,
		ResourceID:   b.ResourceID,
		ResourceName: resource.Name,
		ResourceKind: string(resource.Kind),
		Date:         domain.StartOfDay(b.Start),
		StartTime:    types.NewTimeString(b.Start),
		EndTime:      types.NewTimeString(b.End),
		Start:        b.Start,
		End:          b.End,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	if resource.IsDesk() {
		resp.Slot = ptr.Ptr(domain.MatchDeskSlot(b).Value)
	}

	return resp
}
