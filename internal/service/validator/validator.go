package validator

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

// Validator проверяет предлагаемое бронирование против существующих
// Сам ничего не записывает: вызывающий выполняет запись в той же сериализуемой секции
type Validator struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	logger       Logger
}

// NewValidator создает новый экземпляр валидатора
func NewValidator(bookingRepo BookingRepository, resourceRepo ResourceRepository, logger Logger) *Validator {
	return &Validator{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Validate проверяет правила по порядку, первая ошибка выигрывает:
//  1. пересечение с бронированием того же ресурса (ErrResourceConflict)
//  2. для стола: пересечение с любым другим столом пользователя (ErrUserDeskConflict)
//  3. начало строго раньше конца (ErrInvalidInterval)
//
// nil означает, что предложение принято. Отказы логирует вызывающий use case
func (v *Validator) Validate(ctx context.Context, p Proposal) error {
	resource, err := v.resourceRepo.GetByID(ctx, p.ResourceID)
	if err != nil {
		if errors.Is(err, memory.ErrResourceNotFound) {
			return fmt.Errorf("%w: id=%s", ErrResourceNotFound, p.ResourceID)
		}
		v.logger.Error("Validate: failed to get resource id=%s: %v", p.ResourceID, err)
		return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	proposed := domain.Interval{Start: p.Start, End: p.End}

	// 1. Конфликт по ресурсу
	resourceBookings, err := v.bookingRepo.List(ctx, domain.BookingsFilter{ResourceID: ptr.Ptr(p.ResourceID)})
	if err != nil {
		v.logger.Error("Validate: failed to list bookings of resource id=%s: %v", p.ResourceID, err)
		return fmt.Errorf("%w: failed to list resource bookings: %v", ErrInternal, err)
	}

	for _, existing := range resourceBookings {
		if p.excludes(existing.ID) {
			continue
		}
		if proposed.Overlaps(existing.Interval()) {
			return fmt.Errorf("%w: booking id=%s", ErrResourceConflict, existing.ID)
		}
	}

	// 2. Один стол на пользователя в каждый момент времени (переговорные не участвуют)
	if resource.IsDesk() {
		if err := v.checkUserDesk(ctx, p, proposed); err != nil {
			return err
		}
	}

	// 3. Корректность интервала
	if !proposed.IsValid() {
		return ErrInvalidInterval
	}

	return nil
}

// checkUserDesk ищет другое бронирование стола пользователем, пересекающееся с интервалом
func (v *Validator) checkUserDesk(ctx context.Context, p Proposal, proposed domain.Interval) error {
	userBookings, err := v.bookingRepo.List(ctx, domain.BookingsFilter{UserID: ptr.Ptr(p.UserID)})
	if err != nil {
		v.logger.Error("Validate: failed to list bookings of user=%s: %v", p.UserID, err)
		return fmt.Errorf("%w: failed to list user bookings: %v", ErrInternal, err)
	}

	kinds := make(map[string]domain.ResourceKind)

	for _, existing := range userBookings {
		if p.excludes(existing.ID) || !proposed.Overlaps(existing.Interval()) {
			continue
		}

		kind, ok := kinds[existing.ResourceID]
		if !ok {
			target, err := v.resourceRepo.GetByID(ctx, existing.ResourceID)
			if err != nil {
				if errors.Is(err, memory.ErrResourceNotFound) {
					// Бронирование без ресурса не должно существовать (каскадное удаление); пропускаем
					v.logger.Warn("Validate: booking id=%s references missing resource id=%s", existing.ID, existing.ResourceID)
					continue
				}
				return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
			}
			kind = target.Kind
			kinds[existing.ResourceID] = kind
		}

		if kind == domain.ResourceKindDesk {
			return fmt.Errorf("%w: booking id=%s", ErrUserDeskConflict, existing.ID)
		}
	}

	return nil
}
