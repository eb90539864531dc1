package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/service/validator"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.ResourceID == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateTime("startTime", req.StartTime); err != nil {
		return err
	}

	return validateTime("endTime", req.EndTime)
}

func validateTime(field string, t *types.TimeString) error {
	if t == nil || t.IsZero() {
		return nil
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: invalid %s format: %v", ErrInvalidInput, field, err)
	}
	return nil
}

// mapResolveError переводит ошибки построения интервала в ошибки usecase
func mapResolveError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDeskSlotRequired), errors.Is(err, domain.ErrUnknownDeskSlot):
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	case errors.Is(err, domain.ErrTimeRangeRequired):
		return ErrTimeRangeRequired
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}

// mapValidationError переводит отказ валидатора в ошибки usecase
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validator.ErrResourceConflict):
		return ErrResourceConflict
	case errors.Is(err, validator.ErrUserDeskConflict):
		return ErrUserDeskConflict
	case errors.Is(err, validator.ErrInvalidInterval):
		return ErrInvalidInterval
	case errors.Is(err, validator.ErrResourceNotFound):
		return ErrResourceNotFound
	default:
		return fmt.Errorf("%w: validation failed: %v", ErrInternal, err)
	}
}
