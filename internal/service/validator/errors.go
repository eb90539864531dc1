package validator

import (
	"errors"
)

var (
	// ErrResourceConflict возвращается, когда интервал пересекается с бронированием того же ресурса
	ErrResourceConflict = errors.New("validator: time overlaps with an existing booking on this resource")

	// ErrUserDeskConflict возвращается, когда у пользователя уже есть стол на пересекающееся время
	ErrUserDeskConflict = errors.New("validator: user already holds a desk at this time")

	// ErrInvalidInterval возвращается, когда начало не строго раньше конца
	ErrInvalidInterval = errors.New("validator: end time must be later than start time")

	// ErrResourceNotFound возвращается, когда ресурс бронирования не существует
	ErrResourceNotFound = errors.New("validator: resource not found")

	// ErrInternal возвращается при внутренних ошибках валидатора
	ErrInternal = errors.New("validator: internal error")
)

// Outcome значения для метрик результата проверки
const (
	OutcomeOK               = "ok"
	OutcomeResourceConflict = "resource_conflict"
	OutcomeUserDeskConflict = "user_desk_conflict"
	OutcomeInvalidInterval  = "invalid_interval"
	OutcomeNotFound         = "not_found"
	OutcomeInternal         = "internal"
)

// Outcome возвращает метку результата проверки для ошибки Validate
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrResourceConflict):
		return OutcomeResourceConflict
	case errors.Is(err, ErrUserDeskConflict):
		return OutcomeUserDeskConflict
	case errors.Is(err, ErrInvalidInterval):
		return OutcomeInvalidInterval
	case errors.Is(err, ErrResourceNotFound):
		return OutcomeNotFound
	default:
		return OutcomeInternal
	}
}
