package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrResourceNotFound возвращается, когда ресурс бронирования удалён
	ErrResourceNotFound = errors.New("update_booking: resource not found")

	// ErrResourceConflict возвращается, когда новое время пересекается с другим бронированием ресурса
	ErrResourceConflict = errors.New("update_booking: time overlaps with an existing booking on this resource")

	// ErrUserDeskConflict возвращается, когда у пользователя уже есть другой стол на это время
	ErrUserDeskConflict = errors.New("update_booking: user already holds a desk at this time")

	// ErrInvalidInterval возвращается, когда время окончания не позже времени начала
	ErrInvalidInterval = errors.New("update_booking: end time must be later than start time")

	// ErrInvalidSlot возвращается, когда для стола не указан или не найден пресет слота
	ErrInvalidSlot = errors.New("update_booking: invalid desk slot")

	// ErrTimeRangeRequired возвращается, когда для переговорной не указано время начала и окончания
	ErrTimeRangeRequired = errors.New("update_booking: start and end time are required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
