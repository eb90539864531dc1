package create_booking

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrResourceConflict возвращается, когда время пересекается с бронированием ресурса
	ErrResourceConflict = errors.New("create_booking: time overlaps with an existing booking on this resource")

	// ErrUserDeskConflict возвращается, когда у пользователя уже есть стол на это время
	ErrUserDeskConflict = errors.New("create_booking: user already holds a desk at this time")

	// ErrInvalidInterval возвращается, когда время окончания не позже времени начала
	ErrInvalidInterval = errors.New("create_booking: end time must be later than start time")

	// ErrInvalidSlot возвращается, когда для стола не указан или не найден пресет слота
	ErrInvalidSlot = errors.New("create_booking: invalid desk slot")

	// ErrTimeRangeRequired возвращается, когда для переговорной не указано время начала и окончания
	ErrTimeRangeRequired = errors.New("create_booking: start and end time are required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
