package memory

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("memory.storage: booking not found")

	// ErrBookingAlreadyExists возвращается при вставке бронирования с занятым ID
	ErrBookingAlreadyExists = errors.New("memory.storage: booking already exists")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("memory.storage: resource not found")

	// ErrResourceAlreadyExists возвращается при создании ресурса с занятым ID
	ErrResourceAlreadyExists = errors.New("memory.storage: resource already exists")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("memory.storage: user not found")

	// ErrUserAlreadyExists возвращается при добавлении пользователя с занятым ID
	ErrUserAlreadyExists = errors.New("memory.storage: user already exists")

	// ErrInvalidInput возвращается при некорректных данных записи
	ErrInvalidInput = errors.New("memory.storage: invalid input data")
)
