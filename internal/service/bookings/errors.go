package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("bookings: resource not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на бронирование
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
