package occupancy

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("occupancy: resource not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("occupancy: internal error")
)
