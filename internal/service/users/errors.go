package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователя нет в справочнике
	ErrUserNotFound = errors.New("users: user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
