package users

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
