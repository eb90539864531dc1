package occupancy

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
