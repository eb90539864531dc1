package bookings

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Remove(ctx context.Context, bookingID string) error
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
}

// UserRepository интерфейс справочника пользователей
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для записи метрик бронирования
type MetricsRecorder interface {
	RecordMutation(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
