package resources

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
	Update(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

// BookingRepository интерфейс репозитория бронирований (каскадное удаление)
type BookingRepository interface {
	RemoveAllForResource(ctx context.Context, resourceID string) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для записи метрик
type MetricsRecorder interface {
	RecordMutation(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
