package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/service/validator"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, resourceID, userID string, start, end time.Time) (*domain.Booking, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
}

// BookingValidator интерфейс проверки предлагаемого бронирования
type BookingValidator interface {
	Validate(ctx context.Context, p validator.Proposal) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для записи метрик бронирования
type MetricsRecorder interface {
	RecordValidation(outcome string)
	RecordMutation(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
