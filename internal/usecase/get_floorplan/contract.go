package get_floorplan

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	List(ctx context.Context) ([]*domain.Resource, error)
}

// OccupancyService интерфейс сервиса занятости ресурсов
type OccupancyService interface {
	BookedPercent(ctx context.Context, resourceID string, date time.Time) (float64, error)
	OccupantAt(ctx context.Context, resourceID string, date, instant time.Time) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
