package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     string            // ID бронирующего пользователя
	ResourceID string            // ID стола или переговорной
	Date       time.Time         // Дата бронирования (без времени, в зоне офиса)
	Slot       *string           // Пресет слота: обязателен для столов
	StartTime  *types.TimeString // Время начала: обязательно для переговорных
	EndTime    *types.TimeString // Время окончания: обязательно для переговорных
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string
	UserID       string
	ResourceID   string
	ResourceName string
	ResourceKind string
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Start        time.Time
	End          time.Time
	Slot         *string // только для столов

	CreatedAt time.Time
	UpdatedAt time.Time
}
