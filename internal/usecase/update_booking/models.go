package update_booking

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Request модель запроса на изменение времени бронирования
// Ресурс и владелец бронирования не меняются
type Request struct {
	UserID    string            // ID пользователя, выполняющего изменение
	BookingID string            // ID изменяемого бронирования
	Date      *time.Time        // Новая дата; по умолчанию дата бронирования
	Slot      *string           // Пресет слота для стола
	StartTime *types.TimeString // Время начала для переговорной
	EndTime   *types.TimeString // Время окончания для переговорной
}

// Response модель ответа с изменённым бронированием
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
	Slot         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
