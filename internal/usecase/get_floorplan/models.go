package get_floorplan

import (
	"time"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Request модель запроса плана этажа
type Request struct {
	Date time.Time        // Дата (без времени, в зоне офиса)
	Time types.TimeString // Момент дня для отображения занятых столов; пусто - текущее время
}

// Response модель ответа с планом этажа
type Response struct {
	Date      time.Time
	Time      types.TimeString
	Width     int
	Height    int
	Resources []ResourceStatus
}

// ResourceStatus ресурс на плане с бейджем занятости
type ResourceStatus struct {
	ID            string
	Name          string
	Kind          string
	X             int
	Y             int
	BookedPercent float64   // Доля рабочего окна 06:00-18:00, 0..100
	BadgeColor    string    // Цвет бейджа по проценту занятости
	BookingsCount int       // Количество бронирований на дату
	Occupant      *Occupant // Кто сидит за столом в указанный момент; для переговорных всегда nil
}

// Occupant пользователь, занимающий стол
type Occupant struct {
	ID        string
	Name      string
	AvatarURL string
}
