package get_resource_bookings

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListResourceDay(ctx context.Context, req *models.ListResourceDayRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
