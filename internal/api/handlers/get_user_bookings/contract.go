package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListUpcoming(ctx context.Context, req *models.ListUpcomingRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
