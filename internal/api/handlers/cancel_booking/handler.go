package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/service/bookings"
)

const (
	msgMissingUserID = "Unknown user."
	msgForbidden     = "You can only cancel your own bookings."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Удаление отсутствующего бронирования тоже отвечает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Cancel(r.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking removed: booking_id=%s, user_id=%s", bookingID, userID)
	handlers.RespondNoContent(w)
}
