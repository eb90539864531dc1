package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/service/bookings"
)

const (
	msgInvalidBookingID = "Invalid booking ID."
	msgNotFound         = "Booking not found."
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
