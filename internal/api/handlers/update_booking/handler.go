package update_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	updateBooking "github.com/m04kA/SMC-DeskBooking/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Invalid date, expected YYYY-MM-DD."
	msgInvalidTime        = "Invalid time, expected HH:MM."
	msgMissingUserID      = "Unknown user."
	msgNotFound           = "Booking not found."
	msgForbidden          = "You can only change your own bookings."
	msgResourceNotFound   = "Resource not found."
	msgResourceConflict   = "Time overlaps with an existing booking on this resource."
	msgUserDeskConflict   = "You can only have one desk booking at a time."
	msgInvalidInterval    = "End time must be later than start time."
	msgInvalidSlot        = "Choose a valid desk slot."
	msgTimeRangeRequired  = "Start and end time are required for rooms."
	msgInvalidInput       = "Invalid booking data."
	msgUpdated            = "Booking updated."
)

type Handler struct {
	useCase  UpdateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UpdateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, bookingID, h.location)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		if errors.Is(err, domain.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrResourceConflict):
			handlers.RespondConflict(w, msgResourceConflict)

		case errors.Is(err, updateBooking.ErrUserDeskConflict):
			handlers.RespondConflict(w, msgUserDeskConflict)

		case errors.Is(err, updateBooking.ErrInvalidInterval):
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, updateBooking.ErrResourceNotFound):
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, updateBooking.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, updateBooking.ErrTimeRangeRequired):
			handlers.RespondBadRequest(w, msgTimeRangeRequired)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%s, user_id=%s", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, UpdateBookingResponse{
		Message: msgUpdated,
		Booking: FromUseCaseResponse(result),
	})
}
