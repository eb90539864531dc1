package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Invalid date, expected YYYY-MM-DD."
	msgInvalidTime        = "Invalid time, expected HH:MM."
	msgMissingUserID      = "Unknown user."
	msgResourceNotFound   = "Resource not found."
	msgResourceConflict   = "Time overlaps with an existing booking on this resource."
	msgUserDeskConflict   = "You can only have one desk booking at a time."
	msgInvalidInterval    = "End time must be later than start time."
	msgInvalidSlot        = "Choose a valid desk slot."
	msgTimeRangeRequired  = "Start and end time are required for rooms."
	msgInvalidInput       = "Invalid booking data."
	msgCreated            = "Booking created."
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID, h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
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
		case errors.Is(err, createBooking.ErrResourceConflict):
			h.logger.Warn("POST /bookings - Resource conflict: user_id=%s, resource_id=%s", userID, req.ResourceID)
			handlers.RespondConflict(w, msgResourceConflict)

		case errors.Is(err, createBooking.ErrUserDeskConflict):
			h.logger.Warn("POST /bookings - User desk conflict: user_id=%s, resource_id=%s", userID, req.ResourceID)
			handlers.RespondConflict(w, msgUserDeskConflict)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: resource_id=%s", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrTimeRangeRequired):
			handlers.RespondBadRequest(w, msgTimeRangeRequired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, resource_id=%s, error=%v",
				userID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, resource_id=%s",
		result.ID, userID, result.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, CreateBookingResponse{
		Message: msgCreated,
		Booking: FromUseCaseResponse(result),
	})
}
