package get_user_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/service/bookings/models"
)

const (
	msgMissingUserID = "Unknown user."
)

type Handler struct {
	service  BookingService
	location *time.Location
	now      func() time.Time
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/users/me/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// "Предстоящие" считаются от начала текущего дня в зоне офиса
	serviceReq := &models.ListUpcomingRequest{
		UserID: userID,
		Now:    h.now().In(h.location),
	}

	result, err := h.service.ListUpcoming(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /users/me/bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/bookings - Bookings retrieved successfully: user_id=%s, count=%d",
		userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
