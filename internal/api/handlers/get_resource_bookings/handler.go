package get_resource_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/service/bookings"
	"github.com/m04kA/SMC-DeskBooking/internal/service/bookings/models"
)

const (
	msgInvalidDate      = "Invalid date, expected YYYY-MM-DD."
	msgResourceNotFound = "Resource not found."
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

// Handle GET /api/v1/resources/{resourceId}/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	// Без даты показываем сегодняшний день
	date := domain.StartOfDay(h.now().In(h.location))
	if value := r.URL.Query().Get("date"); value != "" {
		parsed, err := domain.ParseDate(value, h.location)
		if err != nil {
			h.logger.Warn("GET /resources/{id}/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.service.ListResourceDay(r.Context(), &models.ListResourceDayRequest{
		ResourceID: resourceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/bookings - Resource not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("GET /resources/{id}/bookings - Failed to get bookings: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/bookings - Bookings retrieved successfully: resource_id=%s, count=%d",
		resourceID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
