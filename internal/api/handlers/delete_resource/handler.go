package delete_resource

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/service/resources"
)

const (
	msgNotFound = "Resource not found."
)

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/resources/{resourceId}
// Вместе с ресурсом удаляются все его бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	result, err := h.service.Delete(r.Context(), resourceID)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrResourceNotFound):
			h.logger.Warn("DELETE /admin/resources/{id} - Resource not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/resources/{id} - Failed to delete resource: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/resources/{id} - Resource deleted: resource_id=%s, removed_bookings=%d",
		resourceID, result.RemovedBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
