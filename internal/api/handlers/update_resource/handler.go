package update_resource

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/service/resources"
	"github.com/m04kA/SMC-DeskBooking/internal/service/resources/models"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidInput       = "Invalid resource data."
	msgNotFound           = "Resource not found."
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

// Handle PUT /api/v1/admin/resources/{resourceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	var req models.UpdateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/resources/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), resourceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrResourceNotFound):
			h.logger.Warn("PUT /admin/resources/{id} - Resource not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("PUT /admin/resources/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/resources/{id} - Failed to update resource: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/resources/{id} - Resource updated: resource_id=%s", resourceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
