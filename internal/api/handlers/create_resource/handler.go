package create_resource

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/service/resources"
	"github.com/m04kA/SMC-DeskBooking/internal/service/resources/models"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidInput       = "Invalid resource data."
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

// Handle POST /api/v1/admin/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("POST /admin/resources - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/resources - Failed to create resource: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/resources - Resource created: resource_id=%s, kind=%s", result.ID, result.Kind)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
