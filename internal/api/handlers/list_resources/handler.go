package list_resources

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
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

// Handle GET /api/v1/admin/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/resources - Failed to list resources: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/resources - Resources retrieved successfully: count=%d", len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, result)
}
