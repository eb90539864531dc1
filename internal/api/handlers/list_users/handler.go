package list_users

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
