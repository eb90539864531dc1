package list_desk_slots

import (
	"net/http"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/v1/desk-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, fromDomainSlots(domain.DeskSlots))
}
