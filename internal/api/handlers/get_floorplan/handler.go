package get_floorplan

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	getFloorplan "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_floorplan"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

const (
	msgInvalidDate  = "Invalid date, expected YYYY-MM-DD."
	msgInvalidTime  = "Invalid time, expected HH:MM."
	msgInvalidInput = "Invalid floorplan request."
)

type Handler struct {
	useCase  GetFloorplanUseCase
	location *time.Location
	now      func() time.Time
	logger   Logger
}

func NewHandler(useCase GetFloorplanUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/floorplan?date=YYYY-MM-DD&time=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &getFloorplan.Request{
		Date: domain.StartOfDay(h.now().In(h.location)),
	}

	if value := query.Get("date"); value != "" {
		date, err := domain.ParseDate(value, h.location)
		if err != nil {
			h.logger.Warn("GET /floorplan - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = date
	}

	if value := query.Get("time"); value != "" {
		t, err := types.NewTimeStringFromString(value)
		if err != nil {
			h.logger.Warn("GET /floorplan - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.Time = t
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getFloorplan.ErrInvalidInput):
			h.logger.Warn("GET /floorplan - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /floorplan - Failed to build floorplan: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /floorplan - Floorplan built: date=%s, resources=%d",
		result.Date.Format(domain.DateFormat), len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
