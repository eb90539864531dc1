package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/config"
	"github.com/m04kA/SMC-DeskBooking/pkg/metrics"
)

type routeHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

type routeHandlers struct {
	listUsers           routeHandler
	listDeskSlots       routeHandler
	getFloorplan        routeHandler
	getResourceBookings routeHandler
	createBooking       routeHandler
	getBooking          routeHandler
	updateBooking       routeHandler
	cancelBooking       routeHandler
	getUserBookings     routeHandler
	listResources       routeHandler
	createResource      routeHandler
	updateResource      routeHandler
	deleteResource      routeHandler
}

func newRouter(h routeHandlers, auth mux.MiddlewareFunc, cfg *config.Config, metricsCollector *metrics.Metrics, log Logger) *mux.Router {
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (справочники)
	// ============================================================

	api.HandleFunc("/users", h.listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/desk-slots", h.listDeskSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// ROUTES WITH ACTING USER (X-User-ID или пользователь по умолчанию)
	// ============================================================

	acting := api.PathPrefix("").Subrouter()
	acting.Use(auth)

	// --- План этажа ---
	acting.HandleFunc("/floorplan", h.getFloorplan.Handle).Methods(http.MethodGet)
	acting.HandleFunc("/resources/{resourceId}/bookings", h.getResourceBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	acting.HandleFunc("/bookings", h.createBooking.Handle).Methods(http.MethodPost)
	acting.HandleFunc("/bookings/{bookingId}", h.getBooking.Handle).Methods(http.MethodGet)
	acting.HandleFunc("/bookings/{bookingId}", h.updateBooking.Handle).Methods(http.MethodPut)
	acting.HandleFunc("/bookings/{bookingId}", h.cancelBooking.Handle).Methods(http.MethodDelete)
	acting.HandleFunc("/users/me/bookings", h.getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование плана ---
	acting.HandleFunc("/admin/resources", h.listResources.Handle).Methods(http.MethodGet)
	acting.HandleFunc("/admin/resources", h.createResource.Handle).Methods(http.MethodPost)
	acting.HandleFunc("/admin/resources/{resourceId}", h.updateResource.Handle).Methods(http.MethodPut)
	acting.HandleFunc("/admin/resources/{resourceId}", h.deleteResource.Handle).Methods(http.MethodDelete)

	return r
}
