package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	cancelBookingHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/create_booking"
	createResourceHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/create_resource"
	deleteResourceHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/delete_resource"
	getBookingHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_booking"
	getFloorplanHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_floorplan"
	getResourceBookingsHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_resource_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/get_user_bookings"
	listDeskSlotsHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/list_desk_slots"
	listResourcesHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/list_resources"
	listUsersHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/list_users"
	updateBookingHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/update_booking"
	updateResourceHandler "github.com/m04kA/SMC-DeskBooking/internal/api/handlers/update_resource"
	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/config"
	"github.com/m04kA/SMC-DeskBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBooking/internal/seed"
	bookingsService "github.com/m04kA/SMC-DeskBooking/internal/service/bookings"
	occupancyService "github.com/m04kA/SMC-DeskBooking/internal/service/occupancy"
	resourcesService "github.com/m04kA/SMC-DeskBooking/internal/service/resources"
	usersService "github.com/m04kA/SMC-DeskBooking/internal/service/users"
	"github.com/m04kA/SMC-DeskBooking/internal/service/validator"
	createBookingUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_booking"
	getFloorplanUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_floorplan"
	updateBookingUC "github.com/m04kA/SMC-DeskBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-DeskBooking/pkg/metrics"
	"github.com/m04kA/SMC-DeskBooking/pkg/txmanager"
)

// ErrSeed возвращается, когда начальные данные не удалось загрузить
var ErrSeed = errors.New("app: failed to load seed data")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// App собранное приложение: хранилища и HTTP обработчик
type App struct {
	Users     *memory.UserRepository
	Resources *memory.ResourceRepository
	Bookings  *memory.BookingRepository
	Handler   http.Handler
}

// New собирает хранилища, сервисы, use cases и роутер.
// Начальные данные размещаются относительно today; metricsCollector может быть nil.
func New(ctx context.Context, cfg *config.Config, fixtures *seed.Fixtures, today time.Time, metricsCollector *metrics.Metrics, log Logger) (*App, error) {
	loc := cfg.Location()

	// Инициализируем хранилища
	userRepository := memory.NewUserRepository()
	resourceRepository := memory.NewResourceRepository()
	bookingRepository := memory.NewBookingRepository()

	if fixtures != nil {
		if err := fixtures.Apply(ctx, today.In(loc), userRepository, resourceRepository, bookingRepository); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSeed, err)
		}
		log.Info("Seed data loaded: users=%d, resources=%d, bookings=%d",
			len(fixtures.Users), len(fixtures.Resources), len(fixtures.Bookings))
	}

	txMgr := txmanager.NewTransactionManager()

	// Инициализируем сервисы
	bookingValidator := validator.NewValidator(bookingRepository, resourceRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		resourceRepository,
		userRepository,
		txMgr,
		metricsCollector,
		log,
	)
	resourceSvc := resourcesService.NewService(
		resourceRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)
	userSvc := usersService.NewService(userRepository, log)
	occupancySvc := occupancyService.NewService(bookingRepository, resourceRepository, userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		bookingValidator,
		txMgr,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		bookingValidator,
		txMgr,
		metricsCollector,
		log,
	)
	getFloorplanUseCase := getFloorplanUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		occupancySvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	h := routeHandlers{
		listUsers:           listUsersHandler.NewHandler(userSvc, log),
		listDeskSlots:       listDeskSlotsHandler.NewHandler(),
		getFloorplan:        getFloorplanHandler.NewHandler(getFloorplanUseCase, loc, log),
		getResourceBookings: getResourceBookingsHandler.NewHandler(bookingSvc, loc, log),
		createBooking:       createBookingHandler.NewHandler(createBookingUseCase, loc, log),
		getBooking:          getBookingHandler.NewHandler(bookingSvc, log),
		updateBooking:       updateBookingHandler.NewHandler(updateBookingUseCase, loc, log),
		cancelBooking:       cancelBookingHandler.NewHandler(bookingSvc, log),
		getUserBookings:     getUserBookingsHandler.NewHandler(bookingSvc, loc, log),
		listResources:       listResourcesHandler.NewHandler(resourceSvc, log),
		createResource:      createResourceHandler.NewHandler(resourceSvc, log),
		updateResource:      updateResourceHandler.NewHandler(resourceSvc, log),
		deleteResource:      deleteResourceHandler.NewHandler(resourceSvc, log),
	}

	r := newRouter(h, middleware.Auth(userSvc, cfg.App.CurrentUserID, log), cfg, metricsCollector, log)

	return &App{
		Users:     userRepository,
		Resources: resourceRepository,
		Bookings:  bookingRepository,
		Handler:   withCORS(r, cfg.CORS.AllowedOrigins),
	}, nil
}

func withCORS(r *mux.Router, origins []string) http.Handler {
	if len(origins) == 0 {
		return r
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", middleware.HeaderUserID},
		AllowCredentials: true,
	}).Handler(r)
}
