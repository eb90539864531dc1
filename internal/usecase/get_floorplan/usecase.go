package get_floorplan

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// UseCase use case для построения плана этажа с бейджами занятости
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	occupancy    OccupancyService
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	occupancy OccupancyService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		occupancy:    occupancy,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения плана этажа
// Все чтения выполняются в одной read-only секции, чтобы проценты и занятость были согласованы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFloorplan: validation failed: %v", err)
		return nil, err
	}

	// 2. Момент дня: по умолчанию текущее время в зоне даты
	at := req.Time
	if at.IsZero() {
		at = types.NewTimeString(uc.timeProvider.Now().In(req.Date.Location()))
	}

	instant, err := domain.CombineDateTime(req.Date, at)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetFloorplan: date=%s, time=%s", req.Date.Format(domain.DateFormat), at)

	var (
		resources []*domain.Resource
		bookings  []*domain.Booking
		statuses  []ResourceStatus
	)

	// 3. Все чтения в одной read-only секции, чтобы план был согласован
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if resources, err = uc.resourceRepo.List(txCtx); err != nil {
			uc.logger.Error("GetFloorplan: failed to list resources: %v", err)
			return fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
		}
		if bookings, err = uc.bookingRepo.List(txCtx, domain.BookingsFilter{Date: ptr.Ptr(req.Date)}); err != nil {
			uc.logger.Error("GetFloorplan: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		counts := make(map[string]int, len(resources))
		for _, b := range bookings {
			counts[b.ResourceID]++
		}

		// 4. Бейдж и текущий владелец стола по каждому ресурсу
		statuses = make([]ResourceStatus, 0, len(resources))
		for _, resource := range resources {
			status, err := uc.resourceStatus(txCtx, resource, req.Date, instant)
			if err != nil {
				return err
			}
			status.BookingsCount = counts[resource.ID]
			statuses = append(statuses, status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetFloorplan: built %d resources, %d bookings", len(statuses), len(bookings))

	return &Response{
		Date:      req.Date,
		Time:      at,
		Width:     domain.FloorplanWidth,
		Height:    domain.FloorplanHeight,
		Resources: statuses,
	}, nil
}

func (uc *UseCase) resourceStatus(ctx context.Context, resource *domain.Resource, date, instant time.Time) (ResourceStatus, error) {
	percent, err := uc.occupancy.BookedPercent(ctx, resource.ID, date)
	if err != nil {
		uc.logger.Error("GetFloorplan: failed to compute occupancy of resource id=%s: %v", resource.ID, err)
		return ResourceStatus{}, fmt.Errorf("%w: occupancy of resource %s: %v", ErrInternal, resource.ID, err)
	}

	status := ResourceStatus{
		ID:            resource.ID,
		Name:          resource.Name,
		Kind:          string(resource.Kind),
		X:             resource.X,
		Y:             resource.Y,
		BookedPercent: percent,
		BadgeColor:    domain.BadgeColor(percent),
	}

	user, err := uc.occupancy.OccupantAt(ctx, resource.ID, date, instant)
	if err != nil {
		uc.logger.Error("GetFloorplan: failed to find occupant of resource id=%s: %v", resource.ID, err)
		return ResourceStatus{}, fmt.Errorf("%w: occupant of resource %s: %v", ErrInternal, resource.ID, err)
	}
	if user != nil {
		status.Occupant = &Occupant{ID: user.ID, Name: user.Name, AvatarURL: user.AvatarURL}
	}

	return status, nil
}
