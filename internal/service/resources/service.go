package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-DeskBooking/internal/service/resources/models"
)

// Метки операций для метрик
const (
	MutationResourceCreate = "resource_create"
	MutationResourceUpdate = "resource_update"
	MutationResourceDelete = "resource_delete"
)

// Service сервис администрирования ресурсов плана этажа
type Service struct {
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	metrics      MetricsRecorder
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// List возвращает все ресурсы в порядке добавления
func (s *Service) List(ctx context.Context) (*models.ResourceListResponse, error) {
	var resources []*domain.Resource
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		resources, err = s.resourceRepo.List(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResourceList(resources), nil
}

// Create добавляет ресурс на план
func (s *Service) Create(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Create: creating resource at x=%d, y=%d", req.X, req.Y)

	// 1. Тип ресурса, по умолчанию стол
	kind := domain.ResourceKindDesk
	if req.Kind != nil {
		parsed, err := domain.ParseResourceKind(*req.Kind)
		if err != nil {
			s.logger.Warn("Create: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		kind = parsed
	}

	if err := validatePosition(req.X, req.Y); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Resource
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Имя по умолчанию считается от текущего числа ресурсов
		name := ""
		if req.Name != nil {
			name = strings.TrimSpace(*req.Name)
		}
		if name == "" {
			existing, err := s.resourceRepo.List(txCtx)
			if err != nil {
				s.logger.Error("Create: repository error: %v", err)
				return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
			}
			name = defaultName(kind, len(existing)+1)
		}
		if err := validateName(name); err != nil {
			s.logger.Warn("Create: validation failed: %v", err)
			return err
		}

		// 3. Сохраняем
		var err error
		created, err = s.resourceRepo.Create(txCtx, &domain.Resource{Name: name, Kind: kind, X: req.X, Y: req.Y})
		if err != nil {
			s.logger.Error("Create: repository error: %v", err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordMutation(MutationResourceCreate)
	s.logger.Info("Create: successfully created resource id=%s name=%q", created.ID, created.Name)
	return models.FromDomainResource(created), nil
}

// Update меняет имя, тип или положение ресурса
// Существующие бронирования при смене типа не перепроверяются
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Update: updating resource id=%s", id)

	var kind *domain.ResourceKind
	if req.Kind != nil {
		parsed, err := domain.ParseResourceKind(*req.Kind)
		if err != nil {
			s.logger.Warn("Update: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		kind = &parsed
	}

	var updated *domain.Resource
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем существующий ресурс
		resource, err := s.resourceRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, memory.ErrResourceNotFound) {
				s.logger.Warn("Update: resource id=%s not found", id)
				return ErrResourceNotFound
			}
			s.logger.Error("Update: repository error for resource id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// 2. Применяем изменения к копии и валидируем
		candidate := *resource
		req.ApplyToResource(&candidate, kind)
		candidate.Name = strings.TrimSpace(candidate.Name)

		if err := validateName(candidate.Name); err != nil {
			s.logger.Warn("Update: validation failed for resource id=%s: %v", id, err)
			return err
		}
		if err := validatePosition(candidate.X, candidate.Y); err != nil {
			s.logger.Warn("Update: validation failed for resource id=%s: %v", id, err)
			return err
		}

		// 3. Сохраняем
		updated, err = s.resourceRepo.Update(txCtx, &candidate)
		if err != nil {
			if errors.Is(err, memory.ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			s.logger.Error("Update: repository error for resource id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordMutation(MutationResourceUpdate)
	s.logger.Info("Update: successfully updated resource id=%s", id)
	return models.FromDomainResource(updated), nil
}

// Delete удаляет ресурс вместе со всеми его бронированиями
// Оба удаления выполняются в одной сериализуемой секции
func (s *Service) Delete(ctx context.Context, id string) (*models.DeleteResourceResponse, error) {
	s.logger.Info("Delete: deleting resource id=%s", id)

	removed := 0
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.resourceRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, memory.ErrResourceNotFound) {
				s.logger.Warn("Delete: resource id=%s not found", id)
				return ErrResourceNotFound
			}
			s.logger.Error("Delete: repository error for resource id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		var err error
		removed, err = s.bookingRepo.RemoveAllForResource(txCtx, id)
		if err != nil {
			s.logger.Error("Delete: failed to remove bookings of resource id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - cascade error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordMutation(MutationResourceDelete)
	s.logger.Info("Delete: successfully deleted resource id=%s with %d bookings", id, removed)
	return &models.DeleteResourceResponse{ID: id, RemovedBookings: removed}, nil
}

// Вспомогательные функции

func defaultName(kind domain.ResourceKind, n int) string {
	if kind == domain.ResourceKindRoom {
		return fmt.Sprintf("New Room %d", n)
	}
	return fmt.Sprintf("New Desk %d", n)
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxResourceNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxResourceNameLength)
	}
	return nil
}

func validatePosition(x, y int) error {
	if !(&domain.Resource{X: x, Y: y}).InFloorplan() {
		return fmt.Errorf("%w: position (%d, %d) is outside the %dx%d floorplan",
			ErrInvalidInput, x, y, domain.FloorplanWidth, domain.FloorplanHeight)
	}
	return nil
}
