package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// ResourceRepository хранилище ресурсов (столов и переговорных) в памяти процесса
// Порядок перечисления совпадает с порядком добавления
type ResourceRepository struct {
	mu        sync.RWMutex
	resources map[string]*domain.Resource
	order     []string
	opts      options
}

// NewResourceRepository создает пустое хранилище ресурсов
func NewResourceRepository(opts ...Option) *ResourceRepository {
	return &ResourceRepository{
		resources: make(map[string]*domain.Resource),
		order:     make([]string, 0),
		opts:      buildOptions(opts),
	}
}

// Create добавляет ресурс; пустой ID заменяется сгенерированным
func (r *ResourceRepository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneResource(resource)
	if stored.ID == "" {
		stored.ID = r.opts.newID()
	}
	if _, exists := r.resources[stored.ID]; exists {
		return nil, fmt.Errorf("%w: Create - id=%s", ErrResourceAlreadyExists, stored.ID)
	}

	r.resources[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return cloneResource(stored), nil
}

// GetByID получает ресурс по ID
func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resource, ok := r.resources[id]
	if !ok {
		return nil, ErrResourceNotFound
	}

	return cloneResource(resource), nil
}

// List возвращает все ресурсы в порядке добавления
func (r *ResourceRepository) List(ctx context.Context) ([]*domain.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Resource, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, cloneResource(r.resources[id]))
	}

	return result, nil
}

// Update заменяет имя, тип и координаты ресурса
func (r *ResourceRepository) Update(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resources[resource.ID]; !ok {
		return nil, ErrResourceNotFound
	}

	stored := cloneResource(resource)
	r.resources[stored.ID] = stored

	return cloneResource(stored), nil
}

// Delete удаляет ресурс
// Бронирования ресурса удаляются отдельно через BookingRepository.RemoveAllForResource
func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resources[id]; !ok {
		return ErrResourceNotFound
	}

	delete(r.resources, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

// Count возвращает количество ресурсов
func (r *ResourceRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

func cloneResource(res *domain.Resource) *domain.Resource {
	c := *res
	return &c
}
