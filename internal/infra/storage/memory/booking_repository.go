package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// BookingRepository хранилище бронирований в памяти процесса
// Хранилище не проверяет конфликты: это ответственность валидатора.
// Атомарность "проверить, затем записать" обеспечивает txmanager.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	opts     options
}

// NewBookingRepository создает пустое хранилище бронирований
func NewBookingRepository(opts ...Option) *BookingRepository {
	return &BookingRepository{
		bookings: make(map[string]*domain.Booking),
		opts:     buildOptions(opts),
	}
}

// Create создает бронирование с новым уникальным ID
func (r *BookingRepository) Create(ctx context.Context, resourceID, userID string, start, end time.Time) (*domain.Booking, error) {
	if resourceID == "" || userID == "" {
		return nil, fmt.Errorf("%w: Create - resourceID and userID are required", ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.opts.newID()
	if _, exists := r.bookings[id]; exists {
		return nil, fmt.Errorf("%w: Create - id=%s", ErrBookingAlreadyExists, id)
	}

	now := r.opts.now()
	booking := &domain.Booking{
		ID:         id,
		UserID:     userID,
		ResourceID: resourceID,
		Start:      start,
		End:        end,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.bookings[id] = booking

	return cloneBooking(booking), nil
}

// Insert добавляет бронирование с заранее известным ID (загрузка seed-данных)
func (r *BookingRepository) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.ID == "" || booking.ResourceID == "" || booking.UserID == "" {
		return nil, fmt.Errorf("%w: Insert - id, resourceID and userID are required", ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return nil, fmt.Errorf("%w: Insert - id=%s", ErrBookingAlreadyExists, booking.ID)
	}

	stored := cloneBooking(booking)
	now := r.opts.now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = now
	}
	r.bookings[stored.ID] = stored

	return cloneBooking(stored), nil
}

// Update заменяет интервал бронирования; ID, пользователь и ресурс не меняются
func (r *BookingRepository) Update(ctx context.Context, bookingID string, start, end time.Time) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[bookingID]
	if !ok {
		return nil, ErrBookingNotFound
	}

	booking.Start = start
	booking.End = end
	booking.UpdatedAt = r.opts.now()

	return cloneBooking(booking), nil
}

// Remove удаляет бронирование; повторное удаление не является ошибкой
func (r *BookingRepository) Remove(ctx context.Context, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bookings, bookingID)
	return nil
}

// RemoveAllForResource каскадно удаляет все бронирования ресурса
// Возвращает количество удалённых бронирований
func (r *BookingRepository) RemoveAllForResource(ctx context.Context, resourceID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, booking := range r.bookings {
		if booking.ResourceID == resourceID {
			delete(r.bookings, id)
			removed++
		}
	}

	return removed, nil
}

// GetByID получает бронирование по ID
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	return cloneBooking(booking), nil
}

// List получает бронирования по фильтру, отсортированные по времени начала
func (r *BookingRepository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, booking := range r.bookings {
		if filter.Matches(booking) {
			result = append(result, cloneBooking(booking))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Start.Equal(result[j].Start) {
			return result[i].ID < result[j].ID
		}
		return result[i].Start.Before(result[j].Start)
	})

	return result, nil
}

// Count возвращает общее количество бронирований
func (r *BookingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookings)
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	return &c
}
