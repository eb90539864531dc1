package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
)

// UserRepository справочник пользователей; заполняется при старте и дальше не меняется
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
}

// NewUserRepository создает пустой справочник пользователей
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*domain.User),
		order: make([]string, 0),
	}
}

// Add добавляет пользователя в справочник
func (r *UserRepository) Add(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		return fmt.Errorf("%w: Add - user id is required", ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return fmt.Errorf("%w: Add - id=%s", ErrUserAlreadyExists, user.ID)
	}

	c := *user
	r.users[c.ID] = &c
	r.order = append(r.order, c.ID)

	return nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	c := *user
	return &c, nil
}

// List возвращает всех пользователей в порядке добавления
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		c := *r.users[id]
		result = append(result, &c)
	}

	return result, nil
}
