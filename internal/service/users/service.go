package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBooking/internal/infra/storage/memory"
)

// Service сервис справочника пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List возвращает всех пользователей
func (s *Service) List(ctx context.Context) (*UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, fromDomainUser(u))
	}
	return resp, nil
}

// GetByID возвращает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memory.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUser: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := fromDomainUser(user)
	return &resp, nil
}

// Exists проверяет, что пользователь есть в справочнике
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
