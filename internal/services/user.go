package services

import (
	"context"

	"github.com/google/uuid"

	"eventbooking/internal/domain"
)

type userService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) domain.UserService {
	return &userService{users: users}
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Profile(), nil
}
