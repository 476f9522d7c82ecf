package userservice

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tapearn/internal/domain"
)

var (
	ErrInvalidUserID = errors.New("user id must be positive")
	ErrUserExists    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrPersistence   = errors.New("user store failure")
)

type UserRepo interface {
	Create(ctx context.Context, userID int64) (*domain.User, error)
	Get(ctx context.Context, userID int64) (*domain.User, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// Create registers a user with an empty balance.
func (s *Service) Create(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	user, err := s.userRepo.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if user == nil {
		return nil, ErrUserExists
	}
	zap.L().Info("user created", zap.Int64("userID", userID))
	return user, nil
}

func (s *Service) Get(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
