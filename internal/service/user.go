package service

import (
	"context"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository"
)

var (
	ErrUserNotFound    = repository.ErrUserNotFound
	ErrUserPhoneExists = repository.ErrUserPhoneExists
	ErrUserCapIDExists = repository.ErrUserCapIDExists
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User, idPrefix string) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	Find(ctx context.Context, filter domain.UserFilter) (domain.UserPage, error)
	FindByCollegeID(ctx context.Context, collegeID uint) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	repo     UserRepository
	idPrefix string
}

// NewUserService takes the zone's display-ID prefix so every created
// participant is numbered KRT0001, KLM0001 and so on for the running zone.
func NewUserService(repo UserRepository, idPrefix string) *UserService {
	return &UserService{
		repo:     repo,
		idPrefix: idPrefix,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := s.repo.Create(ctx, user, s.idPrefix)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter) (domain.UserPage, error) {
	page, err := s.repo.Find(ctx, filter)
	if err != nil {
		return domain.UserPage{}, fmt.Errorf("s.repo.Find -> %w", err)
	}

	return page, nil
}

func (s *UserService) ListUsersByCollege(ctx context.Context, collegeID uint) ([]domain.User, error) {
	users, err := s.repo.FindByCollegeID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByCollegeID -> %w", err)
	}

	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
