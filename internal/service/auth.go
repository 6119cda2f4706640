package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository"
)

var (
	ErrOrganizationNotFound    = repository.ErrOrganizationNotFound
	ErrOrganizationEmailExists = repository.ErrOrganizationEmailExists
	ErrWrongPassword           = errors.New("wrong password")
)

type AuthOrganizationRepository interface {
	Create(ctx context.Context, org domain.Organization) (domain.Organization, error)
	FindByEmail(ctx context.Context, email string) (domain.Organization, error)
}

type AuthService struct {
	repo AuthOrganizationRepository
}

func NewAuthService(repo AuthOrganizationRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Organization, error) {
	org, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return domain.Organization{}, ErrOrganizationNotFound
		}

		return domain.Organization{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(org.Password), []byte(password)); err != nil {
		return domain.Organization{}, ErrWrongPassword
	}

	return org, nil
}

// Signup creates a college account. Only the admin reaches this operation;
// the handler enforces the role.
func (s *AuthService) Signup(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(org.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Organization{}, err
	}
	org.Password = string(hash)
	org.Role = domain.RoleOrganization

	created, err := s.repo.Create(ctx, org)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
