package service

import (
	"context"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
)

type OrganizationRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Organization, error)
	FindColleges(ctx context.Context) ([]domain.Organization, error)
	Update(ctx context.Context, org domain.Organization) (domain.Organization, error)
	Delete(ctx context.Context, id uint) error
}

type OrganizationService struct {
	repo OrganizationRepository
}

func NewOrganizationService(repo OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		repo: repo,
	}
}

func (s *OrganizationService) GetOrganization(ctx context.Context, id uint) (domain.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return org, nil
}

// ListColleges lists every college account; the admin account is excluded.
func (s *OrganizationService) ListColleges(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := s.repo.FindColleges(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindColleges -> %w", err)
	}

	return orgs, nil
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	updated, err := s.repo.Update(ctx, org)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *OrganizationService) DeleteOrganization(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
