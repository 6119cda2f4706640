package repository

import (
	"context"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository/dao"
)

var (
	ErrOrganizationEmailExists = dao.ErrOrganizationEmailExists
	ErrOrganizationNotFound    = dao.ErrOrganizationNotFound
)

type OrganizationDAO interface {
	Insert(ctx context.Context, org dao.Organization) (dao.Organization, error)
	FindByID(ctx context.Context, id uint) (dao.Organization, error)
	FindByEmail(ctx context.Context, email string) (dao.Organization, error)
	FindByRole(ctx context.Context, role string) ([]dao.Organization, error)
	Update(ctx context.Context, org dao.Organization) (dao.Organization, error)
	Delete(ctx context.Context, id uint) error
}

type OrganizationRepository struct {
	dao OrganizationDAO
}

func NewOrganizationRepository(dao OrganizationDAO) *OrganizationRepository {
	return &OrganizationRepository{
		dao: dao,
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	created, err := r.dao.Insert(ctx, dao.Organization{
		Name:     org.Name,
		Email:    org.Email,
		Password: org.Password,
		Role:     org.Role,
	})
	if err != nil {
		return domain.Organization{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uint) (domain.Organization, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrganizationRepository) FindByEmail(ctx context.Context, email string) (domain.Organization, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FindColleges lists only college accounts, never the admin.
func (r *OrganizationRepository) FindColleges(ctx context.Context) ([]domain.Organization, error) {
	found, err := r.dao.FindByRole(ctx, domain.RoleOrganization)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByRole -> %w", err)
	}

	orgs := make([]domain.Organization, 0, len(found))
	for _, org := range found {
		orgs = append(orgs, r.daoToDomain(org))
	}

	return orgs, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	updated, err := r.dao.Update(ctx, dao.Organization{
		ID:    org.ID,
		Name:  org.Name,
		Email: org.Email,
	})
	if err != nil {
		return domain.Organization{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *OrganizationRepository) daoToDomain(o dao.Organization) domain.Organization {
	return domain.Organization{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Password:  o.Password,
		Role:      o.Role,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
