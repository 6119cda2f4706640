package repository

import (
	"context"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository/dao"
)

var (
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrUserPhoneExists = dao.ErrUserPhoneExists
	ErrUserCapIDExists = dao.ErrUserCapIDExists
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User, idPrefix string) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	Find(ctx context.Context, search, gender string, collegeID uint, page, limit int) ([]dao.User, int64, error)
	FindByCollegeID(ctx context.Context, collegeID uint) ([]dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

// Create inserts the participant; the zone prefix becomes part of the
// assigned display ID.
func (r *UserRepository) Create(ctx context.Context, user domain.User, idPrefix string) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(user), idPrefix)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) Find(ctx context.Context, filter domain.UserFilter) (domain.UserPage, error) {
	found, total, err := r.dao.Find(ctx, filter.Search, filter.Gender, filter.CollegeID, filter.Page, filter.Limit)
	if err != nil {
		return domain.UserPage{}, fmt.Errorf("r.dao.Find -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, user := range found {
		users = append(users, r.daoToDomain(user))
	}

	return domain.UserPage{
		Users:         users,
		TotalElements: total,
		Page:          filter.Page,
		Limit:         filter.Limit,
	}, nil
}

func (r *UserRepository) FindByCollegeID(ctx context.Context, collegeID uint) ([]domain.User, error) {
	found, err := r.dao.FindByCollegeID(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCollegeID -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, user := range found {
		users = append(users, r.daoToDomain(user))
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) domainToDAO(u domain.User) dao.User {
	return dao.User{
		ID:          u.ID,
		Name:        u.Name,
		Gender:      u.Gender,
		PhoneNumber: u.PhoneNumber,
		Course:      u.Course,
		Semester:    u.Semester,
		YearOfStudy: u.YearOfStudy,
		CapID:       u.CapID,
		Image:       u.Image,
		DOB:         u.DOB,
		CollegeID:   u.CollegeID,
	}
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		UserID:      u.UserID,
		Name:        u.Name,
		Gender:      u.Gender,
		PhoneNumber: u.PhoneNumber,
		Course:      u.Course,
		Semester:    u.Semester,
		YearOfStudy: u.YearOfStudy,
		CapID:       u.CapID,
		Image:       u.Image,
		DOB:         u.DOB,
		CollegeID:   u.CollegeID,
		CollegeName: u.College.Name,
		TotalScore:  u.TotalScore,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
