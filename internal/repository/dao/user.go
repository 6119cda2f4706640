package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserPhoneExists = errors.New("user with this phone number already exists")
	ErrUserCapIDExists = errors.New("user with this capId already exists")
)

// User is a festival participant. UserID is the zone-prefixed display ID
// assigned from the "userId" counter on insert; TotalScore is maintained by
// the result ledger only.
type User struct {
	ID uint `gorm:"primaryKey"`

	UserID      string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"not null"`
	Gender      string    `gorm:"not null"` // "male" or "female"
	PhoneNumber string    `gorm:"unique;not null"`
	Course      string    `gorm:"not null"`
	Semester    int       `gorm:"not null"`
	YearOfStudy int       `gorm:"not null"`
	CapID       string    `gorm:"unique;not null"`
	Image       string
	DOB         time.Time `gorm:"not null"`

	CollegeID uint         `gorm:"index;not null"`
	College   Organization `gorm:"foreignKey:CollegeID"`

	TotalScore int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db       *gorm.DB
	counters *CounterDAO
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db:       db,
		counters: NewCounterDAO(db),
	}
}

// Insert creates the participant and assigns the display ID from the counter
// in the same transaction, so a failed insert never burns a visible ID gap at
// the caller's expense.
func (d *UserDAO) Insert(ctx context.Context, user User, idPrefix string) (User, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := d.counters.Next(ctx, tx, "userId")
		if err != nil {
			return fmt.Errorf("counters.Next -> %w", err)
		}
		user.UserID = fmt.Sprintf("%v%04d", idPrefix, seq)

		return tx.Create(&user).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch {
			case strings.Contains(pgErr.Message, "uni_users_phone_number"):
				return User{}, ErrUserPhoneExists
			case strings.Contains(pgErr.Message, "uni_users_cap_id"):
				return User{}, ErrUserCapIDExists
			}
		}

		return User{}, err
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Preload("College").First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// Find lists participants with the controller-level filters: free-text search
// over name/phone, gender, owning college, pagination.
func (d *UserDAO) Find(ctx context.Context, search, gender string, collegeID uint, page, limit int) ([]User, int64, error) {
	query := d.db.WithContext(ctx).Model(&User{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR phone_number ILIKE ?", pattern, pattern)
	}
	if gender != "" {
		query = query.Where("gender = ?", gender)
	}
	if collegeID != 0 {
		query = query.Where("college_id = ?", collegeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var users []User
	err := query.Preload("College").
		Order("user_id").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (d *UserDAO) FindByCollegeID(ctx context.Context, collegeID uint) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).
		Preload("College").
		Where("college_id = ?", collegeID).
		Order("user_id").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          user.Name,
			"gender":        user.Gender,
			"phone_number":  user.PhoneNumber,
			"course":        user.Course,
			"semester":      user.Semester,
			"year_of_study": user.YearOfStudy,
			"cap_id":        user.CapID,
			"image":         user.Image,
			"dob":           user.DOB,
		})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch {
			case strings.Contains(pgErr.Message, "uni_users_phone_number"):
				return User{}, ErrUserPhoneExists
			case strings.Contains(pgErr.Message, "uni_users_cap_id"):
				return User{}, ErrUserCapIDExists
			}
		}

		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByID(ctx, user.ID)
}

func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
