package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrRegistrationNotFound = errors.New("event registration not found")

// EventRegistration is one entry into an event, owned by the college that
// created it. Score is written only by the result ledger.
type EventRegistration struct {
	ID uint `gorm:"primaryKey"`

	EventID   uint   `gorm:"index;not null"`
	Event     Event  `gorm:"foreignKey:EventID"`
	GroupName string

	CollegeID uint         `gorm:"index;not null"`
	College   Organization `gorm:"foreignKey:CollegeID"`

	Participants []RegistrationParticipant `gorm:"foreignKey:EventRegistrationID;constraint:OnDelete:CASCADE"`

	Score int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type RegistrationParticipant struct {
	ID                  uint `gorm:"primaryKey"`
	EventRegistrationID uint `gorm:"index;not null"`
	UserID              uint `gorm:"index;not null"`
	User                User `gorm:"foreignKey:UserID"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) Insert(ctx context.Context, registration EventRegistration) (EventRegistration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		return EventRegistration{}, result.Error
	}

	return d.FindByID(ctx, registration.ID)
}

func (d *RegistrationDAO) FindByID(ctx context.Context, id uint) (EventRegistration, error) {
	var registration EventRegistration

	result := d.db.WithContext(ctx).
		Preload("Event.EventType").
		Preload("College").
		Preload("Participants.User").
		First(&registration, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventRegistration{}, ErrRegistrationNotFound
		}

		return EventRegistration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) FindAll(ctx context.Context, collegeID uint) ([]EventRegistration, error) {
	query := d.db.WithContext(ctx).
		Preload("Event.EventType").
		Preload("College").
		Preload("Participants.User")

	if collegeID != 0 {
		query = query.Where("college_id = ?", collegeID)
	}

	var registrations []EventRegistration
	result := query.Order("id").Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}

func (d *RegistrationDAO) FindByEventID(ctx context.Context, eventID uint) ([]EventRegistration, error) {
	var registrations []EventRegistration

	result := d.db.WithContext(ctx).
		Preload("Event.EventType").
		Preload("College").
		Preload("Participants.User").
		Where("event_id = ?", eventID).
		Order("id").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}

func (d *RegistrationDAO) FindByParticipantUserID(ctx context.Context, userID uint) ([]EventRegistration, error) {
	var registrations []EventRegistration

	result := d.db.WithContext(ctx).
		Preload("Event.EventType").
		Preload("College").
		Preload("Participants.User").
		Joins("JOIN registration_participants rp ON rp.event_registration_id = event_registrations.id").
		Where("rp.user_id = ?", userID).
		Order("event_registrations.id").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}

// Update replaces group name and the participant set. The score field is
// deliberately untouched: it belongs to the result ledger.
func (d *RegistrationDAO) Update(ctx context.Context, registration EventRegistration) (EventRegistration, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&EventRegistration{}).
			Where("id = ?", registration.ID).
			Updates(map[string]any{
				"group_name": registration.GroupName,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRegistrationNotFound
		}

		if err := tx.Where("event_registration_id = ?", registration.ID).
			Delete(&RegistrationParticipant{}).Error; err != nil {
			return err
		}

		for i := range registration.Participants {
			registration.Participants[i].ID = 0
			registration.Participants[i].EventRegistrationID = registration.ID
		}
		if len(registration.Participants) == 0 {
			return nil
		}

		return tx.Create(&registration.Participants).Error
	})
	if err != nil {
		return EventRegistration{}, err
	}

	return d.FindByID(ctx, registration.ID)
}

func (d *RegistrationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&EventRegistration{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}
