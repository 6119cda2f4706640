package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrResultNotFound  = errors.New("result not found")
	ErrResultExists    = errors.New("result already exists for this event")
	ErrInvalidPosition = errors.New("invalid position provided")
)

// Result records the outcome of exactly one event. The unique index on
// EventID closes the check-then-act race: a concurrent duplicate insert fails
// at commit instead of silently doubling scores.
type Result struct {
	ID uint `gorm:"primaryKey"`

	EventID uint  `gorm:"uniqueIndex;not null"`
	Event   Event `gorm:"foreignKey:EventID"`

	WinningRegistrations []WinningRegistration `gorm:"foreignKey:ResultID;constraint:OnDelete:CASCADE"`

	CreatedByID uint `gorm:"not null"`
	UpdatedByID uint `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// WinningRegistration pairs a registration with its achieved position.
// Ordinal preserves the caller-supplied order verbatim.
type WinningRegistration struct {
	ID       uint `gorm:"primaryKey"`
	ResultID uint `gorm:"index;not null"`

	EventRegistrationID uint              `gorm:"index;not null"`
	EventRegistration   EventRegistration `gorm:"foreignKey:EventRegistrationID"`

	Position string `gorm:"not null"`
	Ordinal  int    `gorm:"not null"`
}

type ResultDAO struct {
	db       *gorm.DB
	counters *CounterDAO
}

func NewResultDAO(db *gorm.DB) *ResultDAO {
	return &ResultDAO{
		db:       db,
		counters: NewCounterDAO(db),
	}
}

// bumpMutationCounter advances the "result" counter inside the mutation's own
// transaction. Leaderboard snapshots record the counter value they were built
// from, so a snapshot older than the counter is known stale.
func (d *ResultDAO) bumpMutationCounter(ctx context.Context, tx *gorm.DB) error {
	_, err := d.counters.Next(ctx, tx, "result")

	return err
}

// positionPoints is the ledger's score lookup. A position is valid iff a rule
// row exists for it; a configured zero-point position is valid.
func positionPoints(eventType EventType, position string) (int, bool) {
	for _, rule := range eventType.Scores {
		if rule.Position == position {
			return rule.Points, true
		}
	}

	return 0, false
}

// applyScore applies one winning registration's score delta in the given
// direction (+1 apply, -1 revert) against the enclosing transaction. The
// registration's own score always moves; participants' running totals move
// only for individual event types, since a group win is never credited to any
// single participant.
func (d *ResultDAO) applyScore(tx *gorm.DB, registrationID uint, position string, eventType EventType, sign int) error {
	var registration EventRegistration
	if err := tx.Preload("Participants").First(&registration, registrationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: ID %v", ErrRegistrationNotFound, registrationID)
		}

		return err
	}

	points, ok := positionPoints(eventType, position)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, position)
	}

	delta := sign * points

	err := tx.Model(&EventRegistration{}).
		Where("id = ?", registration.ID).
		UpdateColumn("score", gorm.Expr("score + ?", delta)).Error
	if err != nil {
		return err
	}

	if eventType.IsGroup {
		return nil
	}

	for _, participant := range registration.Participants {
		result := tx.Model(&User{}).
			Where("id = ?", participant.UserID).
			UpdateColumn("total_score", gorm.Expr("total_score + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: ID %v", ErrUserNotFound, participant.UserID)
		}
	}

	return nil
}

// Create records the result for an event inside one transaction: every
// registration and participant score mutation commits together with the new
// result row, or none of them do.
func (d *ResultDAO) Create(ctx context.Context, eventID uint, winners []WinningRegistration, actingOrgID uint) (Result, error) {
	var created Result

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: ID %v", ErrEventNotFound, eventID)
			}

			return err
		}

		var existing int64
		if err := tx.Model(&Result{}).Where("event_id = ?", eventID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrResultExists
		}

		var eventType EventType
		if err := tx.Preload("Scores").First(&eventType, event.EventTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: ID %v", ErrEventTypeNotFound, event.EventTypeID)
			}

			return err
		}

		for i := range winners {
			if err := d.applyScore(tx, winners[i].EventRegistrationID, winners[i].Position, eventType, +1); err != nil {
				return err
			}
			winners[i].ID = 0
			winners[i].Ordinal = i
		}

		created = Result{
			EventID:              eventID,
			WinningRegistrations: winners,
			CreatedByID:          actingOrgID,
			UpdatedByID:          actingOrgID,
		}

		if err := tx.Create(&created).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return ErrResultExists
			}

			return err
		}

		return d.bumpMutationCounter(ctx, tx)
	})
	if err != nil {
		return Result{}, err
	}

	return d.FindByID(ctx, created.ID)
}

// Update is revert-old-apply-new in a single transaction: the old winner
// list's scores are undone, the new list's applied, and the stored winner
// rows replaced, atomically.
func (d *ResultDAO) Update(ctx context.Context, resultID uint, winners []WinningRegistration, actingOrgID uint) (Result, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, eventType, err := d.loadForMutation(tx, resultID)
		if err != nil {
			return err
		}

		for _, old := range existing.WinningRegistrations {
			if err = d.applyScore(tx, old.EventRegistrationID, old.Position, eventType, -1); err != nil {
				return err
			}
		}

		for i := range winners {
			if err = d.applyScore(tx, winners[i].EventRegistrationID, winners[i].Position, eventType, +1); err != nil {
				return err
			}
			winners[i].ID = 0
			winners[i].ResultID = existing.ID
			winners[i].Ordinal = i
		}

		if err = tx.Where("result_id = ?", existing.ID).Delete(&WinningRegistration{}).Error; err != nil {
			return err
		}
		if len(winners) > 0 {
			if err = tx.Create(&winners).Error; err != nil {
				return err
			}
		}

		err = tx.Model(&Result{}).
			Where("id = ?", existing.ID).
			Update("updated_by_id", actingOrgID).Error
		if err != nil {
			return err
		}

		return d.bumpMutationCounter(ctx, tx)
	})
	if err != nil {
		return Result{}, err
	}

	return d.FindByID(ctx, resultID)
}

// Delete reverts every winning registration's scores and removes the result
// row, atomically.
func (d *ResultDAO) Delete(ctx context.Context, resultID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, eventType, err := d.loadForMutation(tx, resultID)
		if err != nil {
			return err
		}

		for _, winner := range existing.WinningRegistrations {
			if err = d.applyScore(tx, winner.EventRegistrationID, winner.Position, eventType, -1); err != nil {
				return err
			}
		}

		if err = tx.Where("result_id = ?", existing.ID).Delete(&WinningRegistration{}).Error; err != nil {
			return err
		}

		if err = tx.Delete(&Result{}, existing.ID).Error; err != nil {
			return err
		}

		return d.bumpMutationCounter(ctx, tx)
	})
}

// loadForMutation fetches the result, its event and the event type inside the
// transaction, with the not-found error naming the missing entity.
func (d *ResultDAO) loadForMutation(tx *gorm.DB, resultID uint) (Result, EventType, error) {
	var result Result
	err := tx.Preload("WinningRegistrations", func(db *gorm.DB) *gorm.DB {
		return db.Order("ordinal")
	}).First(&result, resultID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, EventType{}, fmt.Errorf("%w: ID %v", ErrResultNotFound, resultID)
		}

		return Result{}, EventType{}, err
	}

	var event Event
	if err := tx.First(&event, result.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, EventType{}, fmt.Errorf("%w: ID %v", ErrEventNotFound, result.EventID)
		}

		return Result{}, EventType{}, err
	}

	var eventType EventType
	if err := tx.Preload("Scores").First(&eventType, event.EventTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, EventType{}, fmt.Errorf("%w: ID %v", ErrEventTypeNotFound, event.EventTypeID)
		}

		return Result{}, EventType{}, err
	}

	return result, eventType, nil
}

func (d *ResultDAO) FindByID(ctx context.Context, id uint) (Result, error) {
	var result Result

	err := d.resultQuery(ctx).First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, ErrResultNotFound
		}

		return Result{}, err
	}

	return result, nil
}

func (d *ResultDAO) FindByEventID(ctx context.Context, eventID uint) (Result, error) {
	var result Result

	err := d.resultQuery(ctx).Where("event_id = ?", eventID).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, ErrResultNotFound
		}

		return Result{}, err
	}

	return result, nil
}

func (d *ResultDAO) FindAll(ctx context.Context) ([]Result, error) {
	var results []Result

	err := d.resultQuery(ctx).Order("id").Find(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (d *ResultDAO) resultQuery(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Event.EventType").
		Preload("WinningRegistrations", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal")
		}).
		Preload("WinningRegistrations.EventRegistration.College").
		Preload("WinningRegistrations.EventRegistration.Participants.User")
}
