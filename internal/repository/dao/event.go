package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrEventNotFound     = errors.New("event not found")
)

// EventType templates events: group vs individual entries, on-stage vs off,
// and the position→points table consulted by the result ledger.
type EventType struct {
	ID uint `gorm:"primaryKey"`

	Name      string `gorm:"not null"`
	IsGroup   bool   `gorm:"not null"`
	IsOnstage bool   `gorm:"not null"`

	Scores []PositionScore `gorm:"foreignKey:EventTypeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// PositionScore is one row of an event type's scoring table. Presence of the
// row is what makes a position valid; Points may legitimately be zero.
type PositionScore struct {
	ID          uint   `gorm:"primaryKey"`
	EventTypeID uint   `gorm:"uniqueIndex:idx_event_type_position;not null"`
	Position    string `gorm:"uniqueIndex:idx_event_type_position;not null"`
	Points      int    `gorm:"not null"`
}

type Event struct {
	ID uint `gorm:"primaryKey"`

	SerialNumber   int    `gorm:"not null"`
	Name           string `gorm:"not null"`
	ResultCategory string `gorm:"index;not null"`

	EventTypeID uint      `gorm:"index;not null"`
	EventType   EventType `gorm:"foreignKey:EventTypeID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) InsertEventType(ctx context.Context, eventType EventType) (EventType, error) {
	result := d.db.WithContext(ctx).Create(&eventType)
	if result.Error != nil {
		return EventType{}, result.Error
	}

	return eventType, nil
}

func (d *EventDAO) FindEventTypeByID(ctx context.Context, id uint) (EventType, error) {
	var eventType EventType

	result := d.db.WithContext(ctx).Preload("Scores").First(&eventType, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventType{}, ErrEventTypeNotFound
		}

		return EventType{}, result.Error
	}

	return eventType, nil
}

func (d *EventDAO) FindAllEventTypes(ctx context.Context) ([]EventType, error) {
	var eventTypes []EventType

	result := d.db.WithContext(ctx).Preload("Scores").Order("name").Find(&eventTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return eventTypes, nil
}

// UpdateEventType replaces the scalar fields and the whole scoring table in
// one transaction.
func (d *EventDAO) UpdateEventType(ctx context.Context, eventType EventType) (EventType, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&EventType{}).
			Where("id = ?", eventType.ID).
			Updates(map[string]any{
				"name":       eventType.Name,
				"is_group":   eventType.IsGroup,
				"is_onstage": eventType.IsOnstage,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventTypeNotFound
		}

		if err := tx.Where("event_type_id = ?", eventType.ID).Delete(&PositionScore{}).Error; err != nil {
			return err
		}

		for i := range eventType.Scores {
			eventType.Scores[i].ID = 0
			eventType.Scores[i].EventTypeID = eventType.ID
		}
		if len(eventType.Scores) == 0 {
			return nil
		}

		return tx.Create(&eventType.Scores).Error
	})
	if err != nil {
		return EventType{}, err
	}

	return d.FindEventTypeByID(ctx, eventType.ID)
}

func (d *EventDAO) DeleteEventType(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&EventType{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventTypeNotFound
	}

	return nil
}

func (d *EventDAO) InsertEvent(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return d.FindEventByID(ctx, event.ID)
}

func (d *EventDAO) FindEventByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).Preload("EventType.Scores").First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAllEvents(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Preload("EventType.Scores").Order("serial_number").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) UpdateEvent(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Model(&Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"serial_number":   event.SerialNumber,
			"name":            event.Name,
			"result_category": event.ResultCategory,
			"event_type_id":   event.EventTypeID,
		})
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindEventByID(ctx, event.ID)
}

func (d *EventDAO) DeleteEvent(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) FindResultCategories(ctx context.Context) ([]string, error) {
	var categories []string

	result := d.db.WithContext(ctx).Model(&Event{}).
		Distinct("result_category").
		Order("result_category").
		Pluck("result_category", &categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}
