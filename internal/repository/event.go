package repository

import (
	"context"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository/dao"
)

var (
	ErrEventTypeNotFound = dao.ErrEventTypeNotFound
	ErrEventNotFound     = dao.ErrEventNotFound
)

type EventDAO interface {
	InsertEventType(ctx context.Context, eventType dao.EventType) (dao.EventType, error)
	FindEventTypeByID(ctx context.Context, id uint) (dao.EventType, error)
	FindAllEventTypes(ctx context.Context) ([]dao.EventType, error)
	UpdateEventType(ctx context.Context, eventType dao.EventType) (dao.EventType, error)
	DeleteEventType(ctx context.Context, id uint) error
	InsertEvent(ctx context.Context, event dao.Event) (dao.Event, error)
	FindEventByID(ctx context.Context, id uint) (dao.Event, error)
	FindAllEvents(ctx context.Context) ([]dao.Event, error)
	UpdateEvent(ctx context.Context, event dao.Event) (dao.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	FindResultCategories(ctx context.Context) ([]string, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) CreateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error) {
	created, err := r.dao.InsertEventType(ctx, r.eventTypeDomainToDAO(eventType))
	if err != nil {
		return domain.EventType{}, fmt.Errorf("r.dao.InsertEventType -> %w", err)
	}

	return r.eventTypeDAOToDomain(created), nil
}

func (r *EventRepository) FindEventTypeByID(ctx context.Context, id uint) (domain.EventType, error) {
	found, err := r.dao.FindEventTypeByID(ctx, id)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("r.dao.FindEventTypeByID -> %w", err)
	}

	return r.eventTypeDAOToDomain(found), nil
}

func (r *EventRepository) FindAllEventTypes(ctx context.Context) ([]domain.EventType, error) {
	found, err := r.dao.FindAllEventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllEventTypes -> %w", err)
	}

	eventTypes := make([]domain.EventType, 0, len(found))
	for _, eventType := range found {
		eventTypes = append(eventTypes, r.eventTypeDAOToDomain(eventType))
	}

	return eventTypes, nil
}

func (r *EventRepository) UpdateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error) {
	updated, err := r.dao.UpdateEventType(ctx, r.eventTypeDomainToDAO(eventType))
	if err != nil {
		return domain.EventType{}, fmt.Errorf("r.dao.UpdateEventType -> %w", err)
	}

	return r.eventTypeDAOToDomain(updated), nil
}

func (r *EventRepository) DeleteEventType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteEventType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteEventType -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.InsertEvent(ctx, r.eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.InsertEvent -> %w", err)
	}

	return r.eventDAOToDomain(created), nil
}

func (r *EventRepository) FindEventByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindEventByID -> %w", err)
	}

	return r.eventDAOToDomain(found), nil
}

func (r *EventRepository) FindAllEvents(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllEvents -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, event := range found {
		events = append(events, r.eventDAOToDomain(event))
	}

	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.UpdateEvent(ctx, r.eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.UpdateEvent -> %w", err)
	}

	return r.eventDAOToDomain(updated), nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id uint) error {
	if err := r.dao.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteEvent -> %w", err)
	}

	return nil
}

func (r *EventRepository) FindResultCategories(ctx context.Context) ([]string, error) {
	categories, err := r.dao.FindResultCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindResultCategories -> %w", err)
	}

	return categories, nil
}

func (r *EventRepository) eventTypeDomainToDAO(t domain.EventType) dao.EventType {
	scores := make([]dao.PositionScore, 0, len(t.Scores))
	for _, rule := range t.Scores {
		scores = append(scores, dao.PositionScore{
			Position: rule.Position,
			Points:   rule.Points,
		})
	}

	return dao.EventType{
		ID:        t.ID,
		Name:      t.Name,
		IsGroup:   t.IsGroup,
		IsOnstage: t.IsOnstage,
		Scores:    scores,
	}
}

func (r *EventRepository) eventTypeDAOToDomain(t dao.EventType) domain.EventType {
	scores := make([]domain.ScoreRule, 0, len(t.Scores))
	for _, row := range t.Scores {
		scores = append(scores, domain.ScoreRule{
			Position: row.Position,
			Points:   row.Points,
		})
	}

	return domain.EventType{
		ID:        t.ID,
		Name:      t.Name,
		IsGroup:   t.IsGroup,
		IsOnstage: t.IsOnstage,
		Scores:    scores,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *EventRepository) eventDomainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		ID:             e.ID,
		SerialNumber:   e.SerialNumber,
		Name:           e.Name,
		ResultCategory: e.ResultCategory,
		EventTypeID:    e.EventTypeID,
	}
}

func (r *EventRepository) eventDAOToDomain(e dao.Event) domain.Event {
	eventType := r.eventTypeDAOToDomain(e.EventType)

	return domain.Event{
		ID:             e.ID,
		SerialNumber:   e.SerialNumber,
		Name:           e.Name,
		ResultCategory: e.ResultCategory,
		EventTypeID:    e.EventTypeID,
		EventType:      &eventType,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
