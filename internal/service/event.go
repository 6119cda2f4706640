package service

import (
	"context"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository"
)

var (
	ErrEventTypeNotFound = repository.ErrEventTypeNotFound
	ErrEventNotFound     = repository.ErrEventNotFound
)

type EventRepository interface {
	CreateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error)
	FindEventTypeByID(ctx context.Context, id uint) (domain.EventType, error)
	FindAllEventTypes(ctx context.Context) ([]domain.EventType, error)
	UpdateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error)
	DeleteEventType(ctx context.Context, id uint) error
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	FindEventByID(ctx context.Context, id uint) (domain.Event, error)
	FindAllEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	FindResultCategories(ctx context.Context) ([]string, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) CreateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error) {
	created, err := s.repo.CreateEventType(ctx, eventType)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("s.repo.CreateEventType -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEventType(ctx context.Context, id uint) (domain.EventType, error) {
	eventType, err := s.repo.FindEventTypeByID(ctx, id)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("s.repo.FindEventTypeByID -> %w", err)
	}

	return eventType, nil
}

func (s *EventService) ListEventTypes(ctx context.Context) ([]domain.EventType, error) {
	eventTypes, err := s.repo.FindAllEventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllEventTypes -> %w", err)
	}

	return eventTypes, nil
}

func (s *EventService) UpdateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error) {
	updated, err := s.repo.UpdateEventType(ctx, eventType)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("s.repo.UpdateEventType -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEventType(ctx context.Context, id uint) error {
	if err := s.repo.DeleteEventType(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteEventType -> %w", err)
	}

	return nil
}

// CreateEvent checks the referenced event type first so a bad reference
// surfaces as not-found instead of a foreign key violation.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if _, err := s.repo.FindEventTypeByID(ctx, event.EventTypeID); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventTypeByID -> %w", err)
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.CreateEvent -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllEvents -> %w", err)
	}

	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if _, err := s.repo.FindEventTypeByID(ctx, event.EventTypeID); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindEventTypeByID -> %w", err)
	}

	updated, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.UpdateEvent -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteEvent -> %w", err)
	}

	return nil
}

func (s *EventService) ListResultCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.FindResultCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindResultCategories -> %w", err)
	}

	return categories, nil
}
