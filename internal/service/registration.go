package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository"
)

var (
	ErrRegistrationNotFound = repository.ErrRegistrationNotFound
	ErrNotRegistrationOwner = errors.New("registration belongs to another college")
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.EventRegistration) (domain.EventRegistration, error)
	FindByID(ctx context.Context, id uint) (domain.EventRegistration, error)
	FindAll(ctx context.Context, collegeID uint) ([]domain.EventRegistration, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.EventRegistration, error)
	FindByParticipantUserID(ctx context.Context, userID uint) ([]domain.EventRegistration, error)
	Update(ctx context.Context, registration domain.EventRegistration) (domain.EventRegistration, error)
	Delete(ctx context.Context, id uint) error
}

type RegistrationEventRepository interface {
	FindEventByID(ctx context.Context, id uint) (domain.Event, error)
}

type RegistrationUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type RegistrationService struct {
	repo      RegistrationRepository
	eventRepo RegistrationEventRepository
	userRepo  RegistrationUserRepository
}

func NewRegistrationService(repo RegistrationRepository, eventRepo RegistrationEventRepository, userRepo RegistrationUserRepository) *RegistrationService {
	return &RegistrationService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// CreateRegistration enters a college into an event. College accounts always
// register for themselves and may only enrol their own participants; the
// admin registers on behalf of the college whose participants are listed.
func (s *RegistrationService) CreateRegistration(ctx context.Context, registration domain.EventRegistration, actor domain.Organization) (domain.EventRegistration, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, registration.EventID); err != nil {
		return domain.EventRegistration{}, fmt.Errorf("s.eventRepo.FindEventByID -> %w", err)
	}

	if !actor.IsAdmin() {
		registration.CollegeID = actor.ID
	}

	for _, participant := range registration.Participants {
		user, err := s.userRepo.FindByID(ctx, participant.UserID)
		if err != nil {
			return domain.EventRegistration{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
		}
		if user.CollegeID != registration.CollegeID {
			return domain.EventRegistration{}, ErrNotRegistrationOwner
		}
	}

	created, err := s.repo.Create(ctx, registration)
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RegistrationService) GetRegistration(ctx context.Context, id uint, actor domain.Organization) (domain.EventRegistration, error) {
	registration, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !actor.IsAdmin() && registration.CollegeID != actor.ID {
		return domain.EventRegistration{}, ErrNotRegistrationOwner
	}

	return registration, nil
}

// ListRegistrations returns every registration for the admin and only the
// college's own for everyone else.
func (s *RegistrationService) ListRegistrations(ctx context.Context, actor domain.Organization) ([]domain.EventRegistration, error) {
	collegeID := actor.ID
	if actor.IsAdmin() {
		collegeID = 0
	}

	registrations, err := s.repo.FindAll(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return registrations, nil
}

func (s *RegistrationService) ListRegistrationsByEvent(ctx context.Context, eventID uint) ([]domain.EventRegistration, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.eventRepo.FindEventByID -> %w", err)
	}

	registrations, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return registrations, nil
}

func (s *RegistrationService) ListRegistrationsByParticipant(ctx context.Context, userID uint) ([]domain.EventRegistration, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	registrations, err := s.repo.FindByParticipantUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByParticipantUserID -> %w", err)
	}

	return registrations, nil
}

func (s *RegistrationService) UpdateRegistration(ctx context.Context, registration domain.EventRegistration, actor domain.Organization) (domain.EventRegistration, error) {
	existing, err := s.repo.FindByID(ctx, registration.ID)
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !actor.IsAdmin() && existing.CollegeID != actor.ID {
		return domain.EventRegistration{}, ErrNotRegistrationOwner
	}

	for _, participant := range registration.Participants {
		user, err := s.userRepo.FindByID(ctx, participant.UserID)
		if err != nil {
			return domain.EventRegistration{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
		}
		if user.CollegeID != existing.CollegeID {
			return domain.EventRegistration{}, ErrNotRegistrationOwner
		}
	}

	updated, err := s.repo.Update(ctx, registration)
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *RegistrationService) DeleteRegistration(ctx context.Context, id uint, actor domain.Organization) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !actor.IsAdmin() && existing.CollegeID != actor.ID {
		return ErrNotRegistrationOwner
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
