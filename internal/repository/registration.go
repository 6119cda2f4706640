package repository

import (
	"context"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository/dao"
)

var ErrRegistrationNotFound = dao.ErrRegistrationNotFound

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.EventRegistration) (dao.EventRegistration, error)
	FindByID(ctx context.Context, id uint) (dao.EventRegistration, error)
	FindAll(ctx context.Context, collegeID uint) ([]dao.EventRegistration, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.EventRegistration, error)
	FindByParticipantUserID(ctx context.Context, userID uint) ([]dao.EventRegistration, error)
	Update(ctx context.Context, registration dao.EventRegistration) (dao.EventRegistration, error)
	Delete(ctx context.Context, id uint) error
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.EventRegistration) (domain.EventRegistration, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(registration))
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id uint) (domain.EventRegistration, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FindAll lists registrations, optionally narrowed to one college. A zero
// collegeID means no filter.
func (r *RegistrationRepository) FindAll(ctx context.Context, collegeID uint) ([]domain.EventRegistration, error) {
	found, err := r.dao.FindAll(ctx, collegeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *RegistrationRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.EventRegistration, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *RegistrationRepository) FindByParticipantUserID(ctx context.Context, userID uint) ([]domain.EventRegistration, error) {
	found, err := r.dao.FindByParticipantUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByParticipantUserID -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *RegistrationRepository) Update(ctx context.Context, registration domain.EventRegistration) (domain.EventRegistration, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(registration))
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RegistrationRepository) domainToDAO(reg domain.EventRegistration) dao.EventRegistration {
	participants := make([]dao.RegistrationParticipant, 0, len(reg.Participants))
	for _, p := range reg.Participants {
		participants = append(participants, dao.RegistrationParticipant{
			UserID: p.UserID,
		})
	}

	return dao.EventRegistration{
		ID:           reg.ID,
		EventID:      reg.EventID,
		GroupName:    reg.GroupName,
		CollegeID:    reg.CollegeID,
		Participants: participants,
	}
}

func (r *RegistrationRepository) daoToDomain(reg dao.EventRegistration) domain.EventRegistration {
	return registrationDAOToDomain(reg)
}

// registrationDAOToDomain is shared with the result repository, whose winner
// rows embed full registrations.
func registrationDAOToDomain(reg dao.EventRegistration) domain.EventRegistration {
	participants := make([]domain.Participant, 0, len(reg.Participants))
	for _, p := range reg.Participants {
		user := userDAOToDomain(p.User)
		participants = append(participants, domain.Participant{
			UserID: p.UserID,
			User:   &user,
		})
	}

	event := eventDAOToDomainShallow(reg.Event)

	return domain.EventRegistration{
		ID:           reg.ID,
		EventID:      reg.EventID,
		Event:        &event,
		GroupName:    reg.GroupName,
		CollegeID:    reg.CollegeID,
		CollegeName:  reg.College.Name,
		Participants: participants,
		Score:        reg.Score,
		CreatedAt:    reg.CreatedAt,
		UpdatedAt:    reg.UpdatedAt,
	}
}

func (r *RegistrationRepository) daosToDomains(regs []dao.EventRegistration) []domain.EventRegistration {
	out := make([]domain.EventRegistration, 0, len(regs))
	for _, reg := range regs {
		out = append(out, r.daoToDomain(reg))
	}

	return out
}

// userDAOToDomain maps an embedded participant without the college preload;
// registration queries only preload the user itself.
func userDAOToDomain(u dao.User) domain.User {
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

func eventDAOToDomainShallow(e dao.Event) domain.Event {
	scores := make([]domain.ScoreRule, 0, len(e.EventType.Scores))
	for _, row := range e.EventType.Scores {
		scores = append(scores, domain.ScoreRule{
			Position: row.Position,
			Points:   row.Points,
		})
	}

	eventType := domain.EventType{
		ID:        e.EventType.ID,
		Name:      e.EventType.Name,
		IsGroup:   e.EventType.IsGroup,
		IsOnstage: e.EventType.IsOnstage,
		Scores:    scores,
		CreatedAt: e.EventType.CreatedAt,
		UpdatedAt: e.EventType.UpdatedAt,
	}

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
