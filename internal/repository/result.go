package repository

import (
	"context"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository/dao"
)

var (
	ErrResultNotFound  = dao.ErrResultNotFound
	ErrResultExists    = dao.ErrResultExists
	ErrInvalidPosition = dao.ErrInvalidPosition
)

type ResultDAO interface {
	Create(ctx context.Context, eventID uint, winners []dao.WinningRegistration, actingOrgID uint) (dao.Result, error)
	Update(ctx context.Context, resultID uint, winners []dao.WinningRegistration, actingOrgID uint) (dao.Result, error)
	Delete(ctx context.Context, resultID uint) error
	FindByID(ctx context.Context, id uint) (dao.Result, error)
	FindByEventID(ctx context.Context, eventID uint) (dao.Result, error)
	FindAll(ctx context.Context) ([]dao.Result, error)
}

type ResultRepository struct {
	dao ResultDAO
}

func NewResultRepository(dao ResultDAO) *ResultRepository {
	return &ResultRepository{
		dao: dao,
	}
}

// Create records an event's result; the DAO applies every score mutation and
// the result row in one transaction.
func (r *ResultRepository) Create(ctx context.Context, eventID uint, winners []domain.WinningRegistration, actingOrgID uint) (domain.Result, error) {
	created, err := r.dao.Create(ctx, eventID, r.winnersDomainToDAO(winners), actingOrgID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.Create -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ResultRepository) Update(ctx context.Context, resultID uint, winners []domain.WinningRegistration, actingOrgID uint) (domain.Result, error) {
	updated, err := r.dao.Update(ctx, resultID, r.winnersDomainToDAO(winners), actingOrgID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ResultRepository) Delete(ctx context.Context, resultID uint) error {
	if err := r.dao.Delete(ctx, resultID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ResultRepository) FindByID(ctx context.Context, id uint) (domain.Result, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ResultRepository) FindByEventID(ctx context.Context, eventID uint) (domain.Result, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ResultRepository) FindAll(ctx context.Context) ([]domain.Result, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	results := make([]domain.Result, 0, len(found))
	for _, result := range found {
		results = append(results, r.daoToDomain(result))
	}

	return results, nil
}

func (r *ResultRepository) winnersDomainToDAO(winners []domain.WinningRegistration) []dao.WinningRegistration {
	out := make([]dao.WinningRegistration, 0, len(winners))
	for _, w := range winners {
		out = append(out, dao.WinningRegistration{
			EventRegistrationID: w.EventRegistrationID,
			Position:            w.Position,
		})
	}

	return out
}

func (r *ResultRepository) daoToDomain(res dao.Result) domain.Result {
	winners := make([]domain.WinningRegistration, 0, len(res.WinningRegistrations))
	for _, w := range res.WinningRegistrations {
		registration := registrationDAOToDomain(w.EventRegistration)
		winners = append(winners, domain.WinningRegistration{
			EventRegistrationID: w.EventRegistrationID,
			Position:            w.Position,
			EventRegistration:   &registration,
		})
	}

	event := eventDAOToDomainShallow(res.Event)

	return domain.Result{
		ID:                   res.ID,
		EventID:              res.EventID,
		Event:                &event,
		WinningRegistrations: winners,
		CreatedByID:          res.CreatedByID,
		UpdatedByID:          res.UpdatedByID,
		CreatedAt:            res.CreatedAt,
		UpdatedAt:            res.UpdatedAt,
	}
}
