package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository/dao"
)

var ErrLeaderboardNotFound = dao.ErrLeaderboardNotFound

type LeaderboardDAO interface {
	CollegeScoreRows(ctx context.Context) ([]dao.CollegeScoreRow, error)
	CategoryScoreRows(ctx context.Context, categories []string) ([]dao.IndividualScoreRow, error)
	OnstageIndividualScoreRows(ctx context.Context) ([]dao.IndividualScoreRow, error)
	CountResults(ctx context.Context) (int64, error)
	Insert(ctx context.Context, leaderboard dao.Leaderboard) (dao.Leaderboard, error)
	Latest(ctx context.Context) (dao.Leaderboard, error)
}

type CounterDAO interface {
	Current(ctx context.Context, name string) (int64, error)
}

type LeaderboardRepository struct {
	dao      LeaderboardDAO
	counters CounterDAO
}

func NewLeaderboardRepository(dao LeaderboardDAO, counters CounterDAO) *LeaderboardRepository {
	return &LeaderboardRepository{
		dao:      dao,
		counters: counters,
	}
}

func (r *LeaderboardRepository) CollegeScoreRows(ctx context.Context) ([]domain.CollegeScoreRow, error) {
	found, err := r.dao.CollegeScoreRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CollegeScoreRows -> %w", err)
	}

	rows := make([]domain.CollegeScoreRow, 0, len(found))
	for _, row := range found {
		rows = append(rows, domain.CollegeScoreRow(row))
	}

	return rows, nil
}

func (r *LeaderboardRepository) CategoryScoreRows(ctx context.Context, categories []string) ([]domain.IndividualScoreRow, error) {
	found, err := r.dao.CategoryScoreRows(ctx, categories)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CategoryScoreRows -> %w", err)
	}

	return individualRowsDAOToDomain(found), nil
}

func (r *LeaderboardRepository) OnstageIndividualScoreRows(ctx context.Context) ([]domain.IndividualScoreRow, error) {
	found, err := r.dao.OnstageIndividualScoreRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.OnstageIndividualScoreRows -> %w", err)
	}

	return individualRowsDAOToDomain(found), nil
}

func (r *LeaderboardRepository) CountResults(ctx context.Context) (int64, error) {
	count, err := r.dao.CountResults(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountResults -> %w", err)
	}

	return count, nil
}

// ResultMutationCount is the running count of result create/update/delete
// operations, recorded into snapshots for staleness checks.
func (r *LeaderboardRepository) ResultMutationCount(ctx context.Context) (int64, error) {
	count, err := r.counters.Current(ctx, "result")
	if err != nil {
		return 0, fmt.Errorf("r.counters.Current -> %w", err)
	}

	return count, nil
}

// Save marshals the standings into JSONB columns and appends a new snapshot
// row; earlier snapshots are kept untouched.
func (r *LeaderboardRepository) Save(ctx context.Context, leaderboard domain.Leaderboard) (domain.Leaderboard, error) {
	standings, err := json.Marshal(leaderboard.Standings)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("json.Marshal(standings) -> %w", err)
	}

	categoryTopScorers, err := json.Marshal(leaderboard.CategoryTopScorers)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("json.Marshal(categoryTopScorers) -> %w", err)
	}

	genderTopScorers, err := json.Marshal(leaderboard.GenderTopScorers)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("json.Marshal(genderTopScorers) -> %w", err)
	}

	created, err := r.dao.Insert(ctx, dao.Leaderboard{
		TotalResultCount:   leaderboard.TotalResultCount,
		LastCount:          leaderboard.LastCount,
		Standings:          standings,
		CategoryTopScorers: categoryTopScorers,
		GenderTopScorers:   genderTopScorers,
	})
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created)
}

func (r *LeaderboardRepository) Latest(ctx context.Context) (domain.Leaderboard, error) {
	found, err := r.dao.Latest(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("r.dao.Latest -> %w", err)
	}

	return r.daoToDomain(found)
}

func (r *LeaderboardRepository) daoToDomain(l dao.Leaderboard) (domain.Leaderboard, error) {
	leaderboard := domain.Leaderboard{
		ID:               l.ID,
		TotalResultCount: l.TotalResultCount,
		LastCount:        l.LastCount,
		CreatedAt:        l.CreatedAt,
	}

	if err := json.Unmarshal(l.Standings, &leaderboard.Standings); err != nil {
		return domain.Leaderboard{}, fmt.Errorf("json.Unmarshal(standings) -> %w", err)
	}
	if err := json.Unmarshal(l.CategoryTopScorers, &leaderboard.CategoryTopScorers); err != nil {
		return domain.Leaderboard{}, fmt.Errorf("json.Unmarshal(categoryTopScorers) -> %w", err)
	}
	if err := json.Unmarshal(l.GenderTopScorers, &leaderboard.GenderTopScorers); err != nil {
		return domain.Leaderboard{}, fmt.Errorf("json.Unmarshal(genderTopScorers) -> %w", err)
	}

	return leaderboard, nil
}

func individualRowsDAOToDomain(found []dao.IndividualScoreRow) []domain.IndividualScoreRow {
	rows := make([]domain.IndividualScoreRow, 0, len(found))
	for _, row := range found {
		rows = append(rows, domain.IndividualScoreRow(row))
	}

	return rows
}
