package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/pkg/metrics"
	"github.com/zonefest/zonefest-api/internal/repository"
)

var (
	ErrLeaderboardNotFound = repository.ErrLeaderboardNotFound
	ErrAggregationFailed   = errors.New("leaderboard aggregation failed")
)

type LeaderboardRepository interface {
	CollegeScoreRows(ctx context.Context) ([]domain.CollegeScoreRow, error)
	CategoryScoreRows(ctx context.Context, categories []string) ([]domain.IndividualScoreRow, error)
	OnstageIndividualScoreRows(ctx context.Context) ([]domain.IndividualScoreRow, error)
	CountResults(ctx context.Context) (int64, error)
	ResultMutationCount(ctx context.Context) (int64, error)
	Save(ctx context.Context, leaderboard domain.Leaderboard) (domain.Leaderboard, error)
	Latest(ctx context.Context) (domain.Leaderboard, error)
}

type LeaderboardService struct {
	repo LeaderboardRepository
}

func NewLeaderboardService(repo LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{
		repo: repo,
	}
}

// Recompute rebuilds the three ranking boards from the recorded results and
// appends a fresh snapshot. Any failure surfaces as ErrAggregationFailed; the
// result mutation that triggered the recompute is already committed and stays
// committed.
func (s *LeaderboardService) Recompute(ctx context.Context) (domain.Leaderboard, error) {
	saved, err := s.recompute(ctx)
	if err != nil {
		metrics.LeaderboardRefreshes.WithLabelValues("failure").Inc()

		return domain.Leaderboard{}, fmt.Errorf("%w: %v", ErrAggregationFailed, err)
	}

	metrics.LeaderboardRefreshes.WithLabelValues("success").Inc()

	return saved, nil
}

func (s *LeaderboardService) recompute(ctx context.Context) (domain.Leaderboard, error) {
	collegeRows, err := s.repo.CollegeScoreRows(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("s.repo.CollegeScoreRows -> %w", err)
	}

	categoryRows, err := s.repo.CategoryScoreRows(ctx, domain.ResultCategories)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("s.repo.CategoryScoreRows -> %w", err)
	}

	genderRows, err := s.repo.OnstageIndividualScoreRows(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("s.repo.OnstageIndividualScoreRows -> %w", err)
	}

	resultCount, err := s.repo.CountResults(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("s.repo.CountResults -> %w", err)
	}

	mutationCount, err := s.repo.ResultMutationCount(ctx)
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("s.repo.ResultMutationCount -> %w", err)
	}

	// The gender board keeps each scorer's event placements; the category
	// board carries totals only.
	saved, err := s.repo.Save(ctx, domain.Leaderboard{
		TotalResultCount:   resultCount,
		LastCount:          mutationCount,
		Standings:          domain.BuildCollegeStandings(collegeRows),
		CategoryTopScorers: domain.BuildCategoryTopScorers(categoryRows, domain.TopN),
		GenderTopScorers:   domain.BuildGenderTopScorers(genderRows, domain.TopN, true),
	})
	if err != nil {
		return domain.Leaderboard{}, fmt.Errorf("s.repo.Save -> %w", err)
	}

	return saved, nil
}

// Latest returns the newest snapshot and whether it lags behind the result
// mutation counter. A stale snapshot is still served; callers wanting a fresh
// one use the refresh operation.
func (s *LeaderboardService) Latest(ctx context.Context) (domain.Leaderboard, bool, error) {
	leaderboard, err := s.repo.Latest(ctx)
	if err != nil {
		return domain.Leaderboard{}, false, fmt.Errorf("s.repo.Latest -> %w", err)
	}

	mutationCount, err := s.repo.ResultMutationCount(ctx)
	if err != nil {
		return domain.Leaderboard{}, false, fmt.Errorf("s.repo.ResultMutationCount -> %w", err)
	}

	return leaderboard, leaderboard.LastCount != mutationCount, nil
}
