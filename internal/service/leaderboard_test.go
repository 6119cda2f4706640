package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository"
)

type fakeLeaderboardRepository struct {
	collegeRows    []domain.CollegeScoreRow
	categoryRows   []domain.IndividualScoreRow
	genderRows     []domain.IndividualScoreRow
	resultCount    int64
	mutationCount  int64
	latest         domain.Leaderboard
	latestErr      error
	collegeRowsErr error
	saved          []domain.Leaderboard
}

func (f *fakeLeaderboardRepository) CollegeScoreRows(_ context.Context) ([]domain.CollegeScoreRow, error) {
	return f.collegeRows, f.collegeRowsErr
}

func (f *fakeLeaderboardRepository) CategoryScoreRows(_ context.Context, _ []string) ([]domain.IndividualScoreRow, error) {
	return f.categoryRows, nil
}

func (f *fakeLeaderboardRepository) OnstageIndividualScoreRows(_ context.Context) ([]domain.IndividualScoreRow, error) {
	return f.genderRows, nil
}

func (f *fakeLeaderboardRepository) CountResults(_ context.Context) (int64, error) {
	return f.resultCount, nil
}

func (f *fakeLeaderboardRepository) ResultMutationCount(_ context.Context) (int64, error) {
	return f.mutationCount, nil
}

func (f *fakeLeaderboardRepository) Save(_ context.Context, leaderboard domain.Leaderboard) (domain.Leaderboard, error) {
	leaderboard.ID = uint(len(f.saved) + 1)
	f.saved = append(f.saved, leaderboard)

	return leaderboard, nil
}

func (f *fakeLeaderboardRepository) Latest(_ context.Context) (domain.Leaderboard, error) {
	return f.latest, f.latestErr
}

func TestRecompute_BuildsAndSavesSnapshot(t *testing.T) {
	repo := &fakeLeaderboardRepository{
		collegeRows: []domain.CollegeScoreRow{
			{CollegeID: 1, College: "Maharajas", Event: "Quiz", Position: "first", Score: 7},
			{CollegeID: 2, College: "Assumption", Event: "Quiz", Position: "second", Score: 5},
		},
		categoryRows: []domain.IndividualScoreRow{
			{UserID: 1, Name: "Anu", Category: "saahithyolsavam", Event: "Essay", Position: "first", Score: 10},
		},
		genderRows: []domain.IndividualScoreRow{
			{UserID: 1, Name: "Anu", Gender: "female", Event: "Light Music", Position: "first", Score: 10},
		},
		resultCount:   4,
		mutationCount: 11,
	}
	svc := NewLeaderboardService(repo)

	saved, err := svc.Recompute(context.Background())

	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, int64(4), saved.TotalResultCount)
	assert.Equal(t, int64(11), saved.LastCount)

	require.Len(t, saved.Standings, 2)
	assert.Equal(t, "Maharajas", saved.Standings[0].College)

	require.Len(t, saved.CategoryTopScorers, 1)
	assert.Equal(t, "saahithyolsavam", saved.CategoryTopScorers[0].Category)
	assert.Empty(t, saved.CategoryTopScorers[0].TopScorers[0].Events)

	// The gender board retains each scorer's placements in the snapshot.
	require.Len(t, saved.GenderTopScorers, 1)
	assert.Equal(t, []domain.EventPlacement{
		{Name: "Light Music", Position: "first"},
	}, saved.GenderTopScorers[0].TopScorers[0].Events)
}

func TestRecompute_FailureWrapsErrAggregationFailed(t *testing.T) {
	repo := &fakeLeaderboardRepository{collegeRowsErr: errors.New("db down")}
	svc := NewLeaderboardService(repo)

	_, err := svc.Recompute(context.Background())

	assert.ErrorIs(t, err, ErrAggregationFailed)
	assert.Empty(t, repo.saved)
}

func TestLatest_ReportsStaleness(t *testing.T) {
	repo := &fakeLeaderboardRepository{
		latest:        domain.Leaderboard{ID: 1, LastCount: 10},
		mutationCount: 12,
	}
	svc := NewLeaderboardService(repo)

	leaderboard, stale, err := svc.Latest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint(1), leaderboard.ID)
	assert.True(t, stale)

	repo.mutationCount = 10
	_, stale, err = svc.Latest(context.Background())

	require.NoError(t, err)
	assert.False(t, stale)
}

func TestLatest_NotFound(t *testing.T) {
	repo := &fakeLeaderboardRepository{latestErr: repository.ErrLeaderboardNotFound}
	svc := NewLeaderboardService(repo)

	_, _, err := svc.Latest(context.Background())

	assert.ErrorIs(t, err, ErrLeaderboardNotFound)
}
