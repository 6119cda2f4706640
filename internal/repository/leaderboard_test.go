package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository/dao"
)

type fakeLeaderboardDAO struct {
	collegeRows    []dao.CollegeScoreRow
	individualRows []dao.IndividualScoreRow
	inserted       []dao.Leaderboard
}

func (f *fakeLeaderboardDAO) CollegeScoreRows(_ context.Context) ([]dao.CollegeScoreRow, error) {
	return f.collegeRows, nil
}

func (f *fakeLeaderboardDAO) CategoryScoreRows(_ context.Context, _ []string) ([]dao.IndividualScoreRow, error) {
	return f.individualRows, nil
}

func (f *fakeLeaderboardDAO) OnstageIndividualScoreRows(_ context.Context) ([]dao.IndividualScoreRow, error) {
	return f.individualRows, nil
}

func (f *fakeLeaderboardDAO) CountResults(_ context.Context) (int64, error) {
	return int64(len(f.collegeRows)), nil
}

func (f *fakeLeaderboardDAO) Insert(_ context.Context, leaderboard dao.Leaderboard) (dao.Leaderboard, error) {
	leaderboard.ID = uint(len(f.inserted) + 1)
	f.inserted = append(f.inserted, leaderboard)

	return leaderboard, nil
}

func (f *fakeLeaderboardDAO) Latest(_ context.Context) (dao.Leaderboard, error) {
	if len(f.inserted) == 0 {
		return dao.Leaderboard{}, dao.ErrLeaderboardNotFound
	}

	return f.inserted[len(f.inserted)-1], nil
}

type fakeCounterDAO struct {
	seq int64
}

func (f *fakeCounterDAO) Current(_ context.Context, _ string) (int64, error) {
	return f.seq, nil
}

// The aggregation input is the registration's ledger-maintained score, carried
// through the row mapping verbatim.
func TestLeaderboardRepositoryScoreRows(t *testing.T) {
	daoRows := []dao.CollegeScoreRow{
		{CollegeID: 1, College: "Maharajas", Event: "Quiz", Position: "first", Score: 7},
		{CollegeID: 2, College: "Assumption", Event: "Quiz", Position: "second", Score: 0},
	}
	repo := NewLeaderboardRepository(&fakeLeaderboardDAO{collegeRows: daoRows}, &fakeCounterDAO{})

	rows, err := repo.CollegeScoreRows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 7, rows[0].Score)
	assert.Equal(t, 0, rows[1].Score)
	assert.Equal(t, "Quiz", rows[0].Event)
	assert.Equal(t, "first", rows[0].Position)
}

func TestLeaderboardRepositorySaveAndLatest(t *testing.T) {
	daoFake := &fakeLeaderboardDAO{}
	repo := NewLeaderboardRepository(daoFake, &fakeCounterDAO{seq: 5})

	saved, err := repo.Save(context.Background(), domain.Leaderboard{
		TotalResultCount: 2,
		LastCount:        5,
		Standings: []domain.CollegeStanding{
			{CollegeID: 1, College: "Maharajas", TotalScore: 7},
		},
		GenderTopScorers: []domain.GenderTopScorers{
			{Gender: "female", TopScorers: []domain.TopScorer{
				{Name: "Anu", Score: 10, Events: []domain.EventPlacement{{Name: "Light Music", Position: "first"}}},
			}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), saved.LastCount)

	// The stored JSON round-trips the boards, placements included.
	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.Len(t, latest.Standings, 1)
	assert.Equal(t, 7, latest.Standings[0].TotalScore)
	require.Len(t, latest.GenderTopScorers, 1)
	assert.Equal(t, []domain.EventPlacement{{Name: "Light Music", Position: "first"}},
		latest.GenderTopScorers[0].TopScorers[0].Events)

	count, err := repo.ResultMutationCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	var stored []domain.CategoryTopScorers
	require.NoError(t, json.Unmarshal(daoFake.inserted[0].CategoryTopScorers, &stored))
	assert.Empty(t, stored)
}
