package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/repository"
)

type fakeResultRepository struct {
	results    map[uint]domain.Result
	createErr  error
	updateErr  error
	deleteErr  error
	created    domain.Result
	deletedIDs []uint
}

func (f *fakeResultRepository) Create(_ context.Context, eventID uint, winners []domain.WinningRegistration, actingOrgID uint) (domain.Result, error) {
	if f.createErr != nil {
		return domain.Result{}, f.createErr
	}

	f.created = domain.Result{
		ID:                   1,
		EventID:              eventID,
		WinningRegistrations: winners,
		CreatedByID:          actingOrgID,
		UpdatedByID:          actingOrgID,
	}

	return f.created, nil
}

func (f *fakeResultRepository) Update(_ context.Context, resultID uint, winners []domain.WinningRegistration, actingOrgID uint) (domain.Result, error) {
	if f.updateErr != nil {
		return domain.Result{}, f.updateErr
	}

	result, ok := f.results[resultID]
	if !ok {
		return domain.Result{}, repository.ErrResultNotFound
	}

	result.WinningRegistrations = winners
	result.UpdatedByID = actingOrgID

	return result, nil
}

func (f *fakeResultRepository) Delete(_ context.Context, resultID uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}

	f.deletedIDs = append(f.deletedIDs, resultID)

	return nil
}

func (f *fakeResultRepository) FindByID(_ context.Context, id uint) (domain.Result, error) {
	result, ok := f.results[id]
	if !ok {
		return domain.Result{}, repository.ErrResultNotFound
	}

	return result, nil
}

func (f *fakeResultRepository) FindByEventID(_ context.Context, eventID uint) (domain.Result, error) {
	for _, result := range f.results {
		if result.EventID == eventID {
			return result, nil
		}
	}

	return domain.Result{}, repository.ErrResultNotFound
}

func (f *fakeResultRepository) FindAll(_ context.Context) ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(f.results))
	for _, result := range f.results {
		results = append(results, result)
	}

	return results, nil
}

type fakeScoreRowRepository struct {
	collegeRows    []domain.CollegeScoreRow
	individualRows []domain.IndividualScoreRow
	err            error
}

func (f *fakeScoreRowRepository) CollegeScoreRows(_ context.Context) ([]domain.CollegeScoreRow, error) {
	return f.collegeRows, f.err
}

func (f *fakeScoreRowRepository) OnstageIndividualScoreRows(_ context.Context) ([]domain.IndividualScoreRow, error) {
	return f.individualRows, f.err
}

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Recompute(_ context.Context) (domain.Leaderboard, error) {
	f.calls++

	return domain.Leaderboard{}, f.err
}

func TestCreateResult_RefreshesLeaderboard(t *testing.T) {
	repo := &fakeResultRepository{}
	refresher := &fakeRefresher{}
	svc := NewResultService(repo, &fakeScoreRowRepository{}, refresher)

	winners := []domain.WinningRegistration{{EventRegistrationID: 5, Position: "first"}}
	created, err := svc.CreateResult(context.Background(), 7, winners, domain.Organization{ID: 42, Role: domain.RoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, uint(7), created.EventID)
	assert.Equal(t, uint(42), created.CreatedByID)
	assert.Equal(t, 1, refresher.calls)
}

func TestCreateResult_RefreshFailureDoesNotFailMutation(t *testing.T) {
	repo := &fakeResultRepository{}
	refresher := &fakeRefresher{err: errors.New("boom")}
	svc := NewResultService(repo, &fakeScoreRowRepository{}, refresher)

	winners := []domain.WinningRegistration{{EventRegistrationID: 5, Position: "first"}}
	_, err := svc.CreateResult(context.Background(), 7, winners, domain.Organization{ID: 42})

	require.NoError(t, err)
	assert.Equal(t, 1, refresher.calls)
}

func TestCreateResult_RepoErrorSkipsRefresh(t *testing.T) {
	repo := &fakeResultRepository{createErr: repository.ErrResultExists}
	refresher := &fakeRefresher{}
	svc := NewResultService(repo, &fakeScoreRowRepository{}, refresher)

	_, err := svc.CreateResult(context.Background(), 7, nil, domain.Organization{ID: 42})

	assert.ErrorIs(t, err, ErrResultExists)
	assert.Zero(t, refresher.calls)
}

func TestDeleteResult(t *testing.T) {
	repo := &fakeResultRepository{results: map[uint]domain.Result{
		3: {ID: 3, EventID: 9},
	}}
	refresher := &fakeRefresher{}
	svc := NewResultService(repo, &fakeScoreRowRepository{}, refresher)

	err := svc.DeleteResult(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, []uint{3}, repo.deletedIDs)
	assert.Equal(t, 1, refresher.calls)
}

func TestDeleteResult_NotFound(t *testing.T) {
	repo := &fakeResultRepository{results: map[uint]domain.Result{}}
	refresher := &fakeRefresher{}
	svc := NewResultService(repo, &fakeScoreRowRepository{}, refresher)

	err := svc.DeleteResult(context.Background(), 3)

	assert.ErrorIs(t, err, ErrResultNotFound)
	assert.Empty(t, repo.deletedIDs)
	assert.Zero(t, refresher.calls)
}

func TestGetResultByEvent_BuildsView(t *testing.T) {
	updatedAt := time.Date(2025, time.October, 12, 15, 0, 0, 0, time.UTC)
	repo := &fakeResultRepository{results: map[uint]domain.Result{
		1: {
			ID:      1,
			EventID: 9,
			Event: &domain.Event{
				ID:           9,
				SerialNumber: 14,
				Name:         "Light Music",
				EventType: &domain.EventType{
					IsOnstage: true,
					Scores: []domain.ScoreRule{
						{Position: "first", Points: 10},
						{Position: "second", Points: 8},
					},
				},
			},
			WinningRegistrations: []domain.WinningRegistration{
				{
					EventRegistrationID: 21,
					Position:            "first",
					EventRegistration: &domain.EventRegistration{
						ID:          21,
						CollegeName: "Maharajas",
						Score:       10,
						Participants: []domain.Participant{
							{UserID: 4, User: &domain.User{ID: 4, UserID: "KRT031", Name: "Anu"}},
						},
					},
				},
			},
			UpdatedAt: updatedAt,
		},
	}}
	svc := NewResultService(repo, &fakeScoreRowRepository{}, &fakeRefresher{})

	view, err := svc.GetResultByEvent(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, uint(9), view.EventID)
	assert.Equal(t, 14, view.SerialNumber)
	assert.Equal(t, "Light Music", view.Name)
	assert.True(t, view.IsOnstage)
	assert.Equal(t, updatedAt, view.UpdatedAt)

	require.Len(t, view.Winners, 1)
	assert.Equal(t, "first", view.Winners[0].Position)
	assert.Equal(t, 10, view.Winners[0].Score)
	assert.Equal(t, "Maharajas", view.Winners[0].CollegeName)
	require.Len(t, view.Winners[0].Participants, 1)
	assert.Equal(t, "KRT031", view.Winners[0].Participants[0].UserID)
	assert.Equal(t, "Anu", view.Winners[0].Participants[0].Name)
}

func TestResultsByCollege(t *testing.T) {
	scoreRows := &fakeScoreRowRepository{collegeRows: []domain.CollegeScoreRow{
		{CollegeID: 1, College: "Maharajas", Event: "Quiz", Position: "first", Score: 7},
		{CollegeID: 2, College: "Assumption", Event: "Quiz", Position: "second", Score: 5},
		{CollegeID: 2, College: "Assumption", Event: "Essay", Position: "first", Score: 10},
	}}
	svc := NewResultService(&fakeResultRepository{}, scoreRows, &fakeRefresher{})

	standings, err := svc.ResultsByCollege(context.Background())

	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, "Assumption", standings[0].College)
	assert.Equal(t, 15, standings[0].TotalScore)
}

func TestDetailedGenderTopScorers_IncludesEvents(t *testing.T) {
	scoreRows := &fakeScoreRowRepository{individualRows: []domain.IndividualScoreRow{
		{UserID: 1, Name: "Anu", Gender: "female", Event: "Light Music", Position: "first", Score: 10},
	}}
	svc := NewResultService(&fakeResultRepository{}, scoreRows, &fakeRefresher{})

	boards, err := svc.DetailedGenderTopScorers(context.Background())

	require.NoError(t, err)
	require.Len(t, boards, 1)
	require.Len(t, boards[0].TopScorers, 1)
	assert.NotEmpty(t, boards[0].TopScorers[0].Events)
}
