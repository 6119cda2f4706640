package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/pkg/metrics"
	"github.com/zonefest/zonefest-api/internal/repository"
)

var (
	ErrResultNotFound  = repository.ErrResultNotFound
	ErrResultExists    = repository.ErrResultExists
	ErrInvalidPosition = repository.ErrInvalidPosition
)

type ResultRepository interface {
	Create(ctx context.Context, eventID uint, winners []domain.WinningRegistration, actingOrgID uint) (domain.Result, error)
	Update(ctx context.Context, resultID uint, winners []domain.WinningRegistration, actingOrgID uint) (domain.Result, error)
	Delete(ctx context.Context, resultID uint) error
	FindByID(ctx context.Context, id uint) (domain.Result, error)
	FindByEventID(ctx context.Context, eventID uint) (domain.Result, error)
	FindAll(ctx context.Context) ([]domain.Result, error)
}

type LeaderboardRefresher interface {
	Recompute(ctx context.Context) (domain.Leaderboard, error)
}

type ResultScoreRowRepository interface {
	CollegeScoreRows(ctx context.Context) ([]domain.CollegeScoreRow, error)
	OnstageIndividualScoreRows(ctx context.Context) ([]domain.IndividualScoreRow, error)
}

type ResultService struct {
	repo         ResultRepository
	scoreRows    ResultScoreRowRepository
	leaderboards LeaderboardRefresher
}

func NewResultService(repo ResultRepository, scoreRows ResultScoreRowRepository, leaderboards LeaderboardRefresher) *ResultService {
	return &ResultService{
		repo:         repo,
		scoreRows:    scoreRows,
		leaderboards: leaderboards,
	}
}

// CreateResult records an event's result. The score mutations commit
// atomically in the repository; the leaderboard refresh runs after the commit
// and a refresh failure never undoes the recorded result.
func (s *ResultService) CreateResult(ctx context.Context, eventID uint, winners []domain.WinningRegistration, actor domain.Organization) (domain.Result, error) {
	created, err := s.repo.Create(ctx, eventID, winners, actor.ID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	metrics.ResultMutations.WithLabelValues("create").Inc()
	s.refreshLeaderboard(ctx, "create", created.EventID)

	return created, nil
}

func (s *ResultService) UpdateResult(ctx context.Context, resultID uint, winners []domain.WinningRegistration, actor domain.Organization) (domain.Result, error) {
	updated, err := s.repo.Update(ctx, resultID, winners, actor.ID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	metrics.ResultMutations.WithLabelValues("update").Inc()
	s.refreshLeaderboard(ctx, "update", updated.EventID)

	return updated, nil
}

func (s *ResultService) DeleteResult(ctx context.Context, resultID uint) error {
	existing, err := s.repo.FindByID(ctx, resultID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.repo.Delete(ctx, resultID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	metrics.ResultMutations.WithLabelValues("delete").Inc()
	s.refreshLeaderboard(ctx, "delete", existing.EventID)

	return nil
}

// refreshLeaderboard recomputes after a committed mutation. Failures are
// logged and counted, not propagated: the snapshot's staleness markers let
// readers detect the lag and force a refresh.
func (s *ResultService) refreshLeaderboard(ctx context.Context, op string, eventID uint) {
	if _, err := s.leaderboards.Recompute(ctx); err != nil {
		zap.L().Warn("leaderboard refresh failed after result mutation",
			zap.String("op", op),
			zap.Uint("eventID", eventID),
			zap.Error(err))
	}
}

func (s *ResultService) GetResult(ctx context.Context, id uint) (domain.Result, error) {
	result, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return result, nil
}

func (s *ResultService) ListResults(ctx context.Context) ([]domain.Result, error) {
	results, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return results, nil
}

// GetResultByEvent returns the display projection of one event's result.
func (s *ResultService) GetResultByEvent(ctx context.Context, eventID uint) (domain.ResultEventView, error) {
	result, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return domain.ResultEventView{}, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return buildResultEventView(result), nil
}

// ListResultViews returns the display projection of every recorded result,
// in event program order as stored.
func (s *ResultService) ListResultViews(ctx context.Context) ([]domain.ResultEventView, error) {
	results, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	views := make([]domain.ResultEventView, 0, len(results))
	for _, result := range results {
		views = append(views, buildResultEventView(result))
	}

	return views, nil
}

// ResultsByCollege recomputes college standings live from the recorded
// results, bypassing snapshots.
func (s *ResultService) ResultsByCollege(ctx context.Context) ([]domain.CollegeStanding, error) {
	rows, err := s.scoreRows.CollegeScoreRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.scoreRows.CollegeScoreRows -> %w", err)
	}

	return domain.BuildCollegeStandings(rows), nil
}

// DetailedGenderTopScorers is the gender board with each scorer's event
// placements included, computed live.
func (s *ResultService) DetailedGenderTopScorers(ctx context.Context) ([]domain.GenderTopScorers, error) {
	rows, err := s.scoreRows.OnstageIndividualScoreRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.scoreRows.OnstageIndividualScoreRows -> %w", err)
	}

	return domain.BuildGenderTopScorers(rows, domain.TopN, true), nil
}

func buildResultEventView(result domain.Result) domain.ResultEventView {
	view := domain.ResultEventView{
		EventID:   result.EventID,
		UpdatedAt: result.UpdatedAt,
	}

	if result.Event != nil {
		view.SerialNumber = result.Event.SerialNumber
		view.Name = result.Event.Name
		if result.Event.EventType != nil {
			view.IsOnstage = result.Event.EventType.IsOnstage
			view.IsGroup = result.Event.EventType.IsGroup
		}
	}

	for _, winner := range result.WinningRegistrations {
		winnerView := domain.WinnerView{
			Position: winner.Position,
		}

		if winner.EventRegistration != nil {
			// The ledger-maintained registration score, not a fresh
			// scoring-table lookup.
			winnerView.Score = winner.EventRegistration.Score
			winnerView.GroupName = winner.EventRegistration.GroupName
			winnerView.CollegeName = winner.EventRegistration.CollegeName

			for _, participant := range winner.EventRegistration.Participants {
				if participant.User == nil {
					continue
				}
				winnerView.Participants = append(winnerView.Participants, domain.WinnerParticipant{
					UserID: participant.User.UserID,
					Name:   participant.User.Name,
					Image:  participant.User.Image,
				})
			}
		}

		view.Winners = append(view.Winners, winnerView)
	}

	return view
}
