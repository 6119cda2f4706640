package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrLeaderboardNotFound = errors.New("leaderboard not found")

// Leaderboard is an immutable aggregation snapshot. TotalResultCount is the
// number of result rows when it was built and LastCount the result mutation
// counter at the same moment; readers compare those against current values to
// detect a stale snapshot.
type Leaderboard struct {
	ID uint `gorm:"primaryKey"`

	TotalResultCount int64 `gorm:"not null"`
	LastCount        int64 `gorm:"not null"`

	Standings          datatypes.JSON `gorm:"not null"`
	CategoryTopScorers datatypes.JSON `gorm:"not null"`
	GenderTopScorers   datatypes.JSON `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;index"`
}

// CollegeScoreRow is one winning registration flattened with its college and
// awarded points.
type CollegeScoreRow struct {
	CollegeID uint
	College   string
	Event     string
	Position  string
	Score     int
}

// IndividualScoreRow is one participant of a winning registration flattened
// with the event's category and awarded points.
type IndividualScoreRow struct {
	UserID   uint
	Name     string
	Image    string
	College  string
	Gender   string
	Category string
	Event    string
	Position string
	Score    int
}

type LeaderboardDAO struct {
	db *gorm.DB
}

func NewLeaderboardDAO(db *gorm.DB) *LeaderboardDAO {
	return &LeaderboardDAO{
		db: db,
	}
}

// CollegeScoreRows flattens every recorded winning registration into one row
// per win, carrying the owning college and the registration's stored score.
// The ledger-maintained score is summed, not the current scoring table, so a
// score-table edit after a result exists never shifts standings retroactively.
func (d *LeaderboardDAO) CollegeScoreRows(ctx context.Context) ([]CollegeScoreRow, error) {
	var rows []CollegeScoreRow

	err := d.db.WithContext(ctx).Raw(`
		SELECT er.college_id AS college_id,
		       o.name        AS college,
		       e.name        AS event,
		       wr.position   AS position,
		       er.score      AS score
		FROM winning_registrations wr
		JOIN results r             ON r.id = wr.result_id
		JOIN events e              ON e.id = r.event_id
		JOIN event_registrations er ON er.id = wr.event_registration_id
		JOIN organizations o       ON o.id = er.college_id
		ORDER BY wr.result_id, wr.ordinal`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// CategoryScoreRows flattens winning participants of individual events in the
// given result categories, one row per participant per win. Group events are
// excluded; a group entry has no single participant to credit.
func (d *LeaderboardDAO) CategoryScoreRows(ctx context.Context, categories []string) ([]IndividualScoreRow, error) {
	var rows []IndividualScoreRow

	err := d.db.WithContext(ctx).Raw(`
		SELECT u.id              AS user_id,
		       u.name            AS name,
		       u.image           AS image,
		       o.name            AS college,
		       u.gender          AS gender,
		       e.result_category AS category,
		       e.name            AS event,
		       wr.position       AS position,
		       er.score          AS score
		FROM winning_registrations wr
		JOIN results r                   ON r.id = wr.result_id
		JOIN events e                    ON e.id = r.event_id
		JOIN event_types et              ON et.id = e.event_type_id
		JOIN event_registrations er      ON er.id = wr.event_registration_id
		JOIN registration_participants rp ON rp.event_registration_id = er.id
		JOIN users u                     ON u.id = rp.user_id
		JOIN organizations o             ON o.id = u.college_id
		WHERE e.result_category IN ? AND et.is_group = false
		ORDER BY wr.result_id, wr.ordinal, rp.id`,
		categories,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// OnstageIndividualScoreRows flattens winning participants of on-stage
// individual events, for the per-gender top-scorer boards.
func (d *LeaderboardDAO) OnstageIndividualScoreRows(ctx context.Context) ([]IndividualScoreRow, error) {
	var rows []IndividualScoreRow

	err := d.db.WithContext(ctx).Raw(`
		SELECT u.id              AS user_id,
		       u.name            AS name,
		       u.image           AS image,
		       o.name            AS college,
		       u.gender          AS gender,
		       e.result_category AS category,
		       e.name            AS event,
		       wr.position       AS position,
		       er.score          AS score
		FROM winning_registrations wr
		JOIN results r                   ON r.id = wr.result_id
		JOIN events e                    ON e.id = r.event_id
		JOIN event_types et              ON et.id = e.event_type_id
		JOIN event_registrations er      ON er.id = wr.event_registration_id
		JOIN registration_participants rp ON rp.event_registration_id = er.id
		JOIN users u                     ON u.id = rp.user_id
		JOIN organizations o             ON o.id = u.college_id
		WHERE et.is_onstage = true AND et.is_group = false
		  AND u.gender IN ('male', 'female')
		ORDER BY wr.result_id, wr.ordinal, rp.id`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *LeaderboardDAO) CountResults(ctx context.Context) (int64, error) {
	var count int64

	err := d.db.WithContext(ctx).Model(&Result{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (d *LeaderboardDAO) Insert(ctx context.Context, leaderboard Leaderboard) (Leaderboard, error) {
	result := d.db.WithContext(ctx).Create(&leaderboard)
	if result.Error != nil {
		return Leaderboard{}, result.Error
	}

	return leaderboard, nil
}

// Latest returns the most recent snapshot.
func (d *LeaderboardDAO) Latest(ctx context.Context) (Leaderboard, error) {
	var leaderboard Leaderboard

	result := d.db.WithContext(ctx).Order("created_at DESC, id DESC").First(&leaderboard)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Leaderboard{}, ErrLeaderboardNotFound
		}

		return Leaderboard{}, result.Error
	}

	return leaderboard, nil
}
