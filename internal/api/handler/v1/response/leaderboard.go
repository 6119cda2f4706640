package response

import "github.com/zonefest/zonefest-api/internal/domain"

type LeaderboardResponse struct {
	domain.Leaderboard
	// Stale reports that results changed after this snapshot was built.
	Stale bool `json:"stale"`
}
