// Package metrics holds the process-wide Prometheus collectors, exposed on
// GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ResultMutations counts result writes by operation: create, update,
	// delete.
	ResultMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zonefest_result_mutations_total",
		Help: "Result create/update/delete operations applied.",
	}, []string{"op"})

	// LeaderboardRefreshes counts aggregation runs by outcome: success,
	// failure.
	LeaderboardRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zonefest_leaderboard_refreshes_total",
		Help: "Leaderboard aggregation runs by outcome.",
	}, []string{"status"})
)
