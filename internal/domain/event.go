package domain

import "time"

// Positions recordable in a result, in rank order.
var Positions = []string{"first", "second", "third"}

// ResultCategories eligible for the per-category topper pass.
var ResultCategories = []string{"saahithyolsavam", "chithrolsavam"}

// ScoreRule maps one finishing position to the points it earns.
type ScoreRule struct {
	Position string `json:"position"`
	Points   int    `json:"points"`
}

// EventType is the template for events: whether entries are groups or
// individuals, whether the event happens on stage, and the position→points
// table used when a result is recorded.
type EventType struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	IsGroup   bool        `json:"is_group"`
	IsOnstage bool        `json:"is_onstage"`
	Scores    []ScoreRule `json:"scores"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// PositionScore looks up the points for a position. Validity is "a rule
// exists for this position", so a position legitimately worth 0 points is
// distinguishable from one that was never configured.
func (t EventType) PositionScore(position string) (int, bool) {
	for _, rule := range t.Scores {
		if rule.Position == position {
			return rule.Points, true
		}
	}

	return 0, false
}

// Event is one competition in the festival program.
type Event struct {
	ID             uint       `json:"id"`
	SerialNumber   int        `json:"serial_number"`
	Name           string     `json:"name"`
	ResultCategory string     `json:"result_category"`
	EventTypeID    uint       `json:"event_type_id"`
	EventType      *EventType `json:"event_type,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
