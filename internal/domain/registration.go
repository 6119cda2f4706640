package domain

import "time"

// Participant is one user's membership in an event registration.
type Participant struct {
	UserID uint  `json:"user_id"`
	User   *User `json:"user,omitempty"`
}

// EventRegistration is one entry into an event, owned by the college that
// created it. Score is maintained exclusively by the result ledger: it is the
// points assigned by the at-most-one result referencing this registration,
// or 0.
type EventRegistration struct {
	ID           uint          `json:"id"`
	EventID      uint          `json:"event_id"`
	Event        *Event        `json:"event,omitempty"`
	GroupName    string        `json:"group_name,omitempty"`
	CollegeID    uint          `json:"college_id"`
	CollegeName  string        `json:"college_name,omitempty"`
	Participants []Participant `json:"participants"`
	Score        int           `json:"score"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
