package domain

import "time"

// WinningRegistration pairs an event registration with the position it
// achieved. Order within a result is caller-supplied and preserved verbatim.
type WinningRegistration struct {
	EventRegistrationID uint               `json:"event_registration_id"`
	Position            string             `json:"position"`
	EventRegistration   *EventRegistration `json:"event_registration,omitempty"`
}

// Result records the outcome of exactly one event. At most one result exists
// per event; the store enforces this with a unique index.
type Result struct {
	ID                   uint                  `json:"id"`
	EventID              uint                  `json:"event_id"`
	Event                *Event                `json:"event,omitempty"`
	WinningRegistrations []WinningRegistration `json:"winning_registrations"`
	CreatedByID          uint                  `json:"created_by"`
	UpdatedByID          uint                  `json:"updated_by"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

// ResultEventView is the deep-joined projection of a single event's result
// surfaced to display clients.
type ResultEventView struct {
	EventID      uint         `json:"event_id"`
	SerialNumber int          `json:"serial_number"`
	Name         string       `json:"name"`
	IsOnstage    bool         `json:"is_onstage"`
	IsGroup      bool         `json:"is_group"`
	Winners      []WinnerView `json:"winners"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// WinnerView is one winning entry inside a ResultEventView.
type WinnerView struct {
	Position     string              `json:"position"`
	Score        int                 `json:"score"`
	GroupName    string              `json:"group_name,omitempty"`
	CollegeName  string              `json:"college_name"`
	Participants []WinnerParticipant `json:"participants"`
}

type WinnerParticipant struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Image  string `json:"image,omitempty"`
}
