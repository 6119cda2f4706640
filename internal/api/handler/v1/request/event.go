package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ScoreRuleRequest struct {
	Position string `json:"position"`
	Points   int    `json:"points"`
}

func (req ScoreRuleRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Position, validation.Required, validation.Length(1, 30)),
		// Zero is a legitimate configured value: a position can count for
		// ranking without carrying points.
		validation.Field(&req.Points, validation.Min(0)),
	)
}

type EventTypeRequest struct {
	Name      string             `json:"name"`
	IsGroup   bool               `json:"is_group"`
	IsOnstage bool               `json:"is_onstage"`
	Scores    []ScoreRuleRequest `json:"scores"`
}

func (req *EventTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Scores, validation.Required, validation.Length(1, 10)),
	)
}

type EventRequest struct {
	SerialNumber   int    `json:"serial_number"`
	Name           string `json:"name"`
	ResultCategory string `json:"result_category"`
	EventTypeID    uint   `json:"event_type_id"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SerialNumber, validation.Required, validation.Min(1)),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.ResultCategory, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.EventTypeID, validation.Required, validation.Min(uint(1))),
	)
}
