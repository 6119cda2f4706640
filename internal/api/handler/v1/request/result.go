package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type WinnerRequest struct {
	EventRegistrationID uint `json:"event_registration_id"`
	// Position must match a configured rule of the event's type; that check
	// happens against the scoring table, not here.
	Position string `json:"position"`
}

func (req WinnerRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.EventRegistrationID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Position, validation.Required, validation.Length(1, 30)),
	)
}

type CreateResultRequest struct {
	EventID uint            `json:"event_id"`
	Winners []WinnerRequest `json:"winners"`
}

func (req *CreateResultRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Winners, validation.Required, validation.Length(1, 20)),
	)
}

type UpdateResultRequest struct {
	Winners []WinnerRequest `json:"winners"`
}

func (req *UpdateResultRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Winners, validation.Required, validation.Length(1, 20)),
	)
}
