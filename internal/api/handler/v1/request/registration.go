package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateRegistrationRequest struct {
	EventID   uint   `json:"event_id"`
	GroupName string `json:"group_name"`
	// CollegeID is honored only when the admin registers on a college's
	// behalf; college accounts always register for themselves.
	CollegeID      uint   `json:"college_id"`
	ParticipantIDs []uint `json:"participant_ids"`
}

func (req *CreateRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.ParticipantIDs, validation.Required, validation.Length(1, 50)),
	)
}

type UpdateRegistrationRequest struct {
	GroupName      string `json:"group_name"`
	ParticipantIDs []uint `json:"participant_ids"`
}

func (req *UpdateRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantIDs, validation.Required, validation.Length(1, 50)),
	)
}
