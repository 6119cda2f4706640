package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Participants must be at most 25 years old, judged as of 1 July of the
// festival year.
var ageReferenceDate = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

const maxParticipantAge = 25

const dobLayout = "2006-01-02"

var errTooOld = errors.New("participant must be 25 or younger as of 1 July")

type UserRequest struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phone_number"`
	Course      string `json:"course"`
	Semester    int    `json:"semester"`
	YearOfStudy int    `json:"year_of_study"`
	CapID       string `json:"cap_id"`
	Image       string `json:"image"`
	DOB         string `json:"dob"`
	// CollegeID is honored only when the admin registers on a college's
	// behalf; college accounts always register their own participants.
	CollegeID uint `json:"college_id"`
}

func (req *UserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Gender, validation.Required, validation.In("male", "female")),
		validation.Field(&req.PhoneNumber, validation.Required, validation.Length(10, 15)),
		validation.Field(&req.Course, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Semester, validation.Required, validation.Min(1), validation.Max(12)),
		validation.Field(&req.YearOfStudy, validation.Required, validation.Min(1), validation.Max(6)),
		validation.Field(&req.CapID, validation.Required, validation.Length(1, 30)),
		validation.Field(&req.DOB, validation.Required, validation.Date(dobLayout), validation.By(validateMaxAge)),
	)
}

// ParseDOB returns the validated date of birth.
func (req *UserRequest) ParseDOB() (time.Time, error) {
	return time.Parse(dobLayout, req.DOB)
}

func validateMaxAge(value any) error {
	raw, _ := value.(string)

	dob, err := time.Parse(dobLayout, raw)
	if err != nil {
		// The Date rule reports the format error.
		return nil
	}

	age := ageReferenceDate.Year() - dob.Year()
	if ageReferenceDate.Before(dob.AddDate(age, 0, 0)) {
		age--
	}

	if age > maxParticipantAge {
		return errTooOld
	}

	return nil
}
