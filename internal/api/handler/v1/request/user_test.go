package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUserRequest() UserRequest {
	return UserRequest{
		Name:        "Anu Thomas",
		Gender:      "female",
		PhoneNumber: "9847012345",
		Course:      "BSc Physics",
		Semester:    3,
		YearOfStudy: 2,
		CapID:       "CAP123456",
		DOB:         "2004-03-15",
	}
}

func TestUserRequestValidate(t *testing.T) {
	req := validUserRequest()

	assert.NoError(t, req.Validate())
}

func TestUserRequestValidate_MaxAgeBoundary(t *testing.T) {
	// Turns 25 exactly on the reference date; still eligible.
	req := validUserRequest()
	req.DOB = "2000-07-01"
	assert.NoError(t, req.Validate())

	// Already 25 just before the reference date; still eligible.
	req.DOB = "2000-06-30"
	assert.NoError(t, req.Validate())

	// Born before 1 July 1999 means older than 25 on the reference date.
	req.DOB = "1999-06-30"
	assert.Error(t, req.Validate())

	// Born on 1 July 1999 turns exactly 26 on the reference date.
	req.DOB = "1999-07-01"
	assert.Error(t, req.Validate())

	// Born 2 July 1999 is still 25 on the reference date.
	req.DOB = "1999-07-02"
	assert.NoError(t, req.Validate())
}

func TestUserRequestValidate_BadDate(t *testing.T) {
	req := validUserRequest()
	req.DOB = "15-03-2004"

	assert.Error(t, req.Validate())
}

func TestUserRequestValidate_Gender(t *testing.T) {
	req := validUserRequest()
	req.Gender = "other"

	assert.Error(t, req.Validate())
}

func TestUserRequestParseDOB(t *testing.T) {
	req := validUserRequest()

	dob, err := req.ParseDOB()

	require.NoError(t, err)
	assert.Equal(t, 2004, dob.Year())
}
