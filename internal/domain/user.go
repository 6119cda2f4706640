package domain

import "time"

// User is a festival participant registered by their college.
type User struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number"`
	Course      string    `json:"course"`
	Semester    int       `json:"semester"`
	YearOfStudy int       `json:"year_of_study"`
	CapID       string    `json:"cap_id"`
	Image       string    `json:"image"`
	DOB         time.Time `json:"dob"`
	CollegeID   uint      `json:"college_id"`
	CollegeName string    `json:"college_name,omitempty"`
	TotalScore  int       `json:"total_score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserFilter narrows participant listings.
type UserFilter struct {
	Search    string
	Gender    string
	CollegeID uint
	Page      int
	Limit     int
}

// UserPage is one page of a participant listing.
type UserPage struct {
	Users         []User `json:"users"`
	TotalElements int64  `json:"total_elements"`
	Page          int    `json:"page"`
	Limit         int    `json:"limit"`
}
