package domain

import "time"

const (
	RoleAdmin        = "admin"
	RoleOrganization = "organization"
)

// Organization is an account that can log in: either a college account that
// registers its own students, or the central admin account.
type Organization struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o Organization) IsAdmin() bool {
	return o.Role == RoleAdmin
}
