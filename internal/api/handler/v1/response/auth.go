package response

import "github.com/zonefest/zonefest-api/internal/domain"

type LoginResponse struct {
	Token        string              `json:"token"`
	Organization domain.Organization `json:"organization"`
}
