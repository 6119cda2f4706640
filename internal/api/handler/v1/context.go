package v1

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/zonefest/zonefest-api/internal/api/handler/v1/response"
	"github.com/zonefest/zonefest-api/internal/api/middleware"
	"github.com/zonefest/zonefest-api/internal/domain"
)

// actorFromContext reads the authenticated organization's identity that
// VerifyJWT stored. Only the ID and role are populated; that is all the
// services need for ownership checks.
func actorFromContext(ctx *gin.Context) (domain.Organization, *response.Err) {
	raw, found := ctx.Get(middleware.CtxKeyOrgID)
	if !found {
		return domain.Organization{}, response.ErrUnauthorized(errors.New("no authenticated organization"))
	}

	orgID, ok := raw.(uint)
	if !ok {
		return domain.Organization{}, response.ErrUnauthorized(errors.New("no authenticated organization"))
	}

	return domain.Organization{
		ID:   orgID,
		Role: ctx.GetString(middleware.CtxKeyOrgRole),
	}, nil
}
