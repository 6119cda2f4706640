package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zonefest/zonefest-api/internal/api/handler/v1/response"
	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/pkg/jwthelper"
)

const (
	// CtxKeyOrgID and CtxKeyOrgRole hold the authenticated organization's
	// identity in the gin context.
	CtxKeyOrgID   = "orgID"
	CtxKeyOrgRole = "orgRole"
)

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT authenticates the Bearer token and stores the organization's ID
// and role in the request context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing authorization header")))
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("malformed authorization header")))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("invalid or expired token")))
			return
		}

		ctx.Set(CtxKeyOrgID, claims.OrganizationID)
		ctx.Set(CtxKeyOrgRole, claims.Role)
		ctx.Next()
	}
}

// RequireAdmin allows only the admin account past; it must run after
// VerifyJWT.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(CtxKeyOrgRole) != domain.RoleAdmin {
			response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("admin access required")))
			return
		}

		ctx.Next()
	}
}
