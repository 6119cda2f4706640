package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zonefest/zonefest-api/internal/api/handler/v1/request"
	"github.com/zonefest/zonefest-api/internal/api/handler/v1/response"
	"github.com/zonefest/zonefest-api/internal/config"
	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/pkg/jwthelper"
	"github.com/zonefest/zonefest-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Organization, error)
	Signup(ctx context.Context, org domain.Organization) (domain.Organization, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login with an organization account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body     request.LoginRequest true "request body"
// @Success      200     {object} response.LoginResponse
// @Failure      400     {object} response.Err
// @Failure      401     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	org, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials())
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.conf.JWTSigningKey, org.ID, org.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:        token,
		Organization: org,
	})
}

// HandleSignup godoc
// @Summary      Create a college account
// @Description  Admin only. Creates a college login able to register its own participants.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body     request.SignupOrganizationRequest true "request body"
// @Success      201     {object} domain.Organization
// @Failure      400     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /auth/signup [post]
// @Security     BearerAuth
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupOrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Signup(ctx.Request.Context(), domain.Organization{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrganizationEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrOrganizationEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
