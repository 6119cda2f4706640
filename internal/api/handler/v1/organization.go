package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zonefest/zonefest-api/internal/api/handler/v1/request"
	"github.com/zonefest/zonefest-api/internal/api/handler/v1/response"
	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/service"
)

type OrganizationService interface {
	GetOrganization(ctx context.Context, id uint) (domain.Organization, error)
	ListColleges(ctx context.Context) ([]domain.Organization, error)
	UpdateOrganization(ctx context.Context, org domain.Organization) (domain.Organization, error)
	DeleteOrganization(ctx context.Context, id uint) error
}

type OrganizationHandler struct {
	svc OrganizationService
}

func NewOrganizationHandler(svc OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		svc: svc,
	}
}

// HandleListColleges godoc
// @Summary      List college accounts
// @Tags         organizations
// @Produce      json
// @Success      200 {array}  domain.Organization
// @Failure      500 {object} response.Err
// @Router       /organizations [get]
// @Security     BearerAuth
func (h *OrganizationHandler) HandleListColleges(ctx *gin.Context) {
	colleges, err := h.svc.ListColleges(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListColleges -> h.svc.ListColleges -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, colleges)
}

// HandleGetOrganization godoc
// @Summary      Get one organization
// @Tags         organizations
// @Produce      json
// @Param        orgID path     int true "organization ID"
// @Success      200   {object} domain.Organization
// @Failure      400   {object} response.Err
// @Failure      404   {object} response.Err
// @Failure      500   {object} response.Err
// @Router       /organizations/{orgID} [get]
// @Security     BearerAuth
func (h *OrganizationHandler) HandleGetOrganization(ctx *gin.Context) {
	orgID, err := parseIDParam(ctx, "orgID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	org, err := h.svc.GetOrganization(ctx.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "ID", orgID))
			return
		}

		err = fmt.Errorf("v1.HandleGetOrganization -> h.svc.GetOrganization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, org)
}

// HandleUpdateOrganization godoc
// @Summary      Update an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        orgID   path     int true "organization ID"
// @Param        request body     request.UpdateOrganizationRequest true "request body"
// @Success      200     {object} domain.Organization
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /organizations/{orgID} [put]
// @Security     BearerAuth
func (h *OrganizationHandler) HandleUpdateOrganization(ctx *gin.Context) {
	orgID, err := parseIDParam(ctx, "orgID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateOrganizationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateOrganization(ctx.Request.Context(), domain.Organization{
		ID:    orgID,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "ID", orgID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateOrganization -> h.svc.UpdateOrganization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteOrganization godoc
// @Summary      Delete an organization
// @Tags         organizations
// @Produce      json
// @Param        orgID path     int true "organization ID"
// @Success      204
// @Failure      400   {object} response.Err
// @Failure      404   {object} response.Err
// @Failure      500   {object} response.Err
// @Router       /organizations/{orgID} [delete]
// @Security     BearerAuth
func (h *OrganizationHandler) HandleDeleteOrganization(ctx *gin.Context) {
	orgID, err := parseIDParam(ctx, "orgID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteOrganization(ctx.Request.Context(), orgID); err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "ID", orgID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteOrganization -> h.svc.DeleteOrganization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam parses a positive numeric path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(id), nil
}
