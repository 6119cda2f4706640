package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zonefest/zonefest-api/internal/api/handler/v1/response"
	"github.com/zonefest/zonefest-api/internal/service"
)

type ExportService interface {
	ParticipantCardsPDF(ctx context.Context, collegeID uint) ([]byte, error)
	EventProgramPDF(ctx context.Context) ([]byte, error)
	ParticipantsWorkbook(ctx context.Context, collegeID uint) ([]byte, error)
}

type ExportHandler struct {
	svc ExportService
}

func NewExportHandler(svc ExportService) *ExportHandler {
	return &ExportHandler{
		svc: svc,
	}
}

// HandleParticipantCards godoc
// @Summary      Download participant credential cards as PDF
// @Tags         exports
// @Produce      application/pdf
// @Param        orgID path int true "college ID"
// @Success      200   {file}   file
// @Failure      400   {object} response.Err
// @Failure      403   {object} response.Err
// @Failure      404   {object} response.Err
// @Failure      500   {object} response.Err
// @Router       /organizations/{orgID}/exports/cards [get]
// @Security     BearerAuth
func (h *ExportHandler) HandleParticipantCards(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	orgID, err := parseIDParam(ctx, "orgID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if !actor.IsAdmin() && orgID != actor.ID {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("exports are limited to your own college")))
		return
	}

	pdf, err := h.svc.ParticipantCardsPDF(ctx.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "ID", orgID))
			return
		}

		err = fmt.Errorf("v1.HandleParticipantCards -> h.svc.ParticipantCardsPDF -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="participant-cards.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// HandleEventProgram godoc
// @Summary      Download the event program as PDF
// @Tags         exports
// @Produce      application/pdf
// @Success      200 {file}   file
// @Failure      500 {object} response.Err
// @Router       /exports/program [get]
// @Security     BearerAuth
func (h *ExportHandler) HandleEventProgram(ctx *gin.Context) {
	pdf, err := h.svc.EventProgramPDF(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleEventProgram -> h.svc.EventProgramPDF -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="event-program.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// HandleParticipantsWorkbook godoc
// @Summary      Download participants as a spreadsheet
// @Description  Admin only. One sheet per college, or pass college_id for a single college.
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        college_id query    int false "limit to one college"
// @Success      200        {file}   file
// @Failure      404        {object} response.Err
// @Failure      500        {object} response.Err
// @Router       /exports/participants [get]
// @Security     BearerAuth
func (h *ExportHandler) HandleParticipantsWorkbook(ctx *gin.Context) {
	collegeID := uint(queryInt(ctx, "college_id", 0))

	workbook, err := h.svc.ParticipantsWorkbook(ctx.Request.Context(), collegeID)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organization", "ID", collegeID))
			return
		}

		err = fmt.Errorf("v1.HandleParticipantsWorkbook -> h.svc.ParticipantsWorkbook -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="participants.xlsx"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
