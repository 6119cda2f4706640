package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zonefest/zonefest-api/internal/api/handler/v1/request"
	"github.com/zonefest/zonefest-api/internal/api/handler/v1/response"
	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/service"
)

type ResultService interface {
	CreateResult(ctx context.Context, eventID uint, winners []domain.WinningRegistration, actor domain.Organization) (domain.Result, error)
	UpdateResult(ctx context.Context, resultID uint, winners []domain.WinningRegistration, actor domain.Organization) (domain.Result, error)
	DeleteResult(ctx context.Context, resultID uint) error
	GetResult(ctx context.Context, id uint) (domain.Result, error)
	ListResults(ctx context.Context) ([]domain.Result, error)
	GetResultByEvent(ctx context.Context, eventID uint) (domain.ResultEventView, error)
	ListResultViews(ctx context.Context) ([]domain.ResultEventView, error)
	ResultsByCollege(ctx context.Context) ([]domain.CollegeStanding, error)
	DetailedGenderTopScorers(ctx context.Context) ([]domain.GenderTopScorers, error)
}

type ResultHandler struct {
	svc ResultService
}

func NewResultHandler(svc ResultService) *ResultHandler {
	return &ResultHandler{
		svc: svc,
	}
}

// HandleCreateResult godoc
// @Summary      Record an event's result
// @Description  Applies position scores to the winning registrations and their participants atomically. An event can have at most one result.
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateResultRequest true "request body"
// @Success      201     {object} domain.Result
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      409     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /results [post]
// @Security     BearerAuth
func (h *ResultHandler) HandleCreateResult(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateResult(ctx.Request.Context(), req.EventID, winnersFromRequest(req.Winners), actor)
	if err != nil {
		renderResultErr(ctx, err, req.EventID)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateResult godoc
// @Summary      Replace a result's winner list
// @Description  Reverts the previous winners' scores and applies the new list atomically.
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        resultID path     int true "result ID"
// @Param        request  body     request.UpdateResultRequest true "request body"
// @Success      200      {object} domain.Result
// @Failure      400      {object} response.Err
// @Failure      404      {object} response.Err
// @Failure      500      {object} response.Err
// @Router       /results/{resultID} [put]
// @Security     BearerAuth
func (h *ResultHandler) HandleUpdateResult(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	resultID, err := parseIDParam(ctx, "resultID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateResultRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateResult(ctx.Request.Context(), resultID, winnersFromRequest(req.Winners), actor)
	if err != nil {
		renderResultErr(ctx, err, resultID)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteResult godoc
// @Summary      Delete a result and revert its scores
// @Tags         results
// @Produce      json
// @Param        resultID path     int true "result ID"
// @Success      204
// @Failure      400      {object} response.Err
// @Failure      404      {object} response.Err
// @Failure      500      {object} response.Err
// @Router       /results/{resultID} [delete]
// @Security     BearerAuth
func (h *ResultHandler) HandleDeleteResult(ctx *gin.Context) {
	resultID, err := parseIDParam(ctx, "resultID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteResult(ctx.Request.Context(), resultID); err != nil {
		renderResultErr(ctx, err, resultID)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetResult godoc
// @Summary      Get a result
// @Tags         results
// @Produce      json
// @Param        resultID path     int true "result ID"
// @Success      200      {object} domain.Result
// @Failure      400      {object} response.Err
// @Failure      404      {object} response.Err
// @Failure      500      {object} response.Err
// @Router       /results/{resultID} [get]
// @Security     BearerAuth
func (h *ResultHandler) HandleGetResult(ctx *gin.Context) {
	resultID, err := parseIDParam(ctx, "resultID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.GetResult(ctx.Request.Context(), resultID)
	if err != nil {
		renderResultErr(ctx, err, resultID)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleListResults godoc
// @Summary      List recorded results as display views
// @Tags         results
// @Produce      json
// @Success      200 {array}  domain.ResultEventView
// @Failure      500 {object} response.Err
// @Router       /results [get]
func (h *ResultHandler) HandleListResults(ctx *gin.Context) {
	views, err := h.svc.ListResultViews(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListResults -> h.svc.ListResultViews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, views)
}

// HandleGetResultByEvent godoc
// @Summary      Get one event's result as a display view
// @Tags         results
// @Produce      json
// @Param        eventID path     int true "event ID"
// @Success      200     {object} domain.ResultEventView
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /events/{eventID}/result [get]
func (h *ResultHandler) HandleGetResultByEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	view, err := h.svc.GetResultByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("result", "eventID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetResultByEvent -> h.svc.GetResultByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// HandleResultsByCollege godoc
// @Summary      College standings computed live from results
// @Tags         results
// @Produce      json
// @Success      200 {array}  domain.CollegeStanding
// @Failure      500 {object} response.Err
// @Router       /results/by-college [get]
func (h *ResultHandler) HandleResultsByCollege(ctx *gin.Context) {
	standings, err := h.svc.ResultsByCollege(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleResultsByCollege -> h.svc.ResultsByCollege -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, standings)
}

// HandleDetailedGenderTopScorers godoc
// @Summary      Per-gender top scorers with event placements
// @Tags         results
// @Produce      json
// @Success      200 {array}  domain.GenderTopScorers
// @Failure      500 {object} response.Err
// @Router       /results/top-scorers [get]
func (h *ResultHandler) HandleDetailedGenderTopScorers(ctx *gin.Context) {
	boards, err := h.svc.DetailedGenderTopScorers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleDetailedGenderTopScorers -> h.svc.DetailedGenderTopScorers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, boards)
}

func renderResultErr(ctx *gin.Context, err error, id uint) {
	switch {
	case errors.Is(err, service.ErrResultExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrResultExists))
	case errors.Is(err, service.ErrResultNotFound):
		response.RenderErr(ctx, response.ErrNotFound("result", "ID", id))
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
	case errors.Is(err, service.ErrEventTypeNotFound):
		response.RenderErr(ctx, response.ErrNotFoundMsg(service.ErrEventTypeNotFound))
	case errors.Is(err, service.ErrRegistrationNotFound):
		response.RenderErr(ctx, response.ErrNotFoundMsg(service.ErrRegistrationNotFound))
	case errors.Is(err, service.ErrInvalidPosition):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func winnersFromRequest(winners []request.WinnerRequest) []domain.WinningRegistration {
	out := make([]domain.WinningRegistration, 0, len(winners))
	for _, w := range winners {
		out = append(out, domain.WinningRegistration{
			EventRegistrationID: w.EventRegistrationID,
			Position:            w.Position,
		})
	}

	return out
}
