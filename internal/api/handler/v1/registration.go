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

type RegistrationService interface {
	CreateRegistration(ctx context.Context, registration domain.EventRegistration, actor domain.Organization) (domain.EventRegistration, error)
	GetRegistration(ctx context.Context, id uint, actor domain.Organization) (domain.EventRegistration, error)
	ListRegistrations(ctx context.Context, actor domain.Organization) ([]domain.EventRegistration, error)
	ListRegistrationsByEvent(ctx context.Context, eventID uint) ([]domain.EventRegistration, error)
	ListRegistrationsByParticipant(ctx context.Context, userID uint) ([]domain.EventRegistration, error)
	UpdateRegistration(ctx context.Context, registration domain.EventRegistration, actor domain.Organization) (domain.EventRegistration, error)
	DeleteRegistration(ctx context.Context, id uint, actor domain.Organization) error
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleCreateRegistration godoc
// @Summary      Register a college for an event
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        request body     request.CreateRegistrationRequest true "request body"
// @Success      201     {object} domain.EventRegistration
// @Failure      400     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /registrations [post]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleCreateRegistration(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateRegistration(ctx.Request.Context(), domain.EventRegistration{
		EventID:      req.EventID,
		GroupName:    req.GroupName,
		CollegeID:    req.CollegeID,
		Participants: participantsFromIDs(req.ParticipantIDs),
	}, actor)
	if err != nil {
		renderRegistrationErr(ctx, err, req.EventID)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetRegistration godoc
// @Summary      Get a registration
// @Tags         registrations
// @Produce      json
// @Param        registrationID path     int true "registration ID"
// @Success      200            {object} domain.EventRegistration
// @Failure      400            {object} response.Err
// @Failure      403            {object} response.Err
// @Failure      404            {object} response.Err
// @Failure      500            {object} response.Err
// @Router       /registrations/{registrationID} [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleGetRegistration(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrationID, err := parseIDParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.GetRegistration(ctx.Request.Context(), registrationID, actor)
	if err != nil {
		renderRegistrationErr(ctx, err, registrationID)
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// HandleListRegistrations godoc
// @Summary      List registrations
// @Description  The admin sees all registrations; a college account sees only its own.
// @Tags         registrations
// @Produce      json
// @Success      200 {array}  domain.EventRegistration
// @Failure      500 {object} response.Err
// @Router       /registrations [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleListRegistrations(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrations, err := h.svc.ListRegistrations(ctx.Request.Context(), actor)
	if err != nil {
		err = fmt.Errorf("v1.HandleListRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleListRegistrationsByEvent godoc
// @Summary      List registrations for one event
// @Tags         registrations
// @Produce      json
// @Param        eventID path     int true "event ID"
// @Success      200     {array}  domain.EventRegistration
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /events/{eventID}/registrations [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleListRegistrationsByEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registrations, err := h.svc.ListRegistrationsByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleListRegistrationsByEvent -> h.svc.ListRegistrationsByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleListRegistrationsByParticipant godoc
// @Summary      List registrations a participant is part of
// @Tags         registrations
// @Produce      json
// @Param        userID path     int true "user ID"
// @Success      200    {array}  domain.EventRegistration
// @Failure      400    {object} response.Err
// @Failure      404    {object} response.Err
// @Failure      500    {object} response.Err
// @Router       /users/{userID}/registrations [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleListRegistrationsByParticipant(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registrations, err := h.svc.ListRegistrationsByParticipant(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleListRegistrationsByParticipant -> h.svc.ListRegistrationsByParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleUpdateRegistration godoc
// @Summary      Update a registration's group name and participants
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        registrationID path     int true "registration ID"
// @Param        request        body     request.UpdateRegistrationRequest true "request body"
// @Success      200            {object} domain.EventRegistration
// @Failure      400            {object} response.Err
// @Failure      403            {object} response.Err
// @Failure      404            {object} response.Err
// @Failure      500            {object} response.Err
// @Router       /registrations/{registrationID} [put]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleUpdateRegistration(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrationID, err := parseIDParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateRegistrationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateRegistration(ctx.Request.Context(), domain.EventRegistration{
		ID:           registrationID,
		GroupName:    req.GroupName,
		Participants: participantsFromIDs(req.ParticipantIDs),
	}, actor)
	if err != nil {
		renderRegistrationErr(ctx, err, registrationID)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteRegistration godoc
// @Summary      Delete a registration
// @Tags         registrations
// @Produce      json
// @Param        registrationID path     int true "registration ID"
// @Success      204
// @Failure      400            {object} response.Err
// @Failure      403            {object} response.Err
// @Failure      404            {object} response.Err
// @Failure      500            {object} response.Err
// @Router       /registrations/{registrationID} [delete]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleDeleteRegistration(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrationID, err := parseIDParam(ctx, "registrationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteRegistration(ctx.Request.Context(), registrationID, actor); err != nil {
		renderRegistrationErr(ctx, err, registrationID)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func renderRegistrationErr(ctx *gin.Context, err error, id uint) {
	switch {
	case errors.Is(err, service.ErrRegistrationNotFound):
		response.RenderErr(ctx, response.ErrNotFound("registration", "ID", id))
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
	case errors.Is(err, service.ErrUserNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserNotFound))
	case errors.Is(err, service.ErrNotRegistrationOwner):
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotRegistrationOwner))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func participantsFromIDs(ids []uint) []domain.Participant {
	participants := make([]domain.Participant, 0, len(ids))
	for _, id := range ids {
		participants = append(participants, domain.Participant{UserID: id})
	}

	return participants
}
