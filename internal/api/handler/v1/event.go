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

type EventService interface {
	CreateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error)
	GetEventType(ctx context.Context, id uint) (domain.EventType, error)
	ListEventTypes(ctx context.Context) ([]domain.EventType, error)
	UpdateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error)
	DeleteEventType(ctx context.Context, id uint) error
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	ListResultCategories(ctx context.Context) ([]string, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEventType godoc
// @Summary      Create an event type
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body     request.EventTypeRequest true "request body"
// @Success      201     {object} domain.EventType
// @Failure      400     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /event-types [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEventType(ctx *gin.Context) {
	var req request.EventTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEventType(ctx.Request.Context(), eventTypeFromRequest(req))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEventType -> h.svc.CreateEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListEventTypes godoc
// @Summary      List event types
// @Tags         events
// @Produce      json
// @Success      200 {array}  domain.EventType
// @Failure      500 {object} response.Err
// @Router       /event-types [get]
// @Security     BearerAuth
func (h *EventHandler) HandleListEventTypes(ctx *gin.Context) {
	eventTypes, err := h.svc.ListEventTypes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEventTypes -> h.svc.ListEventTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, eventTypes)
}

// HandleGetEventType godoc
// @Summary      Get an event type
// @Tags         events
// @Produce      json
// @Param        typeID path     int true "event type ID"
// @Success      200    {object} domain.EventType
// @Failure      400    {object} response.Err
// @Failure      404    {object} response.Err
// @Failure      500    {object} response.Err
// @Router       /event-types/{typeID} [get]
// @Security     BearerAuth
func (h *EventHandler) HandleGetEventType(ctx *gin.Context) {
	typeID, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	eventType, err := h.svc.GetEventType(ctx.Request.Context(), typeID)
	if err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "ID", typeID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEventType -> h.svc.GetEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, eventType)
}

// HandleUpdateEventType godoc
// @Summary      Update an event type and its scoring table
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        typeID  path     int true "event type ID"
// @Param        request body     request.EventTypeRequest true "request body"
// @Success      200     {object} domain.EventType
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /event-types/{typeID} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEventType(ctx *gin.Context) {
	typeID, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.EventTypeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	eventType := eventTypeFromRequest(req)
	eventType.ID = typeID

	updated, err := h.svc.UpdateEventType(ctx.Request.Context(), eventType)
	if err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "ID", typeID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEventType -> h.svc.UpdateEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEventType godoc
// @Summary      Delete an event type
// @Tags         events
// @Produce      json
// @Param        typeID path     int true "event type ID"
// @Success      204
// @Failure      400    {object} response.Err
// @Failure      404    {object} response.Err
// @Failure      500    {object} response.Err
// @Router       /event-types/{typeID} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEventType(ctx *gin.Context) {
	typeID, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteEventType(ctx.Request.Context(), typeID); err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "ID", typeID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEventType -> h.svc.DeleteEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body     request.EventRequest true "request body"
// @Success      201     {object} domain.Event
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		SerialNumber:   req.SerialNumber,
		Name:           req.Name,
		ResultCategory: req.ResultCategory,
		EventTypeID:    req.EventTypeID,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "ID", req.EventTypeID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListEvents godoc
// @Summary      List events in program order
// @Tags         events
// @Produce      json
// @Success      200 {array}  domain.Event
// @Failure      500 {object} response.Err
// @Router       /events [get]
// @Security     BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        eventID path     int true "event ID"
// @Success      200     {object} domain.Event
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /events/{eventID} [get]
// @Security     BearerAuth
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID path     int true "event ID"
// @Param        request body     request.EventRequest true "request body"
// @Success      200     {object} domain.Event
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /events/{eventID} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.EventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:             eventID,
		SerialNumber:   req.SerialNumber,
		Name:           req.Name,
		ResultCategory: req.ResultCategory,
		EventTypeID:    req.EventTypeID,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "ID", req.EventTypeID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        eventID path     int true "event ID"
// @Success      204
// @Failure      400     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /events/{eventID} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListResultCategories godoc
// @Summary      List distinct result categories
// @Tags         events
// @Produce      json
// @Success      200 {array}  string
// @Failure      500 {object} response.Err
// @Router       /events/categories [get]
// @Security     BearerAuth
func (h *EventHandler) HandleListResultCategories(ctx *gin.Context) {
	categories, err := h.svc.ListResultCategories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListResultCategories -> h.svc.ListResultCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func eventTypeFromRequest(req request.EventTypeRequest) domain.EventType {
	scores := make([]domain.ScoreRule, 0, len(req.Scores))
	for _, rule := range req.Scores {
		scores = append(scores, domain.ScoreRule{
			Position: rule.Position,
			Points:   rule.Points,
		})
	}

	return domain.EventType{
		Name:      req.Name,
		IsGroup:   req.IsGroup,
		IsOnstage: req.IsOnstage,
		Scores:    scores,
	}
}
