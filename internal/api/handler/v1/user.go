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

type UserService interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUser(ctx context.Context, id uint) (domain.User, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) (domain.UserPage, error)
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleCreateUser godoc
// @Summary      Register a participant
// @Description  College accounts register their own participants; the admin passes college_id.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body     request.UserRequest true "request body"
// @Success      201     {object} domain.User
// @Failure      400     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /users [post]
// @Security     BearerAuth
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := userFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if !actor.IsAdmin() {
		user.CollegeID = actor.ID
	}
	if user.CollegeID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("college_id is required")))
		return
	}

	created, err := h.svc.CreateUser(ctx.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrUserPhoneExists) || errors.Is(err, service.ErrUserCapIDExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.CreateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetUser godoc
// @Summary      Get a participant
// @Tags         users
// @Produce      json
// @Param        userID path     int true "user ID"
// @Success      200    {object} domain.User
// @Failure      400    {object} response.Err
// @Failure      403    {object} response.Err
// @Failure      404    {object} response.Err
// @Failure      500    {object} response.Err
// @Router       /users/{userID} [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if !actor.IsAdmin() && user.CollegeID != actor.ID {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("participant belongs to another college")))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleListUsers godoc
// @Summary      List participants
// @Description  Supports search over name/phone, gender filter and pagination. College accounts see only their own participants.
// @Tags         users
// @Produce      json
// @Param        search     query    string false "name or phone substring"
// @Param        gender     query    string false "male or female"
// @Param        college_id query    int    false "college filter (admin only)"
// @Param        page       query    int    false "page, 1-based"
// @Param        limit      query    int    false "page size"
// @Success      200        {object} domain.UserPage
// @Failure      500        {object} response.Err
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	filter := domain.UserFilter{
		Search: ctx.Query("search"),
		Gender: ctx.Query("gender"),
		Page:   queryInt(ctx, "page", 1),
		Limit:  queryInt(ctx, "limit", 10),
	}

	if actor.IsAdmin() {
		filter.CollegeID = uint(queryInt(ctx, "college_id", 0))
	} else {
		filter.CollegeID = actor.ID
	}

	page, err := h.svc.ListUsers(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleUpdateUser godoc
// @Summary      Update a participant
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID  path     int true "user ID"
// @Param        request body     request.UserRequest true "request body"
// @Success      200     {object} domain.User
// @Failure      400     {object} response.Err
// @Failure      403     {object} response.Err
// @Failure      404     {object} response.Err
// @Failure      500     {object} response.Err
// @Router       /users/{userID} [put]
// @Security     BearerAuth
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	existing, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if !actor.IsAdmin() && existing.CollegeID != actor.ID {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("participant belongs to another college")))
		return
	}

	var req request.UserRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := userFromRequest(req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	user.ID = userID

	updated, err := h.svc.UpdateUser(ctx.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrUserPhoneExists) || errors.Is(err, service.ErrUserCapIDExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteUser godoc
// @Summary      Delete a participant
// @Tags         users
// @Produce      json
// @Param        userID path     int true "user ID"
// @Success      204
// @Failure      400    {object} response.Err
// @Failure      403    {object} response.Err
// @Failure      404    {object} response.Err
// @Failure      500    {object} response.Err
// @Router       /users/{userID} [delete]
// @Security     BearerAuth
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	actor, respErr := actorFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	existing, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if !actor.IsAdmin() && existing.CollegeID != actor.ID {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("participant belongs to another college")))
		return
	}

	if err = h.svc.DeleteUser(ctx.Request.Context(), userID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func userFromRequest(req request.UserRequest) (domain.User, error) {
	dob, err := req.ParseDOB()
	if err != nil {
		return domain.User{}, fmt.Errorf("invalid date format: %v", err)
	}

	return domain.User{
		Name:        req.Name,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Course:      req.Course,
		Semester:    req.Semester,
		YearOfStudy: req.YearOfStudy,
		CapID:       req.CapID,
		Image:       req.Image,
		DOB:         dob,
		CollegeID:   req.CollegeID,
	}, nil
}

func queryInt(ctx *gin.Context, name string, fallback int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
