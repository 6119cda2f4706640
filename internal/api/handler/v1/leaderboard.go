package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zonefest/zonefest-api/internal/api/handler/v1/response"
	"github.com/zonefest/zonefest-api/internal/domain"
	"github.com/zonefest/zonefest-api/internal/service"
)

type LeaderboardService interface {
	Latest(ctx context.Context) (domain.Leaderboard, bool, error)
	Recompute(ctx context.Context) (domain.Leaderboard, error)
}

type LeaderboardHandler struct {
	svc LeaderboardService
}

func NewLeaderboardHandler(svc LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		svc: svc,
	}
}

// HandleGetLeaderboard godoc
// @Summary      Get the latest leaderboard snapshot
// @Description  The stale field reports whether results changed since the snapshot was built.
// @Tags         leaderboard
// @Produce      json
// @Success      200 {object} response.LeaderboardResponse
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) HandleGetLeaderboard(ctx *gin.Context) {
	leaderboard, stale, err := h.svc.Latest(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrLeaderboardNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("leaderboard", "snapshot", "latest"))
			return
		}

		err = fmt.Errorf("v1.HandleGetLeaderboard -> h.svc.Latest -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LeaderboardResponse{
		Leaderboard: leaderboard,
		Stale:       stale,
	})
}

// HandleRefreshLeaderboard godoc
// @Summary      Force a leaderboard recompute
// @Tags         leaderboard
// @Produce      json
// @Success      200 {object} domain.Leaderboard
// @Failure      500 {object} response.Err
// @Router       /leaderboard/refresh [post]
// @Security     BearerAuth
func (h *LeaderboardHandler) HandleRefreshLeaderboard(ctx *gin.Context) {
	leaderboard, err := h.svc.Recompute(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleRefreshLeaderboard -> h.svc.Recompute -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, leaderboard)
}
