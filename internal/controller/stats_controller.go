package controller

import (
	"strconv"

	"goldenbell_backend/internal/service"
	"goldenbell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// @Summary 학습 통계
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/stats [get]
func (c *StatsController) GetOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.StatsService.GetOverview(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// @Summary 랭킹
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "반환 수" default(10)
// @Success 200 {object} util.Response
// @Router /api/stats/leaderboard [get]
func (c *StatsController) GetLeaderboard(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	rows, err := c.StatsService.GetLeaderboard(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary 오답노트
// @Description 마지막 오답 이후 정답을 맞히지 못한 문제 목록
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/wrong [get]
func (c *StatsController) GetWrongNote(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.StatsService.GetWrongNote(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions": questions,
		"count":     len(questions),
	})
}
