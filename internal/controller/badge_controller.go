package controller

import (
	"goldenbell_backend/internal/service"
	"goldenbell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	BadgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{BadgeService: badgeService}
}

// @Summary 내 뱃지
// @Description 획득/미획득을 포함한 전체 뱃지 선반
// @Tags badges
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/badges [get]
func (c *BadgeController) GetUserBadges(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.BadgeService.GetUserBadges(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}
