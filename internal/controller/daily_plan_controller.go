package controller

import (
	"errors"
	"strconv"
	"time"

	"goldenbell_backend/internal/service"
	"goldenbell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DailyPlanController struct {
	PlanService *service.DailyPlanService
}

func NewDailyPlanController(planService *service.DailyPlanService) *DailyPlanController {
	return &DailyPlanController{PlanService: planService}
}

// @Summary 오늘의 학습
// @Description 현재 일차와 그 일차에 배정된 문제 목록
// @Tags daily-plan
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/daily [get]
func (c *DailyPlanController) GetCurrentDay(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	status, err := c.PlanService.GetCurrentDay(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, status)
}

// @Summary 플랜 시작
// @Description 24일 학습 플랜 생성. 이미 시작한 플랜이 있으면 실패
// @Tags daily-plan
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /api/daily [post]
func (c *DailyPlanController) StartPlan(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	status, err := c.PlanService.StartPlan(claims.UserID, time.Now())
	if err != nil {
		if errors.Is(err, util.ErrPlanAlreadyStarted) {
			util.BadRequest(ctx, err.Error())
			return
		}
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, status)
}

// @Summary 일차 다시 풀기
// @Description 해당 일차의 해결 플래그를 초기화한다
// @Tags daily-plan
// @Produce json
// @Security ApiKeyAuth
// @Param day path int true "일차 (1..24)"
// @Success 200 {object} util.Response
// @Router /api/daily/{day}/reset [post]
func (c *DailyPlanController) ResetDay(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	day, err := strconv.Atoi(ctx.Param("day"))
	if err != nil {
		util.BadRequest(ctx, "일차 번호가 올바르지 않습니다")
		return
	}

	if err := c.PlanService.ResetDay(claims.UserID, day); err != nil {
		switch {
		case errors.Is(err, util.ErrPlanDayOutOfRange):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrPlanNotStarted):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"day": day})
}
