package controller

import (
	"errors"

	"goldenbell_backend/internal/service"
	"goldenbell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

type attemptRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	UserAnswer string `json:"userAnswer"`
}

// @Summary 답안 제출
// @Description 답안을 채점하고 점수/콤보/뱃지를 갱신한다. 빈 답안은 건너뜀 처리
// @Tags attempts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/attempt [post]
func (c *AttemptController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req attemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "questionId가 필요합니다")
		return
	}

	result, err := c.AttemptService.SubmitAttempt(claims.UserID, req.QuestionID, req.UserAnswer)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
