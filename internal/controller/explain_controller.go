package controller

import (
	"errors"
	"net/http"

	"goldenbell_backend/internal/service"
	"goldenbell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExplainController struct {
	ExplainService *service.ExplainService
}

func NewExplainController(explainService *service.ExplainService) *ExplainController {
	return &ExplainController{ExplainService: explainService}
}

// @Summary AI 해설
// @Description 채점된 문제에 대한 선생님 해설 생성
// @Tags explain
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/explain [post]
func (c *ExplainController) Explain(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ExplainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "문제와 정답이 필요합니다")
		return
	}

	explanation, err := c.ExplainService.Explain(req)
	if err != nil {
		if errors.Is(err, service.ErrExplainUnavailable) {
			util.Error(ctx, http.StatusBadGateway, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"explanation": explanation})
}
