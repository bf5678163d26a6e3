package controller

import (
	"errors"
	"strconv"

	"goldenbell_backend/internal/repository"
	"goldenbell_backend/internal/service"
	"goldenbell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// @Summary 문제 목록
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param course query string false "코스"
// @Param month query int false "월"
// @Param difficulty query string false "난이도"
// @Param topic query string false "주제"
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	filter := repository.QuestionFilter{
		Course:     ctx.Query("course"),
		Difficulty: ctx.Query("difficulty"),
		Topic:      ctx.Query("topic"),
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			filter.Month = month
		}
	}

	questions, err := c.QuestionService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary 문제 상세
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "문제 ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	question, err := c.QuestionService.Get(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, question)
}
