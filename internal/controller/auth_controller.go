package controller

import (
	"errors"

	"goldenbell_backend/internal/service"
	"goldenbell_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Password string `json:"password" binding:"required,min=4"`
}

type loginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// @Summary 회원가입
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req signupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "이름(2자 이상)과 비밀번호(4자 이상)를 입력해주세요")
		return
	}

	user, err := c.AuthService.Signup(req.Name, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrNameTaken) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, userResponse{ID: user.ID, Name: user.Name})
}

// @Summary 로그인
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "이름과 비밀번호를 입력해주세요")
		return
	}

	token, user, err := c.AuthService.Login(req.Name, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  userResponse{ID: user.ID, Name: user.Name},
	})
}

// @Summary 내 프로필
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GetUser(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, userResponse{ID: user.ID, Name: user.Name})
}
