package app

import (
	"goldenbell_backend/docs"
	"goldenbell_backend/internal/config"
	"goldenbell_backend/internal/middleware"
	"goldenbell_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 공개 라우트
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/signup", c.auth.Signup)
		public.POST("/login", c.auth.Login)
	}

	// 로그인 필요
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/questions", c.question.List)
		authGroup.GET("/questions/:id", c.question.Get)

		authGroup.POST("/attempt", c.attempt.Submit)

		authGroup.GET("/daily", c.plan.GetCurrentDay)
		authGroup.POST("/daily", c.plan.StartPlan)
		authGroup.POST("/daily/:day/reset", c.plan.ResetDay)

		authGroup.GET("/stats", c.stats.GetOverview)
		authGroup.GET("/stats/leaderboard", c.stats.GetLeaderboard)
		authGroup.GET("/wrong", c.stats.GetWrongNote)

		authGroup.GET("/badges", c.badge.GetUserBadges)

		authGroup.POST("/explain", c.explain.Explain)
	}
}
