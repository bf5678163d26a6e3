package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 헬스 체크
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	status := "ok"
	code := http.StatusOK

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	ctx.JSON(code, gin.H{"status": status})
}
