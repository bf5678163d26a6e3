// @title 골든벨 천문퀴즈 API
// @version 1.0
// @description 어린이 천문학 퀴즈 서비스의 백엔드 서버.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"goldenbell_backend/internal/app"
	"goldenbell_backend/internal/config"
	"goldenbell_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
