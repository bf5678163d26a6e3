package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldenbell_backend/internal/config"
	"goldenbell_backend/internal/controller"
	"goldenbell_backend/internal/repository"
	"goldenbell_backend/internal/service"
	"goldenbell_backend/pkg/database"
	"goldenbell_backend/pkg/logger"
	"goldenbell_backend/pkg/monitoring"
	"goldenbell_backend/pkg/security"
	"goldenbell_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user     *repository.UserRepository
	question *repository.QuestionRepository
	attempt  *repository.AttemptRepository
	stats    *repository.StatsRepository
	plan     *repository.DailyPlanRepository
	badge    *repository.BadgeRepository
}

type services struct {
	auth     *service.AuthService
	question *service.QuestionService
	attempt  *service.AttemptService
	plan     *service.DailyPlanService
	badge    *service.BadgeService
	stats    *service.StatsService
	explain  *service.ExplainService
}

type controllers struct {
	auth     *controller.AuthController
	question *controller.QuestionController
	attempt  *controller.AttemptController
	plan     *controller.DailyPlanController
	badge    *controller.BadgeController
	stats    *controller.StatsController
	explain  *controller.ExplainController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		question: repository.NewQuestionRepository(db),
		attempt:  repository.NewAttemptRepository(db),
		stats:    repository.NewStatsRepository(db),
		plan:     repository.NewDailyPlanRepository(db),
		badge:    repository.NewBadgeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, repos.stats, repos.badge, db, cfg)
	s.question = service.NewQuestionService(repos.question)
	s.badge = service.NewBadgeService(repos.badge, repos.attempt, repos.stats, repos.question)
	s.attempt = service.NewAttemptService(repos.question, repos.attempt, repos.stats, repos.plan, s.badge, db)
	s.plan = service.NewDailyPlanService(repos.question, repos.plan, repos.stats, db)
	s.stats = service.NewStatsService(repos.stats, repos.attempt, repos.question, repos.user, rdb)
	s.explain = service.NewExplainService(cfg.AI)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		question: controller.NewQuestionController(s.question),
		attempt:  controller.NewAttemptController(s.attempt),
		plan:     controller.NewDailyPlanController(s.plan),
		badge:    controller.NewBadgeController(s.badge),
		stats:    controller.NewStatsController(s.stats),
		explain:  controller.NewExplainController(s.explain),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Seed.QuestionsPath != "" {
		if err := database.SeedQuestions(db, cfg.Seed.QuestionsPath); err != nil {
			logger.Log.Warn("Question seeding skipped", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 랭킹 캐시만 영향받으므로 redis 없이도 기동한다
		logger.Log.Warn("Failed to initialize redis, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("goldenbell-quiz", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 종료 시그널을 기다렸다가 5초 타임아웃으로 정리
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
