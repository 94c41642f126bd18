package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyhub_backend/internal/config"
	"studyhub_backend/internal/controller"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/database"
	"studyhub_backend/pkg/logger"
	"studyhub_backend/pkg/monitoring"
	"studyhub_backend/pkg/security"
	"studyhub_backend/pkg/tracing"

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
	group    *repository.GroupRepository
	quiz     *repository.QuizRepository
	note     *repository.NoteRepository
	resource *repository.ResourceRepository
	deadline *repository.DeadlineRepository
}

type services struct {
	auth     *service.AuthService
	storage  *service.StorageService
	group    *service.GroupService
	quiz     *service.QuizService
	note     *service.NoteService
	resource *service.ResourceService
	deadline *service.DeadlineService
	ai       *service.AIService
}

type controllers struct {
	auth     *controller.AuthController
	group    *controller.GroupController
	quiz     *controller.QuizController
	note     *controller.NoteController
	resource *controller.ResourceController
	deadline *controller.DeadlineController
	ai       *controller.AIController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		group:    repository.NewGroupRepository(db),
		quiz:     repository.NewQuizRepository(db),
		note:     repository.NewNoteRepository(db),
		resource: repository.NewResourceRepository(db),
		deadline: repository.NewDeadlineRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:     service.NewAuthService(repos.user, cfg),
		storage:  storage,
		group:    service.NewGroupService(repos.group, repos.user),
		quiz:     service.NewQuizService(repos.quiz, repos.group, rdb),
		note:     service.NewNoteService(repos.note, repos.group),
		resource: service.NewResourceService(repos.resource, repos.group, storage, rdb),
		deadline: service.NewDeadlineService(repos.deadline, repos.group),
		ai:       service.NewAIService(cfg.AI),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		group:    controller.NewGroupController(s.group),
		quiz:     controller.NewQuizController(s.quiz),
		note:     controller.NewNoteController(s.note),
		resource: controller.NewResourceController(s.resource),
		deadline: controller.NewDeadlineController(s.deadline),
		ai:       controller.NewAIController(s.ai, s.note),
		health:   controller.NewHealthController(db, rdb),
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

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 缓存不可用时降级，所有读写直达数据库
		logger.Log.Warn("Redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	svcs, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	ctrls := app.initControllers(svcs, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("studyhub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls, repos, cfg)

	if cfg.Storage.Type == "local" {
		if err := os.MkdirAll(cfg.Storage.LocalPath, os.ModePerm); err != nil {
			logger.Log.Fatal("Failed to create upload directory", zap.Error(err))
		}
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
