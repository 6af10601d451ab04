package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialhub_backend/internal/config"
	"socialhub_backend/internal/controller"
	"socialhub_backend/internal/repository"
	"socialhub_backend/internal/service"
	"socialhub_backend/pkg/database"
	"socialhub_backend/pkg/logger"
	"socialhub_backend/pkg/monitoring"
	"socialhub_backend/pkg/security"
	"socialhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user         *repository.UserRepository
	post         *repository.PostRepository
	comment      *repository.CommentRepository
	friendship   *repository.FriendshipRepository
	notification *repository.NotificationRepository
	message      *repository.MessageRepository
	settings     *repository.SettingsRepository
	suggestion   *repository.SuggestionRepository
}

type services struct {
	storage      *service.StorageService
	presence     *service.PresenceService
	auth         *service.AuthService
	notification *service.NotificationService
	feed         *service.FeedService
	friendship   *service.FriendshipService
	message      *service.MessageService
	messageHub   *service.MessageHub
	assistant    *service.AssistantService
	user         *service.UserService
	admin        *service.AdminService
	suggestion   *service.SuggestionService
}

type controllers struct {
	auth         *controller.AuthController
	feed         *controller.FeedController
	friendship   *controller.FriendshipController
	notification *controller.NotificationController
	message      *controller.MessageController
	assistant    *controller.AssistantController
	user         *controller.UserController
	admin        *controller.AdminController
	suggestion   *controller.SuggestionController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		post:         repository.NewPostRepository(db),
		comment:      repository.NewCommentRepository(db),
		friendship:   repository.NewFriendshipRepository(db, rdb),
		notification: repository.NewNotificationRepository(db),
		message:      repository.NewMessageRepository(db),
		settings:     repository.NewSettingsRepository(db),
		suggestion:   repository.NewSuggestionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.presence = service.NewPresenceService(repos.user, rdb)
	s.auth = service.NewAuthService(repos.user, s.presence, cfg)
	s.notification = service.NewNotificationService(repos.notification, repos.settings)
	s.feed = service.NewFeedService(repos.post, repos.comment, repos.user, repos.friendship, s.notification, s.storage)
	s.friendship = service.NewFriendshipService(repos.friendship, repos.user, s.notification)
	s.messageHub = service.NewMessageHub()
	s.message = service.NewMessageService(repos.message, repos.user, s.messageHub)
	s.assistant = service.NewAssistantService(cfg.Assistant)
	s.user = service.NewUserService(repos.user, repos.settings, s.storage)
	s.admin = service.NewAdminService(repos.user, repos.post, repos.suggestion)
	s.suggestion = service.NewSuggestionService(repos.suggestion)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		feed:         controller.NewFeedController(s.feed),
		friendship:   controller.NewFriendshipController(s.friendship),
		notification: controller.NewNotificationController(s.notification),
		message:      controller.NewMessageController(s.message, s.messageHub),
		assistant:    controller.NewAssistantController(s.assistant),
		user:         controller.NewUserController(s.user),
		admin:        controller.NewAdminController(s.admin),
		suggestion:   controller.NewSuggestionController(s.suggestion),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Redis 可选，关闭时在线状态与好友缓存退化为纯数据库实现
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
			log.Fatalf("Failed to initialize redis: %v", err)
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("socialhub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services, cfg)

	if cfg.Storage.Type == "local" {
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

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 断开所有 WebSocket 连接
	if a.services != nil && a.services.messageHub != nil {
		a.services.messageHub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
