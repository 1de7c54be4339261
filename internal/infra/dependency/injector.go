// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/carbon-tracker/backend/config"
	"github.com/carbon-tracker/backend/internal/application/usecase/actuals"
	"github.com/carbon-tracker/backend/internal/application/usecase/metric"
	"github.com/carbon-tracker/backend/internal/application/usecase/replanning"
	"github.com/carbon-tracker/backend/internal/application/usecase/target"
	"github.com/carbon-tracker/backend/internal/application/usecase/variance"
	"github.com/carbon-tracker/backend/internal/infra/server/router"
	"github.com/carbon-tracker/backend/internal/integration/adapters"
	"github.com/carbon-tracker/backend/internal/integration/email"
	"github.com/carbon-tracker/backend/internal/integration/email/templates"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/carbon-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config             *config.Config
	DB                 *gorm.DB
	Redis              *redis.Client
	Router             *router.Router
	NotificationWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	targetRepo := persistence.NewTargetRepository(db)
	metricRepo := persistence.NewMetricRepository(db)
	metricTargetRepo := persistence.NewMetricTargetRepository(db)
	initiativeRepo := persistence.NewInitiativeRepository(db)
	monthlyTargetRepo := persistence.NewMonthlyTargetRepository(db)
	replanRepo := persistence.NewReplanningRepository(db)
	historyRepo := persistence.NewReplanningHistoryRepository(db)
	notificationQueueRepo := persistence.NewNotificationQueueRepository(db)

	// Create adapters/services
	redisClient, err := newRedisClient(&cfg.Redis)
	if err != nil {
		return nil, err
	}
	targetLock := adapters.NewRedisTargetLock(redisClient, cfg.Replanning.LockTTL)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Notification pipeline
	notifier := email.NewService(notificationQueueRepo, cfg.Notification.AppBaseURL)
	var notificationWorker *email.Worker
	if cfg.Notification.WorkerEnabled && cfg.Notification.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize notification templates: %w", err)
		}
		sender := email.NewResendClient(
			cfg.Notification.ResendAPIKey,
			cfg.Notification.FromName,
			cfg.Notification.FromEmail,
		)
		notificationWorker = email.NewWorker(notificationQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Notification.PollInterval,
			BatchSize:    cfg.Notification.BatchSize,
		})
	} else {
		slog.Info("Notification worker disabled")
	}

	// Create use cases
	createTargetUseCase := target.NewCreateTargetUseCase(targetRepo)
	getTargetUseCase := target.NewGetTargetUseCase(targetRepo, metricTargetRepo)
	listTargetsUseCase := target.NewListTargetsUseCase(targetRepo)
	listHistoryUseCase := target.NewListHistoryUseCase(targetRepo, historyRepo)

	applyReplanningUseCase := replanning.NewApplyReplanningUseCase(
		targetRepo,
		metricRepo,
		metricTargetRepo,
		initiativeRepo,
		replanRepo,
		targetLock,
		notifier,
		cfg.Notification.RecipientEmail,
		cfg.Notification.RecipientName,
	)
	rollbackUseCase := replanning.NewRollbackUseCase(
		historyRepo,
		targetRepo,
		replanRepo,
		targetLock,
		notifier,
		cfg.Notification.RecipientEmail,
		cfg.Notification.RecipientName,
	)

	recordActualUseCase := actuals.NewRecordActualUseCase(monthlyTargetRepo)
	varianceUseCase := variance.NewVarianceAnalysisUseCase(targetRepo, metricRepo, metricTargetRepo, monthlyTargetRepo)
	listMetricsUseCase := metric.NewListMetricsUseCase(metricRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	targetController := controller.NewTargetController(
		createTargetUseCase,
		getTargetUseCase,
		listTargetsUseCase,
		listHistoryUseCase,
	)
	replanningController := controller.NewReplanningController(applyReplanningUseCase, rollbackUseCase)
	actualsController := controller.NewActualsController(recordActualUseCase)
	varianceController := controller.NewVarianceController(varianceUseCase)
	metricController := controller.NewMetricController(listMetricsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var replanRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		replanRateLimiter = middleware.NewRateLimiterWithConfig(1000, cfg.Replanning.RateLimitWindow)
	} else {
		replanRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Replanning.RateLimit, cfg.Replanning.RateLimitWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		targetController,
		replanningController,
		actualsController,
		varianceController,
		metricController,
		replanRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:             cfg,
		DB:                 db,
		Redis:              redisClient,
		Router:             r,
		NotificationWorker: notificationWorker,
	}, nil
}

// newRedisClient builds the Redis client backing the per-target replan lock.
func newRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB
	return redis.NewClient(opts), nil
}
