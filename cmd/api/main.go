package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/agenciaflow/backoffice/internal/api/http"
	"github.com/agenciaflow/backoffice/internal/api/http/handlers"
	"github.com/agenciaflow/backoffice/internal/auth"
	"github.com/agenciaflow/backoffice/internal/cache"
	"github.com/agenciaflow/backoffice/internal/config"
	"github.com/agenciaflow/backoffice/internal/events"
	"github.com/agenciaflow/backoffice/internal/integration/n8n"
	"github.com/agenciaflow/backoffice/internal/observability"
	"github.com/agenciaflow/backoffice/internal/persistence"
	"github.com/agenciaflow/backoffice/internal/repository"
	"github.com/agenciaflow/backoffice/internal/service"
	"github.com/agenciaflow/backoffice/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	leadRepo := repository.NewLeadRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	managerRepo := repository.NewManagerRepository(pool)
	adAccountRepo := repository.NewAdAccountRepository(pool)
	trainingRepo := repository.NewTrainingRepository(pool)
	scheduleRepo := repository.NewReportScheduleRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	leadCache := cache.NewRedisLeadCache(redis.Client)

	feedbackService := service.NewFeedbackService(service.FeedbackDependencies{
		LeadRepo:   leadRepo,
		LeadCache:  leadCache,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	accountService := service.NewAccountService(accountRepo)
	managerService := service.NewManagerService(managerRepo, cfg.Auth.BcryptCost)
	authService := service.NewAuthService(*cfg, managerRepo)
	adAccountService := service.NewAdAccountService(adAccountRepo, accountRepo, dispatcher)
	trainingService := service.NewTrainingService(trainingRepo)

	n8nClient := n8n.NewClient(cfg.N8N)
	if !n8nClient.Configured() {
		logger.Warn("n8n webhook not configured, scheduled reports will fail to dispatch")
	}
	reportService := service.NewReportService(scheduleRepo, accountRepo, n8nClient, dispatcher, logger)

	notifications := service.NewNotificationService(dispatcher, logger)
	notifications.RegisterHandlers()

	worker.StartReportWorker(ctx, reportService, cfg.N8N.PollInterval(), logger)

	metrics := observability.NewMetrics()
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), managerRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Leads:          handlers.NewLeadsHandler(feedbackService, managerService),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Managers:       handlers.NewManagersHandler(authService, managerService),
		Integrations:   handlers.NewIntegrationsHandler(adAccountService),
		Training:       handlers.NewTrainingHandler(trainingService),
		Reports:        handlers.NewReportsHandler(reportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
