package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/servicehub/internal/api/http"
	"github.com/spec-kit/servicehub/internal/api/http/handlers"
	"github.com/spec-kit/servicehub/internal/auth"
	"github.com/spec-kit/servicehub/internal/config"
	"github.com/spec-kit/servicehub/internal/events"
	"github.com/spec-kit/servicehub/internal/observability"
	"github.com/spec-kit/servicehub/internal/persistence"
	"github.com/spec-kit/servicehub/internal/repository"
	"github.com/spec-kit/servicehub/internal/service"
	"github.com/spec-kit/servicehub/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)
	professionalRepo := repository.NewProfessionalRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	profileService := service.NewProfileService(userRepo)
	presenceService := service.NewPresenceService(redis, cfg.Presence.PresenceTTL(), logger)
	requestService := service.NewRequestService(service.RequestDependencies{
		RequestRepo: requestRepo,
		Dispatcher:  dispatcher,
	})
	ratingService := service.NewRatingService(professionalRepo, dispatcher)
	discoveryService := service.NewDiscoveryService(professionalRepo)
	dashboardService := service.NewDashboardService(requestRepo, redis, cfg.Metrics.CacheTTL(), logger)
	messageService := service.NewMessageService(messageRepo, userRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService, profileService, presenceService),
		Requests:       handlers.NewRequestsHandler(requestService),
		Professionals:  handlers.NewProfessionalsHandler(ratingService, discoveryService, presenceService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		Messages:       handlers.NewMessagesHandler(messageService),
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
