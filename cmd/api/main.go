package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/emergency-care/internal/api/http"
	"github.com/spec-kit/emergency-care/internal/api/http/handlers"
	"github.com/spec-kit/emergency-care/internal/auth"
	"github.com/spec-kit/emergency-care/internal/config"
	"github.com/spec-kit/emergency-care/internal/events"
	"github.com/spec-kit/emergency-care/internal/observability"
	"github.com/spec-kit/emergency-care/internal/persistence"
	"github.com/spec-kit/emergency-care/internal/repository"
	"github.com/spec-kit/emergency-care/internal/service"
	"github.com/spec-kit/emergency-care/internal/worker"
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
	hospitalRepo := repository.NewHospitalRepository(pool)
	historyRepo := repository.NewSymptomHistoryRepository(pool)
	actionRepo := repository.NewEmergencyActionRepository(pool)

	sessions := auth.NewSessionStore(redis.Client, cfg.Auth.SessionTTL())
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo, sessions)
	triageService := service.NewTriageService(historyRepo, actionRepo, dispatcher)
	emergencyService := service.NewEmergencyService(actionRepo, dispatcher)
	hospitalService := service.NewHospitalService(hospitalRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessions)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, authMiddleware),
		Profile:        handlers.NewProfileHandler(authService),
		Triage:         handlers.NewTriageHandler(triageService),
		Emergency:      handlers.NewEmergencyHandler(emergencyService),
		Hospitals:      handlers.NewHospitalHandler(hospitalService),
		Tips:           handlers.NewTipsHandler(),
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
