package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Rexesezka/ServiceDesk1/internal/api/http"
	"github.com/Rexesezka/ServiceDesk1/internal/api/http/handlers"
	"github.com/Rexesezka/ServiceDesk1/internal/auth"
	"github.com/Rexesezka/ServiceDesk1/internal/config"
	"github.com/Rexesezka/ServiceDesk1/internal/events"
	"github.com/Rexesezka/ServiceDesk1/internal/ledger"
	"github.com/Rexesezka/ServiceDesk1/internal/observability"
	"github.com/Rexesezka/ServiceDesk1/internal/persistence"
	"github.com/Rexesezka/ServiceDesk1/internal/repository"
	"github.com/Rexesezka/ServiceDesk1/internal/service"
	"github.com/Rexesezka/ServiceDesk1/internal/worker"
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

	var loads ledger.Ledger
	if err := redis.Ping(ctx); err != nil {
		logger.Warn("redis unavailable; using in-memory load ledger", zap.Error(err))
		loads = ledger.NewMemory()
	} else {
		loads = ledger.NewRedis(redis.Client)
	}

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	officeRepo := repository.NewOfficeRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:       ticketRepo,
		StaffRepo:        staffRepo,
		OfficeRepo:       officeRepo,
		NotificationRepo: notificationRepo,
		Ledger:           loads,
		Dispatcher:       dispatcher,
		Logger:           logger,
	})
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger, cfg.Notification)
	directoryService := service.NewDirectoryService(staffRepo, cfg.Assignment.SupportRoleMarkers, logger)

	worker.StartNotificationWorker(notificationService)
	worker.StartDirectorySync(ctx, directoryService, cfg.Assignment.SyncInterval(), logger)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authMiddleware := auth.NewAuthMiddleware(tokenManager, staffRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
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
