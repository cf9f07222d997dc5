package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ThellaPrasanthi/complain-system/internal/api/http"
	"github.com/ThellaPrasanthi/complain-system/internal/api/http/handlers"
	"github.com/ThellaPrasanthi/complain-system/internal/auth"
	"github.com/ThellaPrasanthi/complain-system/internal/config"
	"github.com/ThellaPrasanthi/complain-system/internal/domain"
	"github.com/ThellaPrasanthi/complain-system/internal/events"
	"github.com/ThellaPrasanthi/complain-system/internal/observability"
	"github.com/ThellaPrasanthi/complain-system/internal/persistence"
	"github.com/ThellaPrasanthi/complain-system/internal/repository"
	"github.com/ThellaPrasanthi/complain-system/internal/service"
	"github.com/ThellaPrasanthi/complain-system/internal/worker"
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

	var userStore repository.UserStore
	var complaintRepo repository.ComplaintRepository
	if pool != nil {
		userStore = repository.NewUserStore(pool)
		complaintRepo = repository.NewComplaintRepository(pool)
	} else {
		logger.Warn("running with in-memory stores; data will not survive restarts")
		userStore = repository.NewMemoryUserStore(
			domain.User{Username: "admin", Password: cfg.Auth.SeedAdminPassword, Role: domain.RoleAdmin},
			domain.User{Username: "user", Password: cfg.Auth.SeedUserPassword, Role: domain.RoleUser},
		)
		complaintRepo = repository.NewMemoryComplaintStore()
	}

	limiter := auth.NewLoginLimiter(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginAttemptWindow())
	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserStore: userStore,
		Limiter:   limiter,
	})
	authMiddleware := auth.NewMiddleware(authService.TokenManager())

	dispatcher := events.NewInMemoryDispatcher()
	complaintService := service.NewComplaintService(complaintRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{DisableStartupMessage: cfg.App.Env == "production"})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService)
	complaintsHandler := handlers.NewComplaintsHandler(complaintService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		Complaints:     complaintsHandler,
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
