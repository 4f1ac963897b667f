package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/teamboard/internal/api/http"
	"github.com/spec-kit/teamboard/internal/api/http/handlers"
	"github.com/spec-kit/teamboard/internal/config"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/observability"
	"github.com/spec-kit/teamboard/internal/persistence"
	"github.com/spec-kit/teamboard/internal/repository"
	"github.com/spec-kit/teamboard/internal/service"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/worker"
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher(logger)
	classifier := status.NewClassifier(
		status.WithLogger(logger),
		status.WithStrictDates(cfg.Board.StrictDates),
	)
	deps := repositories(pg)
	deps.Dispatcher = dispatcher
	deps.Cache = persistence.NewCache(redis, cfg.App.Name+":", cfg.Redis.CacheTTL(), logger)
	deps.Classifier = classifier
	deps.Logger = logger

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	boardService := service.NewBoardService(deps, cfg.Board.HolidayWindowDays)
	worker.StartSubscribers(notificationService, boardService)

	metrics := observability.NewMetrics()
	app := httptransport.NewApp(cfg.App.Name, logger, metrics, cfg.App.RequestTimeout(), httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Tickets:        handlers.NewTicketsHandler(service.NewTicketService(deps)),
		Projects:       handlers.NewProjectsHandler(service.NewProjectService(deps)),
		Members:        handlers.NewMembersHandler(service.NewMemberService(deps)),
		Certifications: handlers.NewCertificationsHandler(service.NewCertificationService(deps), classifier),
		Board:          handlers.NewBoardHandler(boardService),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// repositories picks postgres repositories when a pool exists and in-memory ones otherwise.
func repositories(pg *persistence.Postgres) service.Dependencies {
	if !pg.Enabled() {
		return service.Dependencies{
			TicketRepo:        repository.NewMemoryTicketRepository(),
			ProjectRepo:       repository.NewMemoryProjectRepository(),
			MemberRepo:        repository.NewMemoryMemberRepository(),
			CertificationRepo: repository.NewMemoryCertificationRepository(),
			HolidayRepo:       repository.NewMemoryHolidayRepository(),
		}
	}
	pool := pg.PoolHandle()
	return service.Dependencies{
		TicketRepo:        repository.NewTicketRepository(pool),
		ProjectRepo:       repository.NewProjectRepository(pool),
		MemberRepo:        repository.NewMemberRepository(pool),
		CertificationRepo: repository.NewCertificationRepository(pool),
		HolidayRepo:       repository.NewHolidayRepository(pool),
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
