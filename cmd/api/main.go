package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/org-directory/internal/api/http"
	"github.com/spec-kit/org-directory/internal/api/http/handlers"
	"github.com/spec-kit/org-directory/internal/auth"
	"github.com/spec-kit/org-directory/internal/config"
	"github.com/spec-kit/org-directory/internal/directory"
	"github.com/spec-kit/org-directory/internal/events"
	"github.com/spec-kit/org-directory/internal/observability"
	"github.com/spec-kit/org-directory/internal/persistence"
	"github.com/spec-kit/org-directory/internal/repository"
	"github.com/spec-kit/org-directory/internal/roster"
	"github.com/spec-kit/org-directory/internal/service"
	"github.com/spec-kit/org-directory/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
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

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var employeeRepo repository.EmployeeRepository
	if pg.Enabled() {
		employeeRepo = repository.NewEmployeeRepository(pg.PoolHandle())
	}

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger))

	directorySvc := service.NewDirectoryService(directoryOptions(cfg.Directory), service.DirectoryDependencies{
		Source:       rosterSource(cfg, employeeRepo),
		EmployeeRepo: employeeRepo,
		Dispatcher:   dispatcher,
		Metrics:      metrics,
		Logger:       logger,
	})
	popupSvc := service.NewPopupService(cfg.Popup.IDs, cfg.Popup.Location(), service.PopupDependencies{
		Flags:      repository.NewPopupFlagRepository(redis.Client),
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.Directory.FetchTimeout())
	if err := directorySvc.Load(loadCtx); err != nil {
		logger.Error("initial roster load failed; serving status only until reload", zap.Error(err))
	}
	loadCancel()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, directorySvc, pg, redis),
		Directory:      handlers.NewDirectoryHandler(directorySvc),
		Popups:         handlers.NewPopupHandler(popupSvc),
		Admin:          handlers.NewAdminHandler(directorySvc, logger),
		Metrics:        handlers.NewMetricsHandler(metrics),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func directoryOptions(cfg config.DirectoryConfig) directory.Options {
	return directory.Options{
		OrgPrefix:           cfg.OrgPrefix,
		StripOrgPrefix:      cfg.StripOrgPrefix,
		IncludeMobile:       cfg.IncludeMobile,
		ExtensionOfficeCode: cfg.ExtensionOfficeCode,
		LabelPhone:          cfg.LabelPhone,
		LabelExtension:      cfg.LabelExtension,
	}
}

func rosterSource(cfg *config.Config, employees repository.EmployeeRepository) roster.Source {
	switch cfg.Directory.Source {
	case config.SourceURL:
		return roster.HTTPSource{URL: cfg.Directory.DataURL, Timeout: cfg.Directory.FetchTimeout()}
	case config.SourcePostgres:
		return roster.PostgresSource{Repo: employees}
	default:
		return roster.FileSource{Path: cfg.Directory.DataPath}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
