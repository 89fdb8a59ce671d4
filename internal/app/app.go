package app

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/relearnhq/relearn-backend/internal/db"
	httppkg "github.com/relearnhq/relearn-backend/internal/http"
	"github.com/relearnhq/relearn-backend/internal/observability"
	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/utils"
)

const serviceName = "relearn-backend"

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *httppkg.Server
	Cfg      Config
	Repos    Repos
	Services Services

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitTracing(context.Background(), log, observability.Config{
		ServiceName: serviceName,
		Environment: cfg.Environment,
	})

	dbService, err := db.New(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	theDB := dbService.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet)
	handlerset := wireHandlers(log, serviceset)

	tracingService := ""
	if utils.GetEnvAsBool("OTEL_ENABLED", false, log) {
		tracingService = serviceName
	}
	server := wireServer(log, handlerset, tracingService)

	return &App{
		Log:          log,
		DB:           theDB,
		Server:       server,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		_ = a.otelShutdown(context.Background())
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
