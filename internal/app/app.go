package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/chinook-backend/internal/data/db"
	"github.com/yungbote/chinook-backend/internal/http"
	httpH "github.com/yungbote/chinook-backend/internal/http/handlers"
	"github.com/yungbote/chinook-backend/internal/observability"
	"github.com/yungbote/chinook-backend/internal/platform/logger"
	"github.com/yungbote/chinook-backend/web"
)

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Cfg      Config
	Repos    Repos
	Services Services
	Server   *http.Server

	otelShutdown func(context.Context) error
}

func New(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	dbs, err := db.NewService(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := dbs.AutoMigrateAll(); err != nil {
			_ = dbs.Close()
			return nil, err
		}
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)
	metrics := observability.Init(log)

	a := &App{
		Log:          log,
		DB:           dbs,
		Cfg:          cfg,
		otelShutdown: otelShutdown,
	}
	if err := a.build(dbs.DB(), dbs, metrics); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build(gdb *gorm.DB, pinger httpH.Pinger, metrics *observability.Metrics) error {
	static, err := web.Static()
	if err != nil {
		return fmt.Errorf("load static assets: %w", err)
	}
	a.Repos = wireRepos(gdb, a.Log)
	a.Services = wireServices(gdb, a.Log, a.Repos)
	handlers := wireHandlers(a.Log, a.Services, pinger)
	a.Server = http.NewServer(routerConfig(a.Cfg, a.Log, handlers, metrics, static), a.Cfg.ShutdownTimeout)
	return nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(ctx, ":"+a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		a.otelShutdown = nil
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && a.Log != nil {
			a.Log.Warn("database close failed", "error", err)
		}
		a.DB = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

// Migrate creates or updates the schema and exits.
func Migrate(cfg Config, log *logger.Logger) error {
	dbs, err := db.NewService(cfg.DB, log)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer dbs.Close()
	return dbs.AutoMigrateAll()
}
