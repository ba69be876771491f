package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nvelez/clientbridge-backend/internal/kvstore"
	"github.com/nvelez/clientbridge-backend/internal/logger"
	"github.com/nvelez/clientbridge-backend/internal/observability"
)

type App struct {
	Log      *logger.Logger
	Store    kvstore.Store
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
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

	store, err := kvstore.Resolve(log, cfg.Store)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init kv store: %w", err)
	}

	metrics := observability.NewMetrics()
	store = instrumentStore(store, metrics)

	reposet := wireRepos(store, log)

	serviceset, err := wireServices(log, cfg, reposet)
	if err != nil {
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, serviceset)
	middleware := wireMiddleware(log, serviceset)
	router := wireRouter(log, cfg, handlerset, middleware, metrics)

	return &App{
		Log:      log,
		Store:    store,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Metrics:  metrics,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil && a.Log != nil {
			a.Log.Warn("Store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
