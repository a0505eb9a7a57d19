package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	apphttp "github.com/abdulwahed-sweden/e-commerce-backend/internal/http"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/service"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store/drivers/sqlite"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/jwtx"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/slogx"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Application owns the process lifecycle: configuration, database, services,
// HTTP server, and graceful shutdown.
type Application struct {
	cfg    Config
	logger *slog.Logger
	store  store.Store

	auth    *service.AuthService
	catalog *service.CatalogService

	server *http.Server
}

// New builds a fully wired Application from environment configuration.
func New() (*Application, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	a := &Application{cfg: cfg}
	a.logger = slogx.New(slogx.Config{
		Service: "e-commerce-backend",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
	})

	if err := a.initDatabase(); err != nil {
		return nil, err
	}
	a.initServices()
	a.initHTTP()

	return a, nil
}

func (a *Application) initDatabase() error {
	st, err := sqlite.NewStore(a.cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return fmt.Errorf("apply migrations: %w", err)
	}

	a.store = st
	return nil
}

func (a *Application) initServices() {
	codec := jwtx.NewCodec(
		[]byte(a.cfg.AuthSecret),
		"e-commerce-backend",
		a.cfg.AccessTokenTTL,
		a.cfg.RefreshTokenTTL,
	)

	a.auth = &service.AuthService{
		Store:      a.store,
		Codec:      codec,
		BcryptCost: a.cfg.BcryptCost,
	}
	a.catalog = &service.CatalogService{Store: a.store}
}

func (a *Application) initHTTP() {
	router := &apphttp.Router{
		Logger:  a.logger,
		Store:   a.store,
		Auth:    a.auth,
		Catalog: a.catalog,
	}
	router.ApplyRoutes()

	a.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run seeds demo data when enabled, then serves until the context is
// cancelled, at which point it drains in-flight requests.
func (a *Application) Run(ctx context.Context) error {
	if a.cfg.SeedDemoData {
		if err := a.seedDemoData(ctx); err != nil {
			_ = a.store.Close()
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return a.store.Close()
}
