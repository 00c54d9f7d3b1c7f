package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	specpkg "github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/api"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/api"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/auth"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/catalog"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/config"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/database"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/record"
	"github.com/TheNoah-BaseApps/legal-app-new-legal-21211dbc/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(startCtx, cfg.DatabaseURL, database.WithMaxConns(cfg.DBMaxConns))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(startCtx, db.Pool()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database schema up to date")
	}

	registry, err := catalog.NewRegistry(db.Pool(), record.WithMaxLimit(cfg.MaxPageSize))
	if err != nil {
		return err
	}

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(auth.NewRepository(db.Pool()), issuer, cfg.BcryptCost)

	exporter, err := newExporter(registry)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.RouterDeps{
		DBPinger:    db,
		Version:     cfg.Version,
		OpenAPISpec: specpkg.OpenAPISpec,
		AuthService: authService,
		Records:     registry.All(),
		Stats:       report.NewStatsService(db.Pool()),
		Exporter:    exporter,
		LoginRate:   cfg.LoginRate,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting legal practice server", "port", cfg.Port, "version", cfg.Version, "recordTypes", len(registry.Names()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// newExporter wires the record types offered for bulk export.
func newExporter(registry *catalog.Registry) (*report.Exporter, error) {
	var sources []record.Repository
	for _, name := range []string{catalog.Customers, catalog.Cases, catalog.Engagements} {
		repo, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("export source %q is not registered", name)
		}
		sources = append(sources, repo)
	}
	return report.NewExporter(sources...), nil
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
