package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"villabook/internal/api"
	"villabook/internal/booking"
	"villabook/internal/config"
	"villabook/internal/events"
	"villabook/internal/metrics"
	"villabook/internal/repository"
	"villabook/internal/storage"
)

func main() {
	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("VILLABOOK_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	store, err := openStore(cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open store error")
	}
	defer store.Close()

	metrics.Register()

	repo := repository.New(store, &logger)
	bus := events.NewEventBus()
	subscribeAuditLog(bus, &logger)
	svc := booking.NewService(repo, bus, &logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Monitoring.HealthCheckPort == 0 {
		cfg.Monitoring.HealthCheckPort = 8090
	}
	go startHealthServer(ctx, cfg.Monitoring.HealthCheckPort, &logger)

	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	if cfg.Backup.Enabled {
		backup := storage.NewBackupService(cfg.Storage.Path, cfg.Backup, &logger)
		go backup.Start(ctx)
	}

	logger.Info().Str("backend", cfg.Storage.Backend).Msg("villabook started")
	server := api.NewHTTPServer(cfg.Server.Port, svc, &logger)
	if err := server.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("api server error")
	}
}

func openStore(cfg *config.Config, logger *zerolog.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return storage.NewSQLiteStore(cfg.Storage.Path, logger)
	default:
		return storage.NewFileStore(cfg.Storage.Path, logger)
	}
}

func subscribeAuditLog(bus *events.EventBus, logger *zerolog.Logger) {
	handler := func(e events.Event) error {
		logger.Info().
			Str("event", e.Type).
			Str("id", e.Booking.ID).
			Str("phone", e.Booking.CustomerPhone).
			Msg("booking event")
		return nil
	}
	bus.Subscribe(events.TypeBookingCreated, handler)
	bus.Subscribe(events.TypeBookingUpdated, handler)
	bus.Subscribe(events.TypeBookingDeleted, handler)
}

func startHealthServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("health server error")
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
