package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/insighthub/event-ingest-service/internal/config"
	"github.com/insighthub/event-ingest-service/internal/httpserver"
	"github.com/insighthub/event-ingest-service/internal/logging"
	"github.com/insighthub/event-ingest-service/internal/store"
)

// main boots the service: config → logger → DB → migrations → HTTP server.
func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("event-ingest"))

	// Connect to durable storage using a connection pool; fail fast when the
	// database is unreachable.
	db, err := store.New(context.Background(), cfg.Database.URL)
	if err != nil {
		logger.Error("failed to connect to database", logging.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Apply schema migrations so an empty database is enough to start.
	if err := store.Migrate(cfg.Database.URL); err != nil {
		logger.Error("failed to run migrations", logging.Error(err))
		os.Exit(1)
	}

	router := httpserver.NewRouter(cfg, db, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", logging.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", logging.Error(err))
	}
}
