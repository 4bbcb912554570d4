package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"customer-service/internal/database"
	"customer-service/internal/logging"
	"customer-service/internal/repositories"
	"customer-service/internal/server"
	"customer-service/internal/services"
	"customer-service/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer closer.Close()

	db, err := database.Initialize(cfg, log)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		return err
	}
	defer db.Close()

	tracer, shutdownTracing := telemetry.Setup(cfg.Telemetry, cfg.Server.ProjectVersion)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("failed to shutdown tracer provider", "error", err)
		}
	}()

	srv := server.New(cfg, server.Dependencies{
		DB:        db,
		Customers: services.NewCustomerService(repositories.NewCustomerRepository(db.DB)),
		Tokens:    services.NewTokenService(&cfg.JWT),
		Logger:    services.NewCustomerLogger(log),
		Metrics:   services.NewPrometheusMetrics(),
		Tracer:    tracer,
		Gatherer:  prometheus.DefaultGatherer,
	}, log)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
