package main

import (
	"database/sql"
	"fmt"

	"customer-service/internal/config"
	"customer-service/internal/database"
	"customer-service/internal/logging"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(mr *database.MigrationRunner) error {
				if err := mr.WaitForDatabase(); err != nil {
					return err
				}
				return mr.RunMigrations()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every applied migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(mr *database.MigrationRunner) error {
				return mr.Down()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(mr *database.MigrationRunner) error {
				version, dirty, err := mr.GetMigrationStatus()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

func withMigrationRunner(fn func(*database.MigrationRunner) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	log, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer closer.Close()

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return fn(database.NewMigrationRunner(db, cfg.Database.MigrationsPath, log))
}
