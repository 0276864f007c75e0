// Package main provides the entry point for the stats ingestion job.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/database"
	"github.com/yourusername/prop-edge/internal/logger"
	"github.com/yourusername/prop-edge/internal/nbastats"
	"github.com/yourusername/prop-edge/internal/repository"
	"github.com/yourusername/prop-edge/internal/service"
)

var (
	configFile string
	sinceDays  int
	initSchema bool

	cfg *config.Config
	app *logrus.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().IntVar(&sinceDays, "since-days", 0, "Sync game logs from this many days back (default: pipeline history window)")
	rootCmd.Flags().BoolVar(&initSchema, "init-schema", false, "Create tables and indexes before syncing")
}

var rootCmd = &cobra.Command{
	Use:   "data-ingestion",
	Short: "Sync player game logs and rosters into PostgreSQL",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
			region := os.Getenv("AWS_REGION")
			secretName := os.Getenv("AWS_SECRET_NAME")
			if region == "" || secretName == "" {
				return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
			}
			if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
				return fmt.Errorf("loading secrets: %w", err)
			}
		}

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		app = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runSync() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if initSchema {
		if err := db.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		app.Info("Schema ensured")
	}

	source := nbastats.NewClient(cfg.StatsAPI, app)
	defer source.Close()

	repos := repository.NewRepositories(db)
	ingestion := service.NewIngestionService(source, repos, service.NewDataValidator(app), app, 500)

	days := sinceDays
	if days <= 0 {
		days = cfg.Pipeline.HistoryDays
	}
	since := time.Now().AddDate(0, 0, -days)

	stats, err := ingestion.Sync(ctx, since)
	if err != nil {
		app.WithError(err).Error("Ingestion failed")
		return err
	}

	fmt.Printf("Synced %s\n", stats)
	return nil
}
