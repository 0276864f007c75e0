// Package main provides the entry point for the prop edge pipeline.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/prop-edge/internal/config"
	"github.com/yourusername/prop-edge/internal/database"
	"github.com/yourusername/prop-edge/internal/health"
	"github.com/yourusername/prop-edge/internal/logger"
	"github.com/yourusername/prop-edge/internal/metrics"
	"github.com/yourusername/prop-edge/internal/minutes"
	"github.com/yourusername/prop-edge/internal/oddsapi"
	"github.com/yourusername/prop-edge/internal/report"
	"github.com/yourusername/prop-edge/internal/repository"
	"github.com/yourusername/prop-edge/internal/scheduler"
	"github.com/yourusername/prop-edge/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	daemonMode bool

	cfg *config.Config
	db  *database.DB
	app *logrus.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().BoolVar(&daemonMode, "daemon", false, "Run on the configured cron schedule instead of once")
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Score NBA player props against the minutes model and select a slate",
	Long: `Loads player game history from PostgreSQL, fetches today's player prop
markets, scores both sides of every line against the model and writes the
selected slate to an Excel report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if daemonMode {
			return runDaemon()
		}
		return runOnce()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pipeline %s (%s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func setup() error {
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
	app.WithFields(logrus.Fields{
		"version":     Version,
		"environment": cfg.App.Environment,
	}).Info("Prop edge pipeline starting")
	return nil
}

func buildPipeline(ctx context.Context) (*service.Pipeline, func(), error) {
	var err error
	db, err = database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	repos := repository.NewRepositories(db)

	odds := oddsapi.NewClient(cfg.OddsAPI, app)

	predictor, err := minutes.NewXGBPredictor(cfg.Model.MinutesArtifactPath, cfg.Model.MaxMinutes)
	if err != nil {
		db.Close()
		odds.Close()
		return nil, nil, err
	}

	writer := report.NewWriter(cfg.Report.OutputDir, cfg.Report.TitlePrefix)
	pipeline := service.NewPipeline(cfg, repos, odds, predictor, writer, app)

	cleanup := func() {
		odds.Close()
		db.Close()
	}
	return pipeline, cleanup, nil
}

func runOnce() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipeline, cleanup, err := buildPipeline(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := pipeline.Run(ctx)
	if err != nil {
		app.WithError(err).Error("Pipeline run failed")
		return err
	}

	for _, path := range result.ReportPaths {
		fmt.Printf("Report: %s\n", path)
	}
	return nil
}

func runDaemon() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipeline, cleanup, err := buildPipeline(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("loading timezone: %w", err)
	}

	healthServer := health.NewServer(health.Config{
		ServiceName: "prop-edge-pipeline",
		Version:     Version,
		Port:        os.Getenv("HEALTH_PORT"),
		Logger:      app,
		DB:          db,
	})
	if err := healthServer.Start(ctx); err != nil {
		return err
	}

	sched := scheduler.NewScheduler(pipeline, loc,
		time.Duration(cfg.Schedule.TimeoutMinutes)*time.Minute, app)
	sched.OnSuccess(func(result *service.RunResult) {
		healthServer.RecordRun(result.RunID, time.Now())
	})
	if err := sched.SchedulePipeline(cfg.Schedule.Cron); err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}
	healthServer.SetReady(true)
	app.WithField("next_run", sched.NextRun()).Info("Daemon running")

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, metrics.Handler())
		metricsServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				app.WithError(err).Error("Metrics server failed")
			}
		}()
		app.WithField("port", cfg.Metrics.Port).Info("Metrics server listening")
	}

	<-ctx.Done()
	app.Info("Shutting down")

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}
	return sched.Stop()
}
