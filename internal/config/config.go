// Package config provides configuration management for the prop edge pipeline.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	StatsAPI StatsAPIConfig `mapstructure:"stats_api" validate:"required"`
	OddsAPI  OddsAPIConfig  `mapstructure:"odds_api" validate:"required"`
	Model    ModelConfig    `mapstructure:"model" validate:"required"`
	Pipeline PipelineConfig `mapstructure:"pipeline" validate:"required"`
	Slate    SlateConfig    `mapstructure:"slate" validate:"required"`
	Report   ReportConfig   `mapstructure:"report" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
	Schedule ScheduleConfig `mapstructure:"schedule" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
	Timezone    string `mapstructure:"timezone" validate:"required,timezone"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// StatsAPIConfig represents the player stats provider configuration
type StatsAPIConfig struct {
	BaseURL            string  `mapstructure:"base_url" validate:"required,url"`
	APIKey             string  `mapstructure:"api_key" validate:"required"`
	TimeoutSeconds     int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	Season             int     `mapstructure:"season" validate:"required,gte=2000"`
	PageSize           int     `mapstructure:"page_size" validate:"required,gt=0,lte=100"`
}

// OddsAPIConfig represents The Odds API configuration
type OddsAPIConfig struct {
	BaseURL            string   `mapstructure:"base_url" validate:"required,url"`
	APIKey             string   `mapstructure:"api_key" validate:"required"`
	Sport              string   `mapstructure:"sport" validate:"required"`
	Regions            string   `mapstructure:"regions" validate:"required"`
	OddsFormat         string   `mapstructure:"odds_format" validate:"required,oneof=american decimal"`
	TimeoutSeconds     int      `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RateLimitPerSecond float64  `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
	CacheTTLSeconds    int      `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	BookPriority       []string `mapstructure:"book_priority" validate:"required,min=2"`
}

// ModelConfig represents the minutes model artifact and spread parameters
type ModelConfig struct {
	MinutesArtifactPath string  `mapstructure:"minutes_artifact_path" validate:"required"`
	MaxMinutes          float64 `mapstructure:"max_minutes" validate:"required,gt=0,lte=48"`
	AlphaFloor          float64 `mapstructure:"alpha_floor" validate:"required,gt=0"`
	AlphaFallback       float64 `mapstructure:"alpha_fallback" validate:"required,gt=0"`
}

// PipelineConfig represents feature window and run configuration
type PipelineConfig struct {
	Stats          []string `mapstructure:"stats" validate:"required,min=1,stattypes"`
	RollingWindow  int      `mapstructure:"rolling_window" validate:"required,gt=1"`
	ShortWindow    int      `mapstructure:"short_window" validate:"required,gt=0"`
	MinWindowGames int      `mapstructure:"min_window_games" validate:"required,gt=0"`
	HistoryDays    int      `mapstructure:"history_days" validate:"required,gt=0"`
}

// SlateConfig represents slate selection constraints
type SlateConfig struct {
	MaxPicks     int `mapstructure:"max_picks" validate:"required,gt=0"`
	MaxUnders    int `mapstructure:"max_unders" validate:"required,gte=0"`
	MaxPerPlayer int `mapstructure:"max_per_player" validate:"required,gt=0"`
}

// ReportConfig represents report output configuration
type ReportConfig struct {
	OutputDir   string `mapstructure:"output_dir" validate:"required"`
	ArchiveDir  string `mapstructure:"archive_dir" validate:"required"`
	TitlePrefix string `mapstructure:"title_prefix" validate:"required"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// ScheduleConfig represents daemon-mode scheduling configuration
type ScheduleConfig struct {
	Cron           string `mapstructure:"cron" validate:"required"`
	TimeoutMinutes int    `mapstructure:"timeout_minutes" validate:"required,gt=0"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the configured local timezone. Props are filtered to
// "today" in this zone before scoring.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// OddsTimeout returns the per-call timeout for odds fetches
func (c *OddsAPIConfig) OddsTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StatsTimeout returns the per-call timeout for stats fetches
func (c *StatsAPIConfig) StatsTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
