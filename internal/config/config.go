// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Data     DataConfig
	Quarter  QuarterConfig
	Analysis AnalysisConfig
	Server   ServerConfig
	Logging  LoggingConfig
	App      AppConfig
}

// DataConfig holds the input and output directory layout.
type DataConfig struct {
	RawDir       string `env:"DATA_RAW_DIR" envDefault:"data/raw"`
	ProcessedDir string `env:"DATA_PROCESSED_DIR" envDefault:"data/processed"`
	DocsDir      string `env:"DATA_DOCS_DIR" envDefault:"docs"`
}

// QuarterConfig scopes the analysis to one fare quarter.
type QuarterConfig struct {
	Year    int `env:"FARE_YEAR" envDefault:"2019"`
	Quarter int `env:"FARE_QUARTER" envDefault:"1"`
}

// AnalysisConfig holds the analysis policy. Defaults reproduce the standard
// quarterly report: zero-minute on-time threshold, 0.5/0.3/0.2 weighting,
// zero cost assumptions, top 5 recommendations, top 10 raw rankings.
type AnalysisConfig struct {
	OnTimeThresholdMin float64 `env:"ONTIME_THRESHOLD_MIN" envDefault:"0"`
	WeightProfit       float64 `env:"WEIGHT_PROFIT" envDefault:"0.5"`
	WeightCompletion   float64 `env:"WEIGHT_COMPLETION" envDefault:"0.3"`
	WeightPunctuality  float64 `env:"WEIGHT_PUNCTUALITY" envDefault:"0.2"`
	OperatingCost      float64 `env:"OPERATING_COST" envDefault:"0"`
	AircraftCost       float64 `env:"AIRCRAFT_COST" envDefault:"0"`
	TopRecommended     int     `env:"TOP_RECOMMENDED" envDefault:"5"`
	TopBusiest         int     `env:"TOP_BUSIEST" envDefault:"10"`
}

// ServerConfig holds HTTP server settings for the views server.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Data.RawDir == "" {
		return fmt.Errorf("DATA_RAW_DIR must not be empty")
	}
	if cfg.Data.ProcessedDir == "" {
		return fmt.Errorf("DATA_PROCESSED_DIR must not be empty")
	}
	if cfg.Data.DocsDir == "" {
		return fmt.Errorf("DATA_DOCS_DIR must not be empty")
	}

	if cfg.Quarter.Quarter < 1 || cfg.Quarter.Quarter > 4 {
		return fmt.Errorf("FARE_QUARTER must be between 1 and 4, got %d", cfg.Quarter.Quarter)
	}

	if cfg.Analysis.WeightProfit < 0 || cfg.Analysis.WeightCompletion < 0 || cfg.Analysis.WeightPunctuality < 0 {
		return fmt.Errorf("scoring weights must not be negative")
	}
	weightSum := cfg.Analysis.WeightProfit + cfg.Analysis.WeightCompletion + cfg.Analysis.WeightPunctuality
	if math.Abs(weightSum-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %g", weightSum)
	}
	if cfg.Analysis.TopRecommended < 1 {
		return fmt.Errorf("TOP_RECOMMENDED must be at least 1, got %d", cfg.Analysis.TopRecommended)
	}
	if cfg.Analysis.TopBusiest < 1 {
		return fmt.Errorf("TOP_BUSIEST must be at least 1, got %d", cfg.Analysis.TopBusiest)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
