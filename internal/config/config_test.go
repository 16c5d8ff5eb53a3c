package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Data layout defaults
	assert.Equal(t, "data/raw", cfg.Data.RawDir, "default raw dir")
	assert.Equal(t, "data/processed", cfg.Data.ProcessedDir, "default processed dir")
	assert.Equal(t, "docs", cfg.Data.DocsDir, "default docs dir")

	// Quarter defaults
	assert.Equal(t, 2019, cfg.Quarter.Year, "default fare year")
	assert.Equal(t, 1, cfg.Quarter.Quarter, "default fare quarter")

	// Analysis policy defaults
	assert.Equal(t, 0.0, cfg.Analysis.OnTimeThresholdMin, "default on-time threshold")
	assert.Equal(t, 0.5, cfg.Analysis.WeightProfit, "default profit weight")
	assert.Equal(t, 0.3, cfg.Analysis.WeightCompletion, "default completion weight")
	assert.Equal(t, 0.2, cfg.Analysis.WeightPunctuality, "default punctuality weight")
	assert.Equal(t, 0.0, cfg.Analysis.OperatingCost, "default operating cost")
	assert.Equal(t, 0.0, cfg.Analysis.AircraftCost, "default aircraft cost")
	assert.Equal(t, 5, cfg.Analysis.TopRecommended, "default recommendation count")
	assert.Equal(t, 10, cfg.Analysis.TopBusiest, "default raw ranking size")

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "10s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"DATA_RAW_DIR":         "/tmp/raw",
		"FARE_YEAR":            "2020",
		"FARE_QUARTER":         "3",
		"ONTIME_THRESHOLD_MIN": "15",
		"WEIGHT_PROFIT":        "0.6",
		"WEIGHT_COMPLETION":    "0.3",
		"WEIGHT_PUNCTUALITY":   "0.1",
		"AIRCRAFT_COST":        "90000000",
		"TOP_RECOMMENDED":      "3",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "console",
		"APP_ENV":              "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/raw", cfg.Data.RawDir)
	assert.Equal(t, 2020, cfg.Quarter.Year)
	assert.Equal(t, 3, cfg.Quarter.Quarter)
	assert.Equal(t, 15.0, cfg.Analysis.OnTimeThresholdMin)
	assert.Equal(t, 0.6, cfg.Analysis.WeightProfit)
	assert.Equal(t, 90000000.0, cfg.Analysis.AircraftCost)
	assert.Equal(t, 3, cfg.Analysis.TopRecommended)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

// TestLoad_ValidationErrors tests that invalid values are rejected.
func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{
			name: "quarter out of range",
			vars: map[string]string{"FARE_QUARTER": "5"},
		},
		{
			name: "negative weight",
			vars: map[string]string{"WEIGHT_PROFIT": "-0.5", "WEIGHT_COMPLETION": "1.0", "WEIGHT_PUNCTUALITY": "0.5"},
		},
		{
			name: "weights not summing to one",
			vars: map[string]string{"WEIGHT_PROFIT": "0.5", "WEIGHT_COMPLETION": "0.5", "WEIGHT_PUNCTUALITY": "0.5"},
		},
		{
			name: "zero recommendation count",
			vars: map[string]string{"TOP_RECOMMENDED": "0"},
		},
		{
			name: "empty raw dir",
			vars: map[string]string{"DATA_RAW_DIR": ""},
		},
		{
			name: "invalid server port",
			vars: map[string]string{"SERVER_PORT": "0"},
		},
		{
			name: "invalid log level",
			vars: map[string]string{"LOG_LEVEL": "verbose"},
		},
		{
			name: "invalid app env",
			vars: map[string]string{"APP_ENV": "qa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"FARE_QUARTER": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_IsDevelopment tests the IsDevelopment helper method.
func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"staging", false},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"DATA_RAW_DIR",
		"DATA_PROCESSED_DIR",
		"DATA_DOCS_DIR",
		"FARE_YEAR",
		"FARE_QUARTER",
		"ONTIME_THRESHOLD_MIN",
		"WEIGHT_PROFIT",
		"WEIGHT_COMPLETION",
		"WEIGHT_PUNCTUALITY",
		"OPERATING_COST",
		"AIRCRAFT_COST",
		"TOP_RECOMMENDED",
		"TOP_BUSIEST",
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
