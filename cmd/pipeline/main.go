// Package main runs one pass of the quarterly route aggregation pipeline.
// It reads the raw quarter data, derives the route views, and writes the
// CSV artifacts the views server exposes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/skyroute/route-analytics/internal/adapter/artifact"
	"github.com/skyroute/route-analytics/internal/adapter/ingest"
	"github.com/skyroute/route-analytics/internal/config"
	"github.com/skyroute/route-analytics/internal/infrastructure/logger"
	"github.com/skyroute/route-analytics/internal/quality"
	"github.com/skyroute/route-analytics/internal/usecase"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "route-analytics-pipeline",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("year", cfg.Quarter.Year).
		Int("quarter", cfg.Quarter.Quarter).
		Str("raw_dir", cfg.Data.RawDir).
		Msg("Configuration loaded")

	// Interrupts cancel the run; no partial artifacts survive a failed stage.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := ingest.NewReader(cfg.Data.RawDir, cfg.Quarter.Year, cfg.Quarter.Quarter, log.Logger)
	sink := artifact.NewWriter(cfg.Data.ProcessedDir, cfg.Data.DocsDir, log.Logger)
	checker := quality.NewChecker()

	pipeline := usecase.NewPipeline(source, sink, checker, usecase.Config{
		OnTimeThresholdMin: cfg.Analysis.OnTimeThresholdMin,
		WeightProfit:       cfg.Analysis.WeightProfit,
		WeightCompletion:   cfg.Analysis.WeightCompletion,
		WeightPunctuality:  cfg.Analysis.WeightPunctuality,
		OperatingCost:      cfg.Analysis.OperatingCost,
		AircraftCost:       cfg.Analysis.AircraftCost,
		TopRecommended:     cfg.Analysis.TopRecommended,
		TopBusiest:         cfg.Analysis.TopBusiest,
	}, log.Logger)

	result, err := pipeline.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Pipeline run failed")
	}

	log.Info().
		Str("run_id", result.RunID).
		Int("routes", len(result.Summary)).
		Int("recommended", len(result.Recommended)).
		Int("issues", len(result.Issues)).
		Msg("Pipeline run complete")
}
