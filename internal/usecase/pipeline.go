package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skyroute/route-analytics/internal/domain"
)

// Config holds the analysis policy for a pipeline run. Every previously
// implicit constant (on-time threshold, scoring weights, cost assumptions,
// view sizes) is an explicit, overridable field.
type Config struct {
	// OnTimeThresholdMin is the delay in minutes up to which a leg still
	// counts as on time.
	OnTimeThresholdMin float64

	// WeightProfit is the composite-score weight of the profit z-score.
	WeightProfit float64

	// WeightCompletion is the composite-score weight of the completion z-score.
	WeightCompletion float64

	// WeightPunctuality is the composite-score weight of the punctuality z-score.
	WeightPunctuality float64

	// OperatingCost is the fixed per-route operating cost subtracted from revenue.
	OperatingCost float64

	// AircraftCost is the fixed cost the breakeven metric amortizes.
	AircraftCost float64

	// TopRecommended is the number of routes selected by composite score.
	TopRecommended int

	// TopBusiest is the number of routes in the raw presentation rankings.
	TopBusiest int
}

// DefaultConfig returns the standard analysis policy: zero-minute on-time
// threshold, 0.5/0.3/0.2 weighting, zero cost assumptions, top 5
// recommendations, and top 10 raw rankings.
func DefaultConfig() Config {
	return Config{
		OnTimeThresholdMin: 0,
		WeightProfit:       0.5,
		WeightCompletion:   0.3,
		WeightPunctuality:  0.2,
		OperatingCost:      0,
		AircraftCost:       0,
		TopRecommended:     5,
		TopBusiest:         10,
	}
}

// Source supplies the cleaned input tables for a pipeline run.
// A missing required input surfaces as a wrapped domain.ErrMissingArtifact.
type Source interface {
	// Flights returns the quarter's flight legs with column-presence flags.
	Flights(ctx context.Context) (domain.LegTable, error)

	// Tickets returns the quarter's ticket itineraries.
	Tickets(ctx context.Context) (domain.TicketTable, error)

	// Airports returns the airport reference table.
	Airports(ctx context.Context) ([]domain.Airport, error)
}

// Sink persists the derived tables produced by a pipeline run.
type Sink interface {
	WriteBusiestRoutes(ctx context.Context, rows []domain.RouteCompletion) error
	WriteRouteRevenue(ctx context.Context, rows []domain.RouteRevenue) error
	WriteRouteSummary(ctx context.Context, rows []domain.RouteSummary) error
	WriteRecommendedRoutes(ctx context.Context, rows []domain.RankedRoute) error
	WriteBreakeven(ctx context.Context, rows []domain.BreakevenRoute) error
	WriteIssueLog(ctx context.Context, rows []domain.QualityIssue) error
}

// QualityChecker produces the data-quality issue log for a run. The core
// never consumes the log; it is written as a sibling artifact.
type QualityChecker interface {
	Check(legs domain.LegTable, airports []domain.Airport) []domain.QualityIssue
}

// Pipeline sequences the aggregation stages over fully materialized tables.
// Execution is single-threaded and barrier-style: every stage consumes the
// complete output of the previous one. Re-running with identical inputs
// reproduces identical tables.
type Pipeline struct {
	source  Source
	sink    Sink
	checker QualityChecker
	cfg     Config
	log     zerolog.Logger
}

// NewPipeline creates a pipeline over the given source and sink.
// The checker may be nil, in which case the issue log is written empty.
func NewPipeline(source Source, sink Sink, checker QualityChecker, cfg Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		source:  source,
		sink:    sink,
		checker: checker,
		cfg:     cfg,
		log:     log,
	}
}

// Run executes one full pipeline pass and writes every artifact.
// It returns the in-memory result tables. Any missing input or failed write
// is fatal: no partial, best-effort output is produced.
func (p *Pipeline) Run(ctx context.Context) (*domain.RunResult, error) {
	runID := uuid.NewString()
	log := p.log.With().Str("run_id", runID).Logger()

	log.Info().Msg("Pipeline run started")

	flights, err := p.source.Flights(ctx)
	if err != nil {
		return nil, fmt.Errorf("load flights: %w", err)
	}
	tickets, err := p.source.Tickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	airports, err := p.source.Airports(ctx)
	if err != nil {
		return nil, fmt.Errorf("load airports: %w", err)
	}
	log.Info().
		Int("flights", len(flights.Legs)).
		Int("tickets", len(tickets.Tickets)).
		Int("airports", len(airports)).
		Msg("Inputs loaded")

	var issues []domain.QualityIssue
	if p.checker != nil {
		issues = p.checker.Check(flights, airports)
		log.Info().Int("issues", len(issues)).Msg("Data-quality checks completed")
	}

	flights.Legs = NormalizeLegs(flights.Legs)
	flights = ClassifyPunctuality(flights, p.cfg.OnTimeThresholdMin)

	completions := AggregateCompletions(flights)
	busiest := TopBusiest(completions, p.cfg.TopBusiest)
	log.Info().Int("routes", len(completions)).Msg("Route completions aggregated")

	revenues := AggregateRevenue(tickets)
	log.Info().Int("routes", len(revenues)).Msg("Route revenue aggregated")

	summary := BuildRouteSummary(completions, revenues, flights, p.cfg.OperatingCost)
	ranked := RankRoutes(summary, p.cfg)
	recommended := SelectRecommended(ranked, p.cfg.TopRecommended)
	breakeven := DeriveBreakeven(recommended, p.cfg.AircraftCost)
	mostProfitable := TopProfitable(summary, p.cfg.TopBusiest)
	log.Info().Int("recommended", len(recommended)).Msg("Routes ranked")

	result := &domain.RunResult{
		RunID:          runID,
		Completions:    completions,
		Busiest:        busiest,
		Revenues:       revenues,
		Summary:        summary,
		MostProfitable: mostProfitable,
		Recommended:    recommended,
		Breakeven:      breakeven,
		Issues:         issues,
	}

	if err := p.writeArtifacts(ctx, result); err != nil {
		return nil, err
	}

	log.Info().Msg("Pipeline run completed")
	return result, nil
}

// writeArtifacts persists every view of the run result through the sink.
func (p *Pipeline) writeArtifacts(ctx context.Context, result *domain.RunResult) error {
	if err := p.sink.WriteIssueLog(ctx, result.Issues); err != nil {
		return fmt.Errorf("write issue log: %w", err)
	}
	if err := p.sink.WriteBusiestRoutes(ctx, result.Busiest); err != nil {
		return fmt.Errorf("write busiest routes: %w", err)
	}
	if err := p.sink.WriteRouteRevenue(ctx, result.Revenues); err != nil {
		return fmt.Errorf("write route revenue: %w", err)
	}
	if err := p.sink.WriteRouteSummary(ctx, result.Summary); err != nil {
		return fmt.Errorf("write route summary: %w", err)
	}
	if err := p.sink.WriteRecommendedRoutes(ctx, result.Recommended); err != nil {
		return fmt.Errorf("write recommended routes: %w", err)
	}
	if err := p.sink.WriteBreakeven(ctx, result.Breakeven); err != nil {
		return fmt.Errorf("write breakeven: %w", err)
	}
	return nil
}
