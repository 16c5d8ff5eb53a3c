// Package artifact persists and reloads the tabular views produced by a
// pipeline run as CSV files with fixed column layouts.
package artifact

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/skyroute/route-analytics/internal/domain"
)

// Artifact file names.
const (
	BusiestRoutesFile     = "busiest_routes.csv"
	RouteRevenueFile      = "route_revenue.csv"
	RouteSummaryFile      = "route_summary.csv"
	RecommendedRoutesFile = "recommended_routes.csv"
	BreakevenFile         = "breakeven_top5.csv"
	IssueLogFile          = "issue_log.csv"
)

// Column layouts, fixed per view.
var (
	busiestColumns = []string{"round_trip_id", "completed_round_trips"}
	revenueColumns = []string{"round_trip_id", "total_revenue"}
	summaryColumns = []string{
		"round_trip_id", "completed_round_trips", "total_revenue",
		"on_time_arr_rate", "operating_cost", "operating_profit",
	}
	recommendedColumns = append(append([]string{}, summaryColumns...),
		"operating_profit_z", "completed_round_trips_z", "on_time_arr_rate_z", "score")
	breakevenColumns = append(append([]string{}, recommendedColumns...),
		"profit_per_round_trip", "round_trips_to_breakeven")
	issueColumns = []string{"column", "value", "issue", "count"}
)

// Writer writes the run's views under a processed-data directory and the
// issue log under a docs directory. It implements usecase.Sink.
type Writer struct {
	processedDir string
	docsDir      string
	log          zerolog.Logger
}

// NewWriter creates a Writer. The target directories are created on first write.
func NewWriter(processedDir, docsDir string, log zerolog.Logger) *Writer {
	return &Writer{
		processedDir: processedDir,
		docsDir:      docsDir,
		log:          log,
	}
}

// WriteBusiestRoutes writes the top busiest-routes view.
func (w *Writer) WriteBusiestRoutes(ctx context.Context, rows []domain.RouteCompletion) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{r.RouteKey, strconv.Itoa(r.CompletedRoundTrips)}
	}
	return w.writeCSV(w.processedDir, BusiestRoutesFile, busiestColumns, records)
}

// WriteRouteRevenue writes the per-route revenue view.
func (w *Writer) WriteRouteRevenue(ctx context.Context, rows []domain.RouteRevenue) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{r.RouteKey, formatFloat(r.TotalRevenue)}
	}
	return w.writeCSV(w.processedDir, RouteRevenueFile, revenueColumns, records)
}

// WriteRouteSummary writes the joined route-summary view.
func (w *Writer) WriteRouteSummary(ctx context.Context, rows []domain.RouteSummary) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = summaryRecord(r)
	}
	return w.writeCSV(w.processedDir, RouteSummaryFile, summaryColumns, records)
}

// WriteRecommendedRoutes writes the composite-score recommendation view.
func (w *Writer) WriteRecommendedRoutes(ctx context.Context, rows []domain.RankedRoute) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = rankedRecord(r)
	}
	return w.writeCSV(w.processedDir, RecommendedRoutesFile, recommendedColumns, records)
}

// WriteBreakeven writes the breakeven view over the recommended routes.
func (w *Writer) WriteBreakeven(ctx context.Context, rows []domain.BreakevenRoute) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = append(rankedRecord(r.RankedRoute),
			formatFloat(r.ProfitPerRoundTrip),
			formatFloat(r.RoundTripsToBreakeven),
		)
	}
	return w.writeCSV(w.processedDir, BreakevenFile, breakevenColumns, records)
}

// WriteIssueLog writes the data-quality issue log. An empty log still
// produces a file with a header so reruns overwrite stale logs.
func (w *Writer) WriteIssueLog(ctx context.Context, rows []domain.QualityIssue) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{r.Column, r.Value, r.Issue, strconv.Itoa(r.Count)}
	}
	return w.writeCSV(w.docsDir, IssueLogFile, issueColumns, records)
}

// summaryRecord renders a route summary row. A nil on-time rate renders as
// an empty cell, never a synthesized number.
func summaryRecord(r domain.RouteSummary) []string {
	rate := ""
	if r.OnTimeArrRate != nil {
		rate = formatFloat(*r.OnTimeArrRate)
	}
	return []string{
		r.RouteKey,
		strconv.Itoa(r.CompletedRoundTrips),
		formatFloat(r.TotalRevenue),
		rate,
		formatFloat(r.OperatingCost),
		formatFloat(r.OperatingProfit),
	}
}

// rankedRecord renders a ranked route row.
func rankedRecord(r domain.RankedRoute) []string {
	return append(summaryRecord(r.RouteSummary),
		formatFloat(r.OperatingProfitZ),
		formatFloat(r.CompletedRoundTripsZ),
		formatFloat(r.OnTimeArrRateZ),
		formatFloat(r.Score),
	)
}

// formatFloat renders a float with the shortest representation that
// round-trips, keeping reruns byte-for-byte identical.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeCSV writes a header plus records to dir/name, creating dir as needed.
func (w *Writer) writeCSV(dir, name string, columns []string, records [][]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	w.log.Debug().Str("artifact", path).Int("rows", len(records)).Msg("Artifact written")
	return nil
}
