package domain

// RouteCompletion is one row of the route completion aggregate: how many
// completed round trips a route flew during the quarter. A completed round
// trip is the minimum of the two directional leg counts for the route.
type RouteCompletion struct {
	RouteKey            string `json:"round_trip_id"`
	CompletedRoundTrips int    `json:"completed_round_trips"`
}

// RouteRevenue is one row of the route revenue aggregate: summed ticket
// revenue for an undirected route.
type RouteRevenue struct {
	RouteKey     string  `json:"round_trip_id"`
	TotalRevenue float64 `json:"total_revenue"`
}

// RouteSummary joins completion, revenue, and punctuality into one row per
// route. It is the single source of truth consumed by ranking and by the
// presentation views.
type RouteSummary struct {
	RouteKey            string `json:"round_trip_id"`
	CompletedRoundTrips int    `json:"completed_round_trips"`

	// TotalRevenue is 0 when the route had no matching tickets (join miss)
	TotalRevenue float64 `json:"total_revenue"`

	// OnTimeArrRate is the mean on-time arrival rate over the route's valid
	// legs, in [0, 1]. It stays nil when no legs existed to measure.
	OnTimeArrRate *float64 `json:"on_time_arr_rate"`

	OperatingCost   float64 `json:"operating_cost"`
	OperatingProfit float64 `json:"operating_profit"`
}

// RankedRoute is a route summary extended with standardized metrics and the
// weighted composite score used to rank recommendations.
type RankedRoute struct {
	RouteSummary

	OperatingProfitZ     float64 `json:"operating_profit_z"`
	CompletedRoundTripsZ float64 `json:"completed_round_trips_z"`
	OnTimeArrRateZ       float64 `json:"on_time_arr_rate_z"`
	Score                float64 `json:"score"`
}

// BreakevenRoute is a ranked route extended with the per-round-trip profit
// and the number of round trips needed to offset the fixed aircraft cost.
// Division-by-zero and undefined results are normalized to 0.
type BreakevenRoute struct {
	RankedRoute

	ProfitPerRoundTrip    float64 `json:"profit_per_round_trip"`
	RoundTripsToBreakeven float64 `json:"round_trips_to_breakeven"`
}

// QualityIssue is one row of the data-quality issue log, keyed by
// (column/value, issue, count). The core never consumes the log; it is a
// sibling artifact for the data-quality collaborator.
type QualityIssue struct {
	Column string `json:"column,omitempty"`
	Value  string `json:"value,omitempty"`
	Issue  string `json:"issue"`
	Count  int    `json:"count"`
}

// RunResult holds every derived table produced by a single pipeline run.
// Each run recomputes everything from scratch; nothing is merged with
// prior runs.
type RunResult struct {
	// RunID uniquely identifies this pipeline run
	RunID string

	// Completions is the full completion aggregate, completions desc
	Completions []RouteCompletion

	// Busiest is the top-N view of Completions for presentation
	Busiest []RouteCompletion

	// Revenues is the full revenue aggregate, route key asc
	Revenues []RouteRevenue

	// Summary is the joined route summary, completions desc
	Summary []RouteSummary

	// MostProfitable is the top-N view of Summary by raw operating profit
	MostProfitable []RouteSummary

	// Recommended is the top-K composite-score ranking
	Recommended []RankedRoute

	// Breakeven extends Recommended with breakeven metrics
	Breakeven []BreakevenRoute

	// Issues is the data-quality issue log for the run
	Issues []QualityIssue
}
