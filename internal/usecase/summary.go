package usecase

import (
	"sort"

	"github.com/skyroute/route-analytics/internal/domain"
)

// BuildRouteSummary left-joins the completion aggregate with the revenue
// aggregate and the per-route mean on-time arrival rate, keyed on route key.
//
// Join semantics:
//   - revenue miss: TotalRevenue = 0 (the route sold no sampled tickets)
//   - punctuality miss: OnTimeArrRate stays nil (no legs existed to measure;
//     a rate of 0 or 1 would be synthesized data)
//
// OperatingProfit = TotalRevenue - operatingCost for every row. The result
// keeps the completion aggregate's ordering (completions descending, route
// key ascending) and is the single source of truth for ranking and for the
// presentation views.
func BuildRouteSummary(
	completions []domain.RouteCompletion,
	revenues []domain.RouteRevenue,
	legs domain.LegTable,
	operatingCost float64,
) []domain.RouteSummary {
	revenueByRoute := make(map[string]float64, len(revenues))
	for _, r := range revenues {
		revenueByRoute[r.RouteKey] = r.TotalRevenue
	}

	rateByRoute := onTimeArrivalRates(legs)

	result := make([]domain.RouteSummary, len(completions))
	for i, c := range completions {
		revenue := revenueByRoute[c.RouteKey]
		result[i] = domain.RouteSummary{
			RouteKey:            c.RouteKey,
			CompletedRoundTrips: c.CompletedRoundTrips,
			TotalRevenue:        revenue,
			OnTimeArrRate:       rateByRoute[c.RouteKey],
			OperatingCost:       operatingCost,
			OperatingProfit:     revenue - operatingCost,
		}
	}

	return result
}

// TopProfitable returns the n summary rows with the highest raw operating
// profit, ties broken by route key ascending. This is an independent
// presentation ranking, not derived from the composite score.
func TopProfitable(summary []domain.RouteSummary, n int) []domain.RouteSummary {
	sorted := make([]domain.RouteSummary, len(summary))
	copy(sorted, summary)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OperatingProfit != sorted[j].OperatingProfit {
			return sorted[i].OperatingProfit > sorted[j].OperatingProfit
		}
		return sorted[i].RouteKey < sorted[j].RouteKey
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// onTimeArrivalRates computes the mean on-time arrival rate per route over
// valid legs. Routes without valid legs are absent from the map, which the
// summary join surfaces as a nil rate.
func onTimeArrivalRates(legs domain.LegTable) map[string]*float64 {
	onTime := make(map[string]int)
	total := make(map[string]int)

	for _, l := range legs.Legs {
		if !l.IsValid() {
			continue
		}
		total[l.RouteKey]++
		if l.OnTimeArr {
			onTime[l.RouteKey]++
		}
	}

	rates := make(map[string]*float64, len(total))
	for key, n := range total {
		rate := float64(onTime[key]) / float64(n)
		rates[key] = &rate
	}
	return rates
}
