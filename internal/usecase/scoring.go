package usecase

import (
	"math"
	"sort"

	"github.com/skyroute/route-analytics/internal/domain"
)

// RankRoutes standardizes the three ranking metrics and computes the weighted
// composite score for every route in the summary.
//
// Each metric (operating profit, completed round trips, on-time arrival rate)
// is z-scored against the population standard deviation (denominator N, not
// N-1) across all routes:
//
//	z = (value - mean) / std   when std > 0
//	z = 0                      when std is 0 or undefined
//
// A flat metric therefore contributes nothing to the ranking instead of
// causing a division error. Routes with a nil on-time rate are excluded from
// that metric's mean and standard deviation and score 0 on it.
//
//	Score = Wp*profitZ + Wc*completionZ + Wt*punctualityZ
//
// The result is sorted descending by score, stable, with route key ascending
// as the explicit tie-break so output ordering never depends on map
// iteration order.
//
// Behavior:
//   - Empty input returns an empty slice
//   - A single route scores 0 on every metric
//   - Does NOT mutate the input summary slice
func RankRoutes(summary []domain.RouteSummary, cfg Config) []domain.RankedRoute {
	profits := make([]float64, len(summary))
	completions := make([]float64, len(summary))
	rates := make([]float64, 0, len(summary))

	for i, s := range summary {
		profits[i] = s.OperatingProfit
		completions[i] = float64(s.CompletedRoundTrips)
		if s.OnTimeArrRate != nil {
			rates = append(rates, *s.OnTimeArrRate)
		}
	}

	profitMean, profitStd := populationStats(profits)
	completionMean, completionStd := populationStats(completions)
	rateMean, rateStd := populationStats(rates)

	result := make([]domain.RankedRoute, len(summary))
	for i, s := range summary {
		ranked := domain.RankedRoute{RouteSummary: s}
		ranked.OperatingProfitZ = zScore(s.OperatingProfit, profitMean, profitStd)
		ranked.CompletedRoundTripsZ = zScore(float64(s.CompletedRoundTrips), completionMean, completionStd)
		if s.OnTimeArrRate != nil {
			ranked.OnTimeArrRateZ = zScore(*s.OnTimeArrRate, rateMean, rateStd)
		}
		ranked.Score = cfg.WeightProfit*ranked.OperatingProfitZ +
			cfg.WeightCompletion*ranked.CompletedRoundTripsZ +
			cfg.WeightPunctuality*ranked.OnTimeArrRateZ
		result[i] = ranked
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].RouteKey < result[j].RouteKey
	})

	return result
}

// SelectRecommended returns the first n ranked routes (the input is already
// sorted descending by score).
func SelectRecommended(ranked []domain.RankedRoute, n int) []domain.RankedRoute {
	if n > len(ranked) {
		n = len(ranked)
	}
	top := make([]domain.RankedRoute, n)
	copy(top, ranked[:n])
	return top
}

// zScore standardizes a value, degrading to 0 when the deviation is 0.
func zScore(value, mean, std float64) float64 {
	if std <= 0 {
		return 0
	}
	return (value - mean) / std
}

// populationStats returns the mean and population standard deviation
// (denominator N) of the values. Both are 0 for an empty slice.
func populationStats(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	std = math.Sqrt(sumSq / float64(len(values)))

	return mean, std
}
