package usecase

import (
	"github.com/skyroute/route-analytics/internal/domain"
)

// DeriveBreakeven extends the recommended routes with the per-round-trip
// profit and the number of round trips needed to offset fixedCost.
//
//	ProfitPerRoundTrip    = OperatingProfit / CompletedRoundTrips
//	RoundTripsToBreakeven = fixedCost / ProfitPerRoundTrip
//
// Every undefined division degrades to 0: zero completed round trips, zero
// per-round-trip profit, and a zero fixed cost all yield 0 instead of an
// error or an infinity.
func DeriveBreakeven(recommended []domain.RankedRoute, fixedCost float64) []domain.BreakevenRoute {
	result := make([]domain.BreakevenRoute, len(recommended))

	for i, r := range recommended {
		row := domain.BreakevenRoute{RankedRoute: r}

		if r.CompletedRoundTrips > 0 {
			row.ProfitPerRoundTrip = r.OperatingProfit / float64(r.CompletedRoundTrips)
		}
		if row.ProfitPerRoundTrip != 0 && fixedCost != 0 {
			row.RoundTripsToBreakeven = fixedCost / row.ProfitPerRoundTrip
		}

		result[i] = row
	}

	return result
}
