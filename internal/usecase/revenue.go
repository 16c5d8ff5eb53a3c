package usecase

import (
	"sort"

	"github.com/skyroute/route-analytics/internal/domain"
)

// AggregateRevenue sums ticket revenue per undirected route.
//
// When the ticket table carries a ROUNDTRIP column, only itineraries flagged
// as round trips are counted; without the column every itinerary counts.
// Each itinerary's route key uses the same canonicalization as flight legs,
// so ticket revenue joins onto leg-derived routes. Missing passenger counts
// or fares contribute 0 to the sum, never a missing marker.
//
// Output: one row per route with at least one counted itinerary, sorted by
// route key ascending. Routes with no tickets are absent, not zero-filled;
// the summary join reintroduces them with zero revenue.
func AggregateRevenue(table domain.TicketTable) []domain.RouteRevenue {
	totals := make(map[string]float64)

	for _, ticket := range table.Tickets {
		if table.HasRoundTrip && !ticket.IsRoundTrip() {
			continue
		}
		key := domain.RouteKey(ticket.Origin, ticket.Dest)
		totals[key] += ticket.Revenue()
	}

	result := make([]domain.RouteRevenue, 0, len(totals))
	for key, total := range totals {
		result = append(result, domain.RouteRevenue{RouteKey: key, TotalRevenue: total})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].RouteKey < result[j].RouteKey
	})

	return result
}
