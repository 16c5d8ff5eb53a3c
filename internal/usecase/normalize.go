// Package usecase implements the route aggregation and recommendation engine:
// leg normalization, punctuality classification, completion and revenue
// aggregation, summary joining, composite scoring, and breakeven derivation.
package usecase

import (
	"github.com/skyroute/route-analytics/internal/domain"
)

// NormalizeLegs derives the undirected route key and the directional leg key
// for every leg.
//
// Behavior:
//   - RouteKey is order-independent: legs JFK->LAX and LAX->JFK share one key
//   - Direction is order-dependent: the two directions stay distinguishable
//   - Does NOT mutate the original legs slice
//   - Performance is O(n) where n = number of legs
func NormalizeLegs(legs []domain.FlightLeg) []domain.FlightLeg {
	result := make([]domain.FlightLeg, len(legs))
	for i, l := range legs {
		result[i] = l
		result[i].RouteKey = domain.RouteKey(l.Origin, l.Dest)
		result[i].Direction = domain.LegDirection(l.Origin, l.Dest)
	}
	return result
}
