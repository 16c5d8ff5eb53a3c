package usecase

import (
	"sort"

	"github.com/skyroute/route-analytics/internal/domain"
)

// AggregateCompletions counts completed round trips per route.
//
// Only valid (not cancelled) legs are counted. Legs are grouped by
// (route key, direction) and the completion count for a route is the minimum
// of its directional leg counts: a completed round trip requires a matching
// return leg, so the minimum is the number of times the route was flown in
// both directions.
//
// A route observed in only one direction keeps that single directional count
// as its completion count. This leniency overstates completions for routes
// that are never actually round-tripped; it is the established counting rule
// and is asserted by an explicit test.
//
// Output: one row per route with at least one valid leg, sorted by completed
// round trips descending with route key ascending as the tie-break. Routes
// with zero valid legs are absent, not zero-filled.
func AggregateCompletions(table domain.LegTable) []domain.RouteCompletion {
	directional := make(map[string]map[string]int)

	for _, l := range table.Legs {
		if !l.IsValid() {
			continue
		}
		byDir, ok := directional[l.RouteKey]
		if !ok {
			byDir = make(map[string]int)
			directional[l.RouteKey] = byDir
		}
		byDir[l.Direction]++
	}

	result := make([]domain.RouteCompletion, 0, len(directional))
	for key, byDir := range directional {
		result = append(result, domain.RouteCompletion{
			RouteKey:            key,
			CompletedRoundTrips: minDirectionalCount(byDir),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].CompletedRoundTrips != result[j].CompletedRoundTrips {
			return result[i].CompletedRoundTrips > result[j].CompletedRoundTrips
		}
		return result[i].RouteKey < result[j].RouteKey
	})

	return result
}

// TopBusiest returns the first n completion rows (the input is already
// sorted by completed round trips descending).
func TopBusiest(completions []domain.RouteCompletion, n int) []domain.RouteCompletion {
	if n > len(completions) {
		n = len(completions)
	}
	top := make([]domain.RouteCompletion, n)
	copy(top, completions[:n])
	return top
}

// minDirectionalCount returns the smallest count across a route's observed
// directions (at most two).
func minDirectionalCount(byDir map[string]int) int {
	min := -1
	for _, count := range byDir {
		if min < 0 || count < min {
			min = count
		}
	}
	if min < 0 {
		return 0
	}
	return min
}
