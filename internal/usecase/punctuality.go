package usecase

import (
	"github.com/skyroute/route-analytics/internal/domain"
)

// ClassifyPunctuality derives the on-time flags for every leg in the table.
//
// A leg is on time on a dimension iff its delay is present and less than or
// equal to thresholdMin. When the source carried no delay column at all for a
// dimension, every leg is classified not-on-time on that dimension
// (conservative default, not an error). Malformed delay values were already
// coerced to nil at ingestion, so they classify as not-on-time too.
//
// Behavior:
//   - OnTimeBoth is the logical AND of the two per-dimension flags
//   - Does NOT mutate the input table
//   - Performance is O(n) where n = number of legs
func ClassifyPunctuality(table domain.LegTable, thresholdMin float64) domain.LegTable {
	result := table
	result.Legs = make([]domain.FlightLeg, len(table.Legs))

	for i, l := range table.Legs {
		result.Legs[i] = l
		result.Legs[i].OnTimeDep = table.HasDepDelay && onTime(l.DepDelay, thresholdMin)
		result.Legs[i].OnTimeArr = table.HasArrDelay && onTime(l.ArrDelay, thresholdMin)
		result.Legs[i].OnTimeBoth = result.Legs[i].OnTimeDep && result.Legs[i].OnTimeArr
	}

	return result
}

// onTime reports whether a delay value is present and within the threshold.
func onTime(delay *float64, thresholdMin float64) bool {
	return delay != nil && *delay <= thresholdMin
}
