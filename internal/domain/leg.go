package domain

import "time"

// FlightLeg represents a single directional flight record for one quarter.
// Optional numeric columns are pointers: nil means the value was missing or
// malformed in the source and was coerced to a missing marker at ingestion.
type FlightLeg struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string

	// Dest is the IATA code of the arrival airport (e.g., "LAX")
	Dest string

	// FlightDate is the scheduled flight date (zero value when absent)
	FlightDate time.Time

	// Carrier is the operating carrier code (e.g., "AA")
	Carrier string

	// DepDelay is the departure delay in minutes, nil when missing
	DepDelay *float64

	// ArrDelay is the arrival delay in minutes, nil when missing
	ArrDelay *float64

	// Cancelled is the cancellation flag (0 or 1), nil when the column is absent
	Cancelled *int

	// Occupancy is the seat occupancy ratio, nil when missing
	Occupancy *float64

	// RouteKey is the derived undirected route identifier (set by NormalizeLegs)
	RouteKey string

	// Direction is the derived directional leg identifier (set by NormalizeLegs)
	Direction string

	// OnTimeDep reports whether the leg departed within the on-time threshold
	OnTimeDep bool

	// OnTimeArr reports whether the leg arrived within the on-time threshold
	OnTimeArr bool

	// OnTimeBoth is OnTimeDep AND OnTimeArr
	OnTimeBoth bool
}

// IsValid reports whether the leg counts toward route completion.
// A leg is valid iff its cancellation flag is absent or equal to 0.
func (l *FlightLeg) IsValid() bool {
	return l.Cancelled == nil || *l.Cancelled == 0
}

// LegTable is a fully materialized table of flight legs together with
// column-presence flags. The flags let downstream stages distinguish
// "column missing from the source entirely" from "value missing on one row",
// which the punctuality contract treats differently.
type LegTable struct {
	Legs []FlightLeg

	// HasDepDelay reports whether the source carried a DEP_DELAY column
	HasDepDelay bool

	// HasArrDelay reports whether the source carried an ARR_DELAY column
	HasArrDelay bool

	// HasCancelled reports whether the source carried a CANCELLED column
	HasCancelled bool

	// HasOccupancy reports whether the source carried an OCCUPANCY_RATE column
	HasOccupancy bool
}

// ValidLegs returns the legs that count toward completion (not cancelled).
func (t *LegTable) ValidLegs() []FlightLeg {
	valid := make([]FlightLeg, 0, len(t.Legs))
	for _, l := range t.Legs {
		if l.IsValid() {
			valid = append(valid, l)
		}
	}
	return valid
}
