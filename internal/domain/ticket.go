package domain

// TicketItinerary represents one sold itinerary from the ticket sample.
// Missing passenger counts or fares are nil and contribute zero revenue.
type TicketItinerary struct {
	// Origin is the IATA code of the itinerary origin
	Origin string

	// Dest is the IATA code of the itinerary destination
	Dest string

	// Passengers is the number of passengers on the itinerary, nil when missing
	Passengers *float64

	// Fare is the total itinerary fare, nil when missing
	Fare *float64

	// RoundTrip is the round-trip flag (0 or 1), nil when the column is absent
	RoundTrip *int

	// RouteKey is the derived undirected route identifier (set by the revenue aggregator)
	RouteKey string
}

// Revenue returns passengers times fare for the itinerary.
// Missing values are the additive identity: nil passengers or fare yields 0.
func (t *TicketItinerary) Revenue() float64 {
	if t.Passengers == nil || t.Fare == nil {
		return 0
	}
	return *t.Passengers * *t.Fare
}

// IsRoundTrip reports whether the itinerary is flagged as a round trip.
func (t *TicketItinerary) IsRoundTrip() bool {
	return t.RoundTrip != nil && *t.RoundTrip == 1
}

// TicketTable is a fully materialized table of ticket itineraries together
// with a presence flag for the optional ROUNDTRIP column. When the column is
// absent no round-trip pre-filter is applied.
type TicketTable struct {
	Tickets []TicketItinerary

	// HasRoundTrip reports whether the source carried a ROUNDTRIP column
	HasRoundTrip bool
}
