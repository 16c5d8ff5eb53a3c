package domain

// Airport is a reference row from the airport codes table.
// The core aggregation does not consume airports; they feed the
// data-quality checks only.
type Airport struct {
	// IATACode is the 3-letter IATA airport code (e.g., "JFK")
	IATACode string

	// Name is the full airport name
	Name string

	// City is the airport's city
	City string

	// State is the airport's state or region
	State string

	// Country is the airport's country
	Country string
}
