// Package ingest reads the raw quarterly CSV inputs and normalizes them into
// the domain tables the engine consumes. All missing-value policy is applied
// here, once: malformed numerics become nil markers, codes are uppercased and
// trimmed, and rows outside the configured quarter are dropped. Downstream
// stages can assume clean, total domains.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyroute/route-analytics/internal/domain"
	"github.com/skyroute/route-analytics/internal/infrastructure/timeutil"
)

// Raw input file names, as delivered by the data provider.
const (
	FlightsFile  = "Flights.csv"
	TicketsFile  = "Tickets.csv"
	AirportsFile = "Airport_Codes.csv"
)

const flightDateLayout = "2006-01-02"

// Reader loads the three raw CSV tables from a directory, scoped to one
// fare quarter.
type Reader struct {
	rawDir  string
	year    int
	quarter int
	log     zerolog.Logger
}

// NewReader creates a Reader over rawDir restricted to the given year and
// quarter.
func NewReader(rawDir string, year, quarter int, log zerolog.Logger) *Reader {
	return &Reader{
		rawDir:  rawDir,
		year:    year,
		quarter: quarter,
		log:     log,
	}
}

// Flights reads and normalizes the flight legs table.
//
// Normalization: headers are trimmed and DESTINATION is renamed to DEST;
// origin and destination codes are uppercased and trimmed; numeric columns
// are coerced with non-numeric values becoming nil; CANCELLED defaults
// missing values to 0 and clamps to {0, 1}; rows outside the configured
// quarter (or with unparseable dates) are dropped when a FL_DATE column
// exists.
func (r *Reader) Flights(ctx context.Context) (domain.LegTable, error) {
	rows, header, err := r.readTable(FlightsFile)
	if err != nil {
		return domain.LegTable{}, err
	}

	table := domain.LegTable{
		HasDepDelay:  header.has("DEP_DELAY"),
		HasArrDelay:  header.has("ARR_DELAY"),
		HasCancelled: header.has("CANCELLED"),
		HasOccupancy: header.has("OCCUPANCY_RATE"),
	}
	hasDate := header.has("FL_DATE")

	table.Legs = make([]domain.FlightLeg, 0, len(rows))
	for _, row := range rows {
		leg := domain.FlightLeg{
			Origin:  canonicalCode(header.get(row, "ORIGIN")),
			Dest:    canonicalCode(header.get(row, "DEST")),
			Carrier: canonicalCode(header.get(row, "OP_CARRIER")),
		}

		if hasDate {
			date, parseErr := time.Parse(flightDateLayout, strings.TrimSpace(header.get(row, "FL_DATE")))
			if parseErr != nil || !timeutil.InQuarter(date, r.year, r.quarter) {
				continue
			}
			leg.FlightDate = date
		}

		if table.HasDepDelay {
			leg.DepDelay = parseOptionalFloat(header.get(row, "DEP_DELAY"))
		}
		if table.HasArrDelay {
			leg.ArrDelay = parseOptionalFloat(header.get(row, "ARR_DELAY"))
		}
		if table.HasCancelled {
			leg.Cancelled = parseBinaryFlag(header.get(row, "CANCELLED"))
		}
		if table.HasOccupancy {
			leg.Occupancy = parseOptionalFloat(header.get(row, "OCCUPANCY_RATE"))
		}

		table.Legs = append(table.Legs, leg)
	}

	r.log.Debug().Int("rows", len(table.Legs)).Str("file", FlightsFile).Msg("Flights ingested")
	return table, nil
}

// Tickets reads and normalizes the ticket itinerary sample. When YEAR or
// QUARTER columns exist, rows outside the configured quarter are dropped.
func (r *Reader) Tickets(ctx context.Context) (domain.TicketTable, error) {
	rows, header, err := r.readTable(TicketsFile)
	if err != nil {
		return domain.TicketTable{}, err
	}

	table := domain.TicketTable{HasRoundTrip: header.has("ROUNDTRIP")}
	hasYear := header.has("YEAR")
	hasQuarter := header.has("QUARTER")

	table.Tickets = make([]domain.TicketItinerary, 0, len(rows))
	for _, row := range rows {
		if hasYear && !matchesInt(header.get(row, "YEAR"), r.year) {
			continue
		}
		if hasQuarter && !matchesInt(header.get(row, "QUARTER"), r.quarter) {
			continue
		}

		ticket := domain.TicketItinerary{
			Origin:     canonicalCode(header.get(row, "ORIGIN")),
			Dest:       canonicalCode(header.get(row, "DEST")),
			Passengers: parseOptionalFloat(header.get(row, "PASSENGERS")),
			Fare:       parseOptionalFloat(header.get(row, "ITIN_FARE")),
		}
		if table.HasRoundTrip {
			ticket.RoundTrip = parseBinaryFlag(header.get(row, "ROUNDTRIP"))
		}

		table.Tickets = append(table.Tickets, ticket)
	}

	r.log.Debug().Int("rows", len(table.Tickets)).Str("file", TicketsFile).Msg("Tickets ingested")
	return table, nil
}

// Airports reads the airport reference table.
func (r *Reader) Airports(ctx context.Context) ([]domain.Airport, error) {
	rows, header, err := r.readTable(AirportsFile)
	if err != nil {
		return nil, err
	}

	airports := make([]domain.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, domain.Airport{
			IATACode: canonicalCode(header.get(row, "IATA_CODE")),
			Name:     strings.TrimSpace(header.get(row, "AIRPORT")),
			City:     strings.TrimSpace(header.get(row, "CITY")),
			State:    strings.TrimSpace(header.get(row, "STATE")),
			Country:  strings.TrimSpace(header.get(row, "COUNTRY")),
		})
	}

	r.log.Debug().Int("rows", len(airports)).Str("file", AirportsFile).Msg("Airports ingested")
	return airports, nil
}

// readTable opens a raw CSV file and returns its data rows and header index.
// A missing file is the fatal missing-precondition case.
func (r *Reader) readTable(name string) ([][]string, headerIndex, error) {
	path := filepath.Join(r.rawDir, name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrMissingArtifact, path)
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: no header row", domain.ErrMalformedArtifact, path)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedArtifact, path, err)
		}
		rows = append(rows, record)
	}

	return rows, newHeaderIndex(header), nil
}

// headerIndex maps normalized column names to their positions.
type headerIndex map[string]int

// newHeaderIndex trims header cells and applies the DESTINATION -> DEST rename.
func newHeaderIndex(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, col := range header {
		name := strings.ToUpper(strings.TrimSpace(col))
		if name == "DESTINATION" {
			name = "DEST"
		}
		idx[name] = i
	}
	return idx
}

func (h headerIndex) has(col string) bool {
	_, ok := h[col]
	return ok
}

// get returns the cell for a column, or "" when the column or cell is absent.
func (h headerIndex) get(row []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// canonicalCode normalizes an airport or carrier code cell.
func canonicalCode(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

// parseOptionalFloat coerces a cell to a float, with empty or malformed
// values becoming the nil missing marker rather than an error.
func parseOptionalFloat(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseBinaryFlag coerces a binary flag cell: missing or malformed values
// default to 0 and anything else clamps into {0, 1}.
func parseBinaryFlag(v string) *int {
	f := parseOptionalFloat(v)
	flag := 0
	if f != nil && *f >= 1 {
		flag = 1
	}
	return &flag
}

// matchesInt reports whether a cell parses to exactly want.
func matchesInt(v string, want int) bool {
	f := parseOptionalFloat(v)
	return f != nil && int(*f) == want
}
