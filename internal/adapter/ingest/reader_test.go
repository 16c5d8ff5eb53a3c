package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/route-analytics/internal/domain"
	"github.com/skyroute/route-analytics/internal/infrastructure/logger"
)

// writeRawFile writes a raw CSV fixture into dir.
func writeRawFile(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newTestReader(t *testing.T, year, quarter int) (*Reader, string) {
	t.Helper()
	dir := t.TempDir()
	return NewReader(dir, year, quarter, logger.Nop().Logger), dir
}

// ====== Flights Tests ======

func TestFlights_NormalizesCodesAndValues(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, FlightsFile,
		"FL_DATE,OP_CARRIER,ORIGIN,DESTINATION,DEP_DELAY,ARR_DELAY,CANCELLED,OCCUPANCY_RATE",
		"2019-01-15,aa, jfk ,lax,5.0,-3.0,0,0.85",
	)

	table, err := r.Flights(context.Background())

	require.NoError(t, err)
	require.Len(t, table.Legs, 1)
	leg := table.Legs[0]
	assert.Equal(t, "JFK", leg.Origin)
	assert.Equal(t, "LAX", leg.Dest)
	assert.Equal(t, "AA", leg.Carrier)
	require.NotNil(t, leg.DepDelay)
	assert.Equal(t, 5.0, *leg.DepDelay)
	require.NotNil(t, leg.ArrDelay)
	assert.Equal(t, -3.0, *leg.ArrDelay)
	require.NotNil(t, leg.Cancelled)
	assert.Equal(t, 0, *leg.Cancelled)
	require.NotNil(t, leg.Occupancy)
	assert.Equal(t, 0.85, *leg.Occupancy)

	assert.True(t, table.HasDepDelay)
	assert.True(t, table.HasArrDelay)
	assert.True(t, table.HasCancelled)
	assert.True(t, table.HasOccupancy)
}

func TestFlights_MalformedNumericsBecomeNil(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, FlightsFile,
		"FL_DATE,ORIGIN,DEST,DEP_DELAY,ARR_DELAY",
		"2019-02-01,JFK,LAX,oops,",
	)

	table, err := r.Flights(context.Background())

	require.NoError(t, err)
	require.Len(t, table.Legs, 1)
	assert.Nil(t, table.Legs[0].DepDelay)
	assert.Nil(t, table.Legs[0].ArrDelay)
}

func TestFlights_CancelledClampedToBinary(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, FlightsFile,
		"FL_DATE,ORIGIN,DEST,CANCELLED",
		"2019-01-01,JFK,LAX,3",
		"2019-01-02,JFK,LAX,",
		"2019-01-03,JFK,LAX,garbage",
	)

	table, err := r.Flights(context.Background())

	require.NoError(t, err)
	require.Len(t, table.Legs, 3)
	assert.Equal(t, 1, *table.Legs[0].Cancelled)
	assert.Equal(t, 0, *table.Legs[1].Cancelled)
	assert.Equal(t, 0, *table.Legs[2].Cancelled)
}

func TestFlights_QuarterFilterDropsOtherQuarters(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, FlightsFile,
		"FL_DATE,ORIGIN,DEST",
		"2019-01-15,JFK,LAX",
		"2019-03-31,ATL,ORD",
		"2019-04-01,DEN,SEA",
		"2018-02-01,BOS,MIA",
		"not-a-date,SFO,SAN",
	)

	table, err := r.Flights(context.Background())

	require.NoError(t, err)
	require.Len(t, table.Legs, 2)
	assert.Equal(t, "JFK", table.Legs[0].Origin)
	assert.Equal(t, "ATL", table.Legs[1].Origin)
}

func TestFlights_NoDateColumnKeepsAllRows(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, FlightsFile,
		"ORIGIN,DEST",
		"JFK,LAX",
		"ATL,ORD",
	)

	table, err := r.Flights(context.Background())

	require.NoError(t, err)
	assert.Len(t, table.Legs, 2)
	assert.False(t, table.HasCancelled)
	assert.False(t, table.HasDepDelay)
}

func TestFlights_MissingFileIsFatal(t *testing.T) {
	r, _ := newTestReader(t, 2019, 1)

	_, err := r.Flights(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingArtifact)
}

func TestFlights_EmptyFileIsMalformed(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FlightsFile), nil, 0o644))

	_, err := r.Flights(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedArtifact)
}

func TestFlights_ShortRowsTolerated(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, FlightsFile,
		"ORIGIN,DEST,DEP_DELAY",
		"JFK,LAX",
	)

	table, err := r.Flights(context.Background())

	require.NoError(t, err)
	require.Len(t, table.Legs, 1)
	assert.Nil(t, table.Legs[0].DepDelay)
}

// ====== Tickets Tests ======

func TestTickets_QuarterScopedAndCoerced(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, TicketsFile,
		"YEAR,QUARTER,ORIGIN,DEST,ROUNDTRIP,PASSENGERS,ITIN_FARE",
		"2019,1,jfk,LAX,1,2,150.00",
		"2019,2,JFK,LAX,1,5,999.00",
		"2018,1,JFK,LAX,1,5,999.00",
	)

	table, err := r.Tickets(context.Background())

	require.NoError(t, err)
	require.Len(t, table.Tickets, 1)
	ticket := table.Tickets[0]
	assert.Equal(t, "JFK", ticket.Origin)
	assert.True(t, table.HasRoundTrip)
	require.NotNil(t, ticket.RoundTrip)
	assert.Equal(t, 1, *ticket.RoundTrip)
	require.NotNil(t, ticket.Passengers)
	assert.Equal(t, 2.0, *ticket.Passengers)
	require.NotNil(t, ticket.Fare)
	assert.Equal(t, 150.0, *ticket.Fare)
}

func TestTickets_MalformedFareBecomesNil(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, TicketsFile,
		"ORIGIN,DEST,PASSENGERS,ITIN_FARE",
		"JFK,LAX,2,$150",
	)

	table, err := r.Tickets(context.Background())

	require.NoError(t, err)
	require.Len(t, table.Tickets, 1)
	assert.Nil(t, table.Tickets[0].Fare)
	assert.False(t, table.HasRoundTrip)
}

func TestTickets_MissingFileIsFatal(t *testing.T) {
	r, _ := newTestReader(t, 2019, 1)

	_, err := r.Tickets(context.Background())

	assert.ErrorIs(t, err, domain.ErrMissingArtifact)
}

// ====== Airports Tests ======

func TestAirports_FieldsTrimmed(t *testing.T) {
	r, dir := newTestReader(t, 2019, 1)
	writeRawFile(t, dir, AirportsFile,
		"IATA_CODE,AIRPORT,CITY,STATE,COUNTRY",
		" jfk ,John F Kennedy Intl, New York ,NY,USA",
	)

	airports, err := r.Airports(context.Background())

	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "JFK", airports[0].IATACode)
	assert.Equal(t, "John F Kennedy Intl", airports[0].Name)
	assert.Equal(t, "New York", airports[0].City)
	assert.Equal(t, "NY", airports[0].State)
	assert.Equal(t, "USA", airports[0].Country)
}

func TestAirports_MissingFileIsFatal(t *testing.T) {
	r, _ := newTestReader(t, 2019, 1)

	_, err := r.Airports(context.Background())

	assert.ErrorIs(t, err, domain.ErrMissingArtifact)
}
