// Package integration provides helpers and integration tests for the route
// analytics system. Integration tests exercise the real ingest, pipeline,
// artifact, and HTTP layers together over temporary directories.
package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/route-analytics/internal/adapter/artifact"
	routehttp "github.com/skyroute/route-analytics/internal/adapter/http"
	"github.com/skyroute/route-analytics/internal/adapter/ingest"
	"github.com/skyroute/route-analytics/internal/domain"
	"github.com/skyroute/route-analytics/internal/infrastructure/logger"
	"github.com/skyroute/route-analytics/internal/quality"
	"github.com/skyroute/route-analytics/internal/usecase"
	"github.com/skyroute/route-analytics/test/testutil"
)

// TestEnv wires the full stack over temporary directories.
type TestEnv struct {
	RawDir       string
	ProcessedDir string
	DocsDir      string
	Year         int
	Quarter      int
	Config       usecase.Config
}

// NewTestEnv creates an environment scoped to 2019 Q1 with the default
// analysis policy.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	base := t.TempDir()
	return &TestEnv{
		RawDir:       base,
		ProcessedDir: base + "/processed",
		DocsDir:      base + "/docs",
		Year:         2019,
		Quarter:      1,
		Config:       usecase.DefaultConfig(),
	}
}

// WriteDefaultQuarter writes a small but complete raw quarter:
//   - JFK-LAX: two full round trips, half the arrivals late, $200 in
//     round-trip ticket revenue
//   - ATL-ORD: one round trip plus a cancelled leg, no ticket sample
//   - one out-of-quarter flight row that must be dropped
//   - one malformed airport code that must show up in the issue log
func (env *TestEnv) WriteDefaultQuarter(t *testing.T) {
	t.Helper()

	testutil.WriteCSV(t, env.RawDir, ingest.FlightsFile,
		"FL_DATE,OP_CARRIER,ORIGIN,DESTINATION,DEP_DELAY,ARR_DELAY,CANCELLED,OCCUPANCY_RATE",
		"2019-01-10,AA,JFK,LAX,0,0,0,0.8",
		"2019-01-11,AA,LAX,JFK,0,10,0,0.8",
		"2019-02-10,AA,JFK,LAX,0,0,0,0.8",
		"2019-02-11,AA,LAX,JFK,0,10,0,0.8",
		"2019-03-01,DL,ATL,ORD,0,0,0,0.9",
		"2019-03-02,DL,ORD,ATL,0,0,0,0.9",
		"2019-03-03,DL,ATL,ORD,0,0,1,0.9",
		"2019-06-01,DL,DEN,SEA,0,0,0,0.9",
	)
	testutil.WriteCSV(t, env.RawDir, ingest.TicketsFile,
		"YEAR,QUARTER,ORIGIN,DEST,ROUNDTRIP,PASSENGERS,ITIN_FARE",
		"2019,1,JFK,LAX,1,2,100",
		"2019,1,JFK,LAX,0,10,500",
		"2019,2,JFK,LAX,1,10,500",
	)
	testutil.WriteCSV(t, env.RawDir, ingest.AirportsFile,
		"IATA_CODE,AIRPORT,CITY,STATE,COUNTRY",
		"JFK,John F Kennedy Intl,New York,NY,USA",
		"LAX,Los Angeles Intl,Los Angeles,CA,USA",
		"ATL,Hartsfield-Jackson,Atlanta,GA,USA",
		"ORD,O'Hare Intl,Chicago,IL,USA",
		"bad!,Not An Airport,Nowhere,XX,USA",
	)
}

// RunPipeline executes one full pipeline pass over the raw directory.
func (env *TestEnv) RunPipeline(t *testing.T) (*domain.RunResult, error) {
	t.Helper()

	log := logger.Nop().Logger
	source := ingest.NewReader(env.RawDir, env.Year, env.Quarter, log)
	sink := artifact.NewWriter(env.ProcessedDir, env.DocsDir, log)
	p := usecase.NewPipeline(source, sink, quality.NewChecker(), env.Config, log)
	return p.Run(context.Background())
}

// TestServer wraps an Echo instance serving the views API over the
// environment's artifact directories.
type TestServer struct {
	Echo *echo.Echo
}

// NewServer builds the views server exactly as cmd/server wires it.
func (env *TestEnv) NewServer() *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	reader := artifact.NewReader(env.ProcessedDir, env.DocsDir)
	handler := routehttp.NewViewHandler(reader, env.Config.TopBusiest)
	routehttp.RegisterRoutes(e, handler)

	return &TestServer{Echo: e}
}

// GET executes a test GET request and returns the recorded response.
func (ts *TestServer) GET(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return rec
}
