// Package http provides the HTTP handler layer for the route analytics API.
// It serves the tabular views produced by the aggregation pipeline and maps
// domain errors to HTTP status codes.
package http

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/route-analytics/internal/adapter/artifact"
	"github.com/skyroute/route-analytics/internal/adapter/http/response"
	"github.com/skyroute/route-analytics/internal/domain"
)

// View names accepted by GET /api/v1/views/:name.
const (
	ViewBusiest     = "busiest"
	ViewRevenue     = "revenue"
	ViewSummary     = "summary"
	ViewProfitable  = "profitable"
	ViewRecommended = "recommended"
	ViewBreakeven   = "breakeven"
	ViewIssues      = "issues"
)

// viewFiles maps view names to the artifact file backing them. The
// profitable view has no artifact of its own; it is derived from the
// route summary on demand.
var viewFiles = map[string]string{
	ViewBusiest:     artifact.BusiestRoutesFile,
	ViewRevenue:     artifact.RouteRevenueFile,
	ViewSummary:     artifact.RouteSummaryFile,
	ViewRecommended: artifact.RecommendedRoutesFile,
	ViewBreakeven:   artifact.BreakevenFile,
	ViewIssues:      artifact.IssueLogFile,
}

// ViewLoader loads a stored artifact by file name.
type ViewLoader interface {
	Load(name string) (*artifact.Table, error)
}

// ViewResponse is the payload for a single view.
type ViewResponse struct {
	View     string     `json:"view"`
	Columns  []string   `json:"columns"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"row_count"`
}

// ViewListResponse lists the views the API can serve.
type ViewListResponse struct {
	Views []string `json:"views"`
}

// ViewHandler handles HTTP requests for analysis views.
type ViewHandler struct {
	loader        ViewLoader
	topProfitable int
}

// NewViewHandler creates a ViewHandler backed by the given artifact loader.
// topProfitable bounds the derived most-profitable view.
func NewViewHandler(loader ViewLoader, topProfitable int) *ViewHandler {
	return &ViewHandler{
		loader:        loader,
		topProfitable: topProfitable,
	}
}

// ListViews handles GET /api/v1/views
func (h *ViewHandler) ListViews(c echo.Context) error {
	names := make([]string, 0, len(viewFiles)+1)
	for name := range viewFiles {
		names = append(names, name)
	}
	names = append(names, ViewProfitable)
	sort.Strings(names)

	return response.OK(c, &ViewListResponse{Views: names})
}

// GetView handles GET /api/v1/views/:name
//
// Returns the named view as columns plus rows of strings, exactly as the
// pipeline wrote them. Unknown names yield 404; a view whose backing
// artifact has not been produced yet yields 412.
func (h *ViewHandler) GetView(c echo.Context) error {
	name := c.Param("name")

	table, err := h.loadView(name)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &ViewResponse{
		View:     name,
		Columns:  table.Columns,
		Rows:     table.Rows,
		RowCount: len(table.Rows),
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ViewHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// loadView resolves a view name to its table, deriving the profitable view
// from the route summary.
func (h *ViewHandler) loadView(name string) (*artifact.Table, error) {
	if name == ViewProfitable {
		return h.deriveProfitable()
	}

	file, ok := viewFiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownView, name)
	}
	return h.loader.Load(file)
}

// deriveProfitable ranks the route summary by operating profit and keeps
// the top rows. Ties on profit break by route key ascending.
func (h *ViewHandler) deriveProfitable() (*artifact.Table, error) {
	summary, err := h.loader.Load(artifact.RouteSummaryFile)
	if err != nil {
		return nil, err
	}

	keyIdx := columnIndex(summary.Columns, "round_trip_id")
	profitIdx := columnIndex(summary.Columns, "operating_profit")
	if keyIdx < 0 || profitIdx < 0 {
		return nil, fmt.Errorf("%w: %s: missing summary columns", domain.ErrMalformedArtifact, artifact.RouteSummaryFile)
	}

	type profitRow struct {
		key    string
		profit float64
		row    []string
	}
	parsed := make([]profitRow, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		if len(row) <= keyIdx || len(row) <= profitIdx {
			return nil, fmt.Errorf("%w: %s: short row", domain.ErrMalformedArtifact, artifact.RouteSummaryFile)
		}
		profit, err := strconv.ParseFloat(row[profitIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad operating_profit %q", domain.ErrMalformedArtifact, artifact.RouteSummaryFile, row[profitIdx])
		}
		parsed = append(parsed, profitRow{key: row[keyIdx], profit: profit, row: row})
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		if parsed[i].profit != parsed[j].profit {
			return parsed[i].profit > parsed[j].profit
		}
		return parsed[i].key < parsed[j].key
	})

	limit := h.topProfitable
	if limit > len(parsed) {
		limit = len(parsed)
	}
	rows := make([][]string, 0, limit)
	for _, p := range parsed[:limit] {
		rows = append(rows, p.row)
	}

	return &artifact.Table{Columns: summary.Columns, Rows: rows}, nil
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ViewHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrUnknownView) {
		return response.NotFound(c, response.MsgUnknownView)
	}
	if errors.Is(err, domain.ErrMissingArtifact) {
		return response.FailedPrecondition(c)
	}
	return response.InternalServerError(c)
}

// columnIndex returns the position of name in columns, or -1.
func columnIndex(columns []string, name string) int {
	for i, col := range columns {
		if col == name {
			return i
		}
	}
	return -1
}
