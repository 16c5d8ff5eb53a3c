package mock

import (
	"context"
	"sync"

	"github.com/skyroute/route-analytics/internal/domain"
)

// Sink is a recording in-memory implementation of usecase.Sink.
// Every write is captured for later assertion; an optional error makes all
// writes fail.
type Sink struct {
	err error

	mu          sync.Mutex
	Busiest     []domain.RouteCompletion
	Revenues    []domain.RouteRevenue
	Summary     []domain.RouteSummary
	Recommended []domain.RankedRoute
	Breakeven   []domain.BreakevenRoute
	Issues      []domain.QualityIssue
	writeCount  int
}

// NewSink creates an empty recording sink.
func NewSink() *Sink {
	return &Sink{}
}

// WithError configures every write to fail with err.
func (s *Sink) WithError(err error) *Sink {
	s.err = err
	return s
}

// WriteCount returns how many writes have been attempted.
func (s *Sink) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeCount
}

// WriteBusiestRoutes implements usecase.Sink.
func (s *Sink) WriteBusiestRoutes(ctx context.Context, rows []domain.RouteCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeCount++
	if s.err != nil {
		return s.err
	}
	s.Busiest = rows
	return nil
}

// WriteRouteRevenue implements usecase.Sink.
func (s *Sink) WriteRouteRevenue(ctx context.Context, rows []domain.RouteRevenue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeCount++
	if s.err != nil {
		return s.err
	}
	s.Revenues = rows
	return nil
}

// WriteRouteSummary implements usecase.Sink.
func (s *Sink) WriteRouteSummary(ctx context.Context, rows []domain.RouteSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeCount++
	if s.err != nil {
		return s.err
	}
	s.Summary = rows
	return nil
}

// WriteRecommendedRoutes implements usecase.Sink.
func (s *Sink) WriteRecommendedRoutes(ctx context.Context, rows []domain.RankedRoute) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeCount++
	if s.err != nil {
		return s.err
	}
	s.Recommended = rows
	return nil
}

// WriteBreakeven implements usecase.Sink.
func (s *Sink) WriteBreakeven(ctx context.Context, rows []domain.BreakevenRoute) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeCount++
	if s.err != nil {
		return s.err
	}
	s.Breakeven = rows
	return nil
}

// WriteIssueLog implements usecase.Sink.
func (s *Sink) WriteIssueLog(ctx context.Context, rows []domain.QualityIssue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeCount++
	if s.err != nil {
		return s.err
	}
	s.Issues = rows
	return nil
}
