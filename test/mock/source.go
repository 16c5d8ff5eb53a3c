// Package mock provides test doubles for the route analytics pipeline.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific tables).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/skyroute/route-analytics/internal/domain"
)

// Source is a configurable in-memory implementation of usecase.Source.
// It supports configurable delays and errors for testing cancellation and
// failure scenarios. Configure it with the builder pattern methods.
type Source struct {
	flights  domain.LegTable
	tickets  domain.TicketTable
	airports []domain.Airport
	err      error
	delay    time.Duration

	mu        sync.Mutex
	callCount int
}

// NewSource creates an empty mock source.
func NewSource() *Source {
	return &Source{}
}

// WithFlights configures the flight legs the source returns.
func (s *Source) WithFlights(table domain.LegTable) *Source {
	s.flights = table
	return s
}

// WithTickets configures the ticket itineraries the source returns.
func (s *Source) WithTickets(table domain.TicketTable) *Source {
	s.tickets = table
	return s
}

// WithAirports configures the airport reference table the source returns.
func (s *Source) WithAirports(airports []domain.Airport) *Source {
	s.airports = airports
	return s
}

// WithError configures every load to fail with err.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures each load to wait before responding. This is useful
// for testing context cancellation.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// CallCount returns how many loads have been attempted.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Flights implements usecase.Source.
func (s *Source) Flights(ctx context.Context) (domain.LegTable, error) {
	if err := s.wait(ctx); err != nil {
		return domain.LegTable{}, err
	}
	if s.err != nil {
		return domain.LegTable{}, s.err
	}
	return s.flights, nil
}

// Tickets implements usecase.Source.
func (s *Source) Tickets(ctx context.Context) (domain.TicketTable, error) {
	if err := s.wait(ctx); err != nil {
		return domain.TicketTable{}, err
	}
	if s.err != nil {
		return domain.TicketTable{}, s.err
	}
	return s.tickets, nil
}

// Airports implements usecase.Source.
func (s *Source) Airports(ctx context.Context) ([]domain.Airport, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.airports, nil
}

// wait records the call and applies the configured delay, honoring
// cancellation.
func (s *Source) wait(ctx context.Context) error {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
