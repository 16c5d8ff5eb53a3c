package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestTicketItinerary_Revenue(t *testing.T) {
	tests := []struct {
		name       string
		passengers *float64
		fare       *float64
		want       float64
	}{
		{
			name:       "passengers times fare",
			passengers: floatPtr(2),
			fare:       floatPtr(100),
			want:       200,
		},
		{
			name:       "missing passengers contributes zero",
			passengers: nil,
			fare:       floatPtr(100),
			want:       0,
		},
		{
			name:       "missing fare contributes zero",
			passengers: floatPtr(3),
			fare:       nil,
			want:       0,
		},
		{
			name:       "both missing contributes zero",
			passengers: nil,
			fare:       nil,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := TicketItinerary{Origin: "JFK", Dest: "LAX", Passengers: tt.passengers, Fare: tt.fare}
			assert.Equal(t, tt.want, ticket.Revenue())
		})
	}
}

func TestTicketItinerary_IsRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		roundTrip *int
		want      bool
	}{
		{name: "flagged round trip", roundTrip: intPtr(1), want: true},
		{name: "one-way", roundTrip: intPtr(0), want: false},
		{name: "absent flag is not a round trip", roundTrip: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := TicketItinerary{RoundTrip: tt.roundTrip}
			assert.Equal(t, tt.want, ticket.IsRoundTrip())
		})
	}
}
