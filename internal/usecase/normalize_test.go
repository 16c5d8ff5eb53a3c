package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/route-analytics/internal/domain"
)

func TestNormalizeLegs(t *testing.T) {
	legs := []domain.FlightLeg{
		{Origin: "lax ", Dest: "JFK"},
		{Origin: "JFK", Dest: "LAX"},
	}

	result := NormalizeLegs(legs)

	require.Len(t, result, 2)
	assert.Equal(t, "JFK-LAX", result[0].RouteKey)
	assert.Equal(t, "JFK-LAX", result[1].RouteKey)
	assert.Equal(t, "LAX>JFK", result[0].Direction)
	assert.Equal(t, "JFK>LAX", result[1].Direction)

	// Input slice must be untouched.
	assert.Empty(t, legs[0].RouteKey)
	assert.Empty(t, legs[0].Direction)
}

func TestNormalizeLegs_Empty(t *testing.T) {
	assert.Empty(t, NormalizeLegs(nil))
}
