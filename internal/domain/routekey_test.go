package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteKey(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		dest   string
		want   string
	}{
		{
			name:   "already sorted pair",
			origin: "JFK",
			dest:   "LAX",
			want:   "JFK-LAX",
		},
		{
			name:   "reversed pair yields same key",
			origin: "LAX",
			dest:   "JFK",
			want:   "JFK-LAX",
		},
		{
			name:   "lowercase input is uppercased",
			origin: "lax",
			dest:   "jfk",
			want:   "JFK-LAX",
		},
		{
			name:   "surrounding whitespace is trimmed",
			origin: " JFK ",
			dest:   "\tLAX",
			want:   "JFK-LAX",
		},
		{
			name:   "identical codes",
			origin: "ORD",
			dest:   "ORD",
			want:   "ORD-ORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteKey(tt.origin, tt.dest))
		})
	}
}

func TestRouteKey_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"JFK", "LAX"},
		{"ord", "Atl"},
		{" sfo", "SEA "},
		{"AAA", "ZZZ"},
	}

	for _, p := range pairs {
		assert.Equal(t, RouteKey(p[0], p[1]), RouteKey(p[1], p[0]),
			"RouteKey must be order-independent for (%q, %q)", p[0], p[1])
	}
}

func TestLegDirection(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		dest   string
		want   string
	}{
		{
			name:   "preserves input order",
			origin: "LAX",
			dest:   "JFK",
			want:   "LAX>JFK",
		},
		{
			name:   "normalizes case and whitespace",
			origin: " lax ",
			dest:   "jfk",
			want:   "LAX>JFK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LegDirection(tt.origin, tt.dest))
		})
	}
}

func TestLegDirection_Asymmetric(t *testing.T) {
	pairs := [][2]string{
		{"JFK", "LAX"},
		{"ORD", "ATL"},
	}

	for _, p := range pairs {
		assert.NotEqual(t, LegDirection(p[0], p[1]), LegDirection(p[1], p[0]),
			"LegDirection must be order-dependent for distinct codes (%q, %q)", p[0], p[1])
	}
}
