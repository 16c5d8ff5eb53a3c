package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/route-analytics/internal/domain"
)

func TestClassifyPunctuality(t *testing.T) {
	tests := []struct {
		name        string
		depDelay    *float64
		arrDelay    *float64
		threshold   float64
		wantDep     bool
		wantArr     bool
		wantBoth    bool
	}{
		{
			name:      "zero delay is on time at zero threshold",
			depDelay:  floatPtr(0),
			arrDelay:  floatPtr(0),
			threshold: 0,
			wantDep:   true,
			wantArr:   true,
			wantBoth:  true,
		},
		{
			name:      "early departure and arrival are on time",
			depDelay:  floatPtr(-5),
			arrDelay:  floatPtr(-12),
			threshold: 0,
			wantDep:   true,
			wantArr:   true,
			wantBoth:  true,
		},
		{
			name:      "late arrival only",
			depDelay:  floatPtr(0),
			arrDelay:  floatPtr(7),
			threshold: 0,
			wantDep:   true,
			wantArr:   false,
			wantBoth:  false,
		},
		{
			name:      "delay within a relaxed threshold",
			depDelay:  floatPtr(10),
			arrDelay:  floatPtr(15),
			threshold: 15,
			wantDep:   true,
			wantArr:   true,
			wantBoth:  true,
		},
		{
			name:      "missing delay classifies not on time",
			depDelay:  nil,
			arrDelay:  floatPtr(0),
			threshold: 0,
			wantDep:   false,
			wantArr:   true,
			wantBoth:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := domain.LegTable{
				Legs: []domain.FlightLeg{
					{Origin: "JFK", Dest: "LAX", DepDelay: tt.depDelay, ArrDelay: tt.arrDelay},
				},
				HasDepDelay: true,
				HasArrDelay: true,
			}

			result := ClassifyPunctuality(table, tt.threshold)

			require.Len(t, result.Legs, 1)
			assert.Equal(t, tt.wantDep, result.Legs[0].OnTimeDep)
			assert.Equal(t, tt.wantArr, result.Legs[0].OnTimeArr)
			assert.Equal(t, tt.wantBoth, result.Legs[0].OnTimeBoth)
		})
	}
}

// TestClassifyPunctuality_ColumnAbsent verifies the conservative default:
// when the source carried no delay column for a dimension, every leg is
// not-on-time on that dimension regardless of row values.
func TestClassifyPunctuality_ColumnAbsent(t *testing.T) {
	table := domain.LegTable{
		Legs: []domain.FlightLeg{
			{Origin: "JFK", Dest: "LAX", DepDelay: floatPtr(0), ArrDelay: floatPtr(0)},
			{Origin: "LAX", Dest: "JFK", DepDelay: floatPtr(-3), ArrDelay: floatPtr(-3)},
		},
		HasDepDelay: false,
		HasArrDelay: true,
	}

	result := ClassifyPunctuality(table, 0)

	for _, l := range result.Legs {
		assert.False(t, l.OnTimeDep, "absent DEP_DELAY column must classify not-on-time")
		assert.True(t, l.OnTimeArr)
		assert.False(t, l.OnTimeBoth)
	}
}

func TestClassifyPunctuality_BothIsConjunction(t *testing.T) {
	table := domain.LegTable{
		Legs: []domain.FlightLeg{
			{DepDelay: floatPtr(0), ArrDelay: floatPtr(0)},
			{DepDelay: floatPtr(0), ArrDelay: floatPtr(30)},
			{DepDelay: floatPtr(30), ArrDelay: floatPtr(0)},
			{DepDelay: floatPtr(30), ArrDelay: floatPtr(30)},
		},
		HasDepDelay: true,
		HasArrDelay: true,
	}

	result := ClassifyPunctuality(table, 0)

	for i, l := range result.Legs {
		assert.Equal(t, l.OnTimeDep && l.OnTimeArr, l.OnTimeBoth, "leg %d", i)
	}
}

func TestClassifyPunctuality_DoesNotMutateInput(t *testing.T) {
	table := domain.LegTable{
		Legs:        []domain.FlightLeg{{DepDelay: floatPtr(0), ArrDelay: floatPtr(0)}},
		HasDepDelay: true,
		HasArrDelay: true,
	}

	_ = ClassifyPunctuality(table, 0)

	assert.False(t, table.Legs[0].OnTimeDep)
	assert.False(t, table.Legs[0].OnTimeArr)
}
