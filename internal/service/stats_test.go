package service

import (
	"testing"

	"github.com/tj/assert"

	"github.com/jeremiedurand/climate-stats-api/internal/model"
)

func allCalculations() model.CalculationSet {
	return model.ParseCalculations([]string{"mean", "max", "min", "count_above", "count_below", "count_equal"})
}

func TestAggregateStatistics(t *testing.T) {
	cases := []struct {
		name      string
		calcs     model.CalculationSet
		values    []*float64
		threshold float64
		expected  *model.StatisticsReport
	}{
		{
			name:      "all calculations",
			calcs:     allCalculations(),
			values:    []*float64{floatPtr(1), floatPtr(2), nil, floatPtr(3)},
			threshold: 2,
			expected: &model.StatisticsReport{
				Total:      3,
				Mean:       floatPtr(2),
				Max:        floatPtr(3),
				Min:        floatPtr(1),
				Threshold:  2,
				CountAbove: intPtr(1),
				CountBelow: intPtr(1),
				CountEqual: intPtr(1),
			},
		},
		{
			name:      "repeated values share the counts",
			calcs:     allCalculations(),
			values:    []*float64{floatPtr(1), floatPtr(2), nil, floatPtr(4), floatPtr(2)},
			threshold: 2,
			expected: &model.StatisticsReport{
				Total:      4,
				Mean:       floatPtr(2.25),
				Max:        floatPtr(4),
				Min:        floatPtr(1),
				Threshold:  2,
				CountAbove: intPtr(1),
				CountBelow: intPtr(1),
				CountEqual: intPtr(2),
			},
		},
		{
			name:      "only requested calculations are filled",
			calcs:     model.ParseCalculations([]string{"max"}),
			values:    []*float64{floatPtr(1), floatPtr(2)},
			threshold: 0,
			expected: &model.StatisticsReport{
				Total: 2,
				Max:   floatPtr(2),
			},
		},
		{
			name:      "mean is rounded to two decimals",
			calcs:     model.ParseCalculations([]string{"mean"}),
			values:    []*float64{floatPtr(1), floatPtr(1), floatPtr(0)},
			threshold: 0,
			expected: &model.StatisticsReport{
				Total: 3,
				Mean:  floatPtr(0.67),
			},
		},
		{
			name:      "missing values are dropped before aggregating",
			calcs:     model.ParseCalculations([]string{"min", "count_below"}),
			values:    []*float64{nil, floatPtr(-3.5), nil, floatPtr(7)},
			threshold: 0,
			expected: &model.StatisticsReport{
				Total:      2,
				Min:        floatPtr(-3.5),
				CountBelow: intPtr(1),
			},
		},
		{
			name:      "all values missing leaves optional quantities empty",
			calcs:     allCalculations(),
			values:    []*float64{nil, nil, nil},
			threshold: 5,
			expected: &model.StatisticsReport{
				Total:     0,
				Threshold: 5,
			},
		},
		{
			name:      "no values at all",
			calcs:     allCalculations(),
			values:    nil,
			threshold: 1,
			expected: &model.StatisticsReport{
				Total:     0,
				Threshold: 1,
			},
		},
		{
			name:      "count equal requires the exact recorded value",
			calcs:     model.ParseCalculations([]string{"count_equal"}),
			values:    []*float64{floatPtr(0.30000000000000004), floatPtr(0.3)},
			threshold: 0.3,
			expected: &model.StatisticsReport{
				Total:      2,
				Threshold:  0.3,
				CountEqual: intPtr(1),
			},
		},
		{
			name:      "zero values count against a negative threshold",
			calcs:     model.ParseCalculations([]string{"count_above", "count_equal"}),
			values:    []*float64{floatPtr(0), floatPtr(-1), floatPtr(-1)},
			threshold: -1,
			expected: &model.StatisticsReport{
				Total:      3,
				Threshold:  -1,
				CountAbove: intPtr(1),
				CountEqual: intPtr(2),
			},
		},
		{
			name:      "no calculations requested",
			calcs:     model.CalculationSet{},
			values:    []*float64{floatPtr(1), floatPtr(2)},
			threshold: 0,
			expected: &model.StatisticsReport{
				Total: 2,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := AggregateStatistics(tc.calcs, tc.values, tc.threshold)
			assert.Equal(t, tc.expected, report)
		})
	}
}

func TestUniqueStations(t *testing.T) {
	ottawa := model.StationIdentity{Name: "OTTAWA CDA", ID: 4333, Coordinates: []float64{-75.72, 45.38}}
	vancouver := model.StationIdentity{Name: "VANCOUVER INTL A", ID: 889, Coordinates: []float64{-123.18, 49.19}}
	ottawaMoved := model.StationIdentity{Name: "OTTAWA CDA", ID: 4333, Coordinates: []float64{-75.71, 45.38}}

	cases := []struct {
		name     string
		stations []model.StationIdentity
		expected []model.StationIdentity
	}{
		{
			name:     "duplicates collapse in first seen order",
			stations: []model.StationIdentity{vancouver, ottawa, vancouver, ottawa, vancouver},
			expected: []model.StationIdentity{vancouver, ottawa},
		},
		{
			name:     "different coordinates stay distinct",
			stations: []model.StationIdentity{ottawa, ottawaMoved},
			expected: []model.StationIdentity{ottawa, ottawaMoved},
		},
		{
			name:     "empty input",
			stations: nil,
			expected: []model.StationIdentity{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, UniqueStations(tc.stations))
		})
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "rounds down",
			input:    33.333,
			expected: 33.33,
		},
		{
			name:     "rounds half up",
			input:    0.125,
			expected: 0.13,
		},
		{
			name:     "negative rounds half away from zero",
			input:    -0.125,
			expected: -0.13,
		},
		{
			name:     "already exact",
			input:    60,
			expected: 60,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, round2(tc.input))
		})
	}
}
