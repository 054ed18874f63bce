package service

import (
	"github.com/jeremiedurand/climate-stats-api/internal/model"
	"github.com/montanaflynn/stats"
)

// AggregateStatistics computes the requested aggregate quantities over the
// non-missing values of one fetched sequence. Quantities that were not
// requested, or that have no values left to aggregate, stay nil in the
// report.
func AggregateStatistics(calcs model.CalculationSet, values []*float64, threshold float64) *model.StatisticsReport {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			present = append(present, *v)
		}
	}

	report := &model.StatisticsReport{
		Total:     len(present),
		Threshold: threshold,
	}

	if len(present) == 0 {
		return report
	}

	if calcs.Has(model.CalcMean) {
		if mean, err := stats.Mean(present); err == nil {
			report.Mean = floatPtr(round2(mean))
		}
	}
	if calcs.Has(model.CalcMax) {
		if max, err := stats.Max(present); err == nil {
			report.Max = floatPtr(max)
		}
	}
	if calcs.Has(model.CalcMin) {
		if min, err := stats.Min(present); err == nil {
			report.Min = floatPtr(min)
		}
	}

	if calcs.Has(model.CalcCountAbove) {
		report.CountAbove = intPtr(countMatching(present, func(v float64) bool { return v > threshold }))
	}
	if calcs.Has(model.CalcCountBelow) {
		report.CountBelow = intPtr(countMatching(present, func(v float64) bool { return v < threshold }))
	}
	if calcs.Has(model.CalcCountEqual) {
		// Counts values recorded as exactly the threshold, not values near it.
		report.CountEqual = intPtr(countMatching(present, func(v float64) bool { return v == threshold }))
	}

	return report
}

func countMatching(values []float64, match func(float64) bool) int {
	count := 0
	for _, v := range values {
		if match(v) {
			count++
		}
	}

	return count
}

// UniqueStations returns the distinct station identities in first seen
// order. Two stations are the same only when name, id and coordinates all
// match exactly.
func UniqueStations(stations []model.StationIdentity) []model.StationIdentity {
	unique := make([]model.StationIdentity, 0, len(stations))

	for _, station := range stations {
		if !containsStation(unique, station) {
			unique = append(unique, station)
		}
	}

	return unique
}

func containsStation(stations []model.StationIdentity, station model.StationIdentity) bool {
	for _, s := range stations {
		if s.Name == station.Name && s.ID == station.ID && coordinatesEqual(s.Coordinates, station.Coordinates) {
			return true
		}
	}

	return false
}

func coordinatesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	rounded, err := stats.Round(v, 2)
	if err != nil {
		return v
	}

	return rounded
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
