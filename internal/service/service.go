// Package service implements the climate statistics process: one bounded
// observation search reduced into a missing data report, the requested
// aggregate statistics and the distinct reporting stations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeremiedurand/climate-stats-api/internal/model"
)

// ErrNoMatchingRecords is returned when the request filters match nothing,
// leaving no record count to compute percentages against.
var ErrNoMatchingRecords = errors.New("no records match the given filters")

// Repository provides necessary repo methods.
type Repository interface {
	SearchObservations(ctx context.Context, req *model.StatsRequest) (*model.ObservationPage, error)
	InsertObservations(ctx context.Context, index string, docs []*model.ObservationDocument) error
	EnsureObservationIndexes(ctx context.Context, index string) error
}

// ClimateStatsService provides climate statistics functionality.
type ClimateStatsService struct {
	repo Repository
}

// New creates new ClimateStatsService.
func New(repo Repository) *ClimateStatsService {
	return &ClimateStatsService{
		repo: repo,
	}
}

// GetClimateStats runs one observation search for the request and reduces
// the fetched page into the GeoJSON-like process output.
func (cs *ClimateStatsService) GetClimateStats(ctx context.Context, req *model.StatsRequest) (*model.FeatureCollection, error) {
	page, err := cs.repo.SearchObservations(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to search observations: %w", err)
	}

	missing, err := EvaluateMissingData(page.MatchedCount, page.Values, req.MissingDataOption)
	if err != nil {
		return nil, err
	}

	stats := AggregateStatistics(model.ParseCalculations(req.Calculations), page.Values, req.Threshold)
	stations := UniqueStations(page.Stations)

	return buildFeatureCollection(req, missing, stats, stations), nil
}

// BuildFeatureCollection wraps the computed reports and the distinct
// stations into the process output.
func buildFeatureCollection(req *model.StatsRequest, missing *model.MissingDataReport, stats *model.StatisticsReport, stations []model.StationIdentity) *model.FeatureCollection {
	features := make([]model.Feature, 0, len(stations))
	for _, station := range stations {
		features = append(features, model.Feature{
			Type: "Feature",
			Properties: model.FeatureProperties{
				Name:      station.Name,
				StationID: station.ID,
			},
			Geometry: model.Geometry{
				Type:        "Point",
				Coordinates: station.Coordinates,
			},
		})
	}

	return &model.FeatureCollection{
		Type: "FeatureCollection",
		Info: model.RunInfo{
			Index:                 req.Index,
			Property:              req.Property,
			MissingDataOption:     req.MissingDataOption,
			MissingDataTotal:      missing.MissingCount,
			MissingDataPercentage: missing.MissingPercentage,
			LongestMissingRun:     missing.LongestRun,
			MissingDataStatus:     missing.Status,
			UniqueStationsCount:   len(stations),
		},
		GlobalStats: stats,
		Features:    features,
	}
}
