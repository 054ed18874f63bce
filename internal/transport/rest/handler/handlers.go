package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jeremiedurand/climate-stats-api/internal/logger"
	"github.com/jeremiedurand/climate-stats-api/internal/model"
	"github.com/jeremiedurand/climate-stats-api/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go ClimateStatsService

// ClimateStatsService provides climate statistics methods.
type ClimateStatsService interface {
	GetClimateStats(ctx context.Context, req *model.StatsRequest) (*model.FeatureCollection, error)
}

// ClimateStatsServer is a server for climate statistics processing.
type ClimateStatsServer struct {
	service ClimateStatsService
}

// NewClimateStatsServer creates new ClimateStatsServer.
func NewClimateStatsServer(service ClimateStatsService) *ClimateStatsServer {
	return &ClimateStatsServer{service}
}

// ExecuteClimateStatsHandler handles climate statistics execution requests.
func (s *ClimateStatsServer) ExecuteClimateStatsHandler(w http.ResponseWriter, r *http.Request) {
	statsReq, err := decodeStatsRequest(r)
	if err != nil {
		logger.Error(err)
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	stats, err := s.service.GetClimateStats(r.Context(), statsReq)
	if errors.Is(err, service.ErrNoMatchingRecords) {
		respondErr(w, http.StatusNotFound, err)
		return
	}
	if errors.Is(err, model.ErrInvalidMissingDataOption) {
		respondErr(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get climate statistics: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, stats)
}

// ProcessMetadataHandler serves the process description.
func (s *ClimateStatsServer) ProcessMetadataHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, processMetadata)
}

func decodeStatsRequest(r *http.Request) (*model.StatsRequest, error) {
	statsReq := new(model.StatsRequest)
	if err := json.NewDecoder(r.Body).Decode(statsReq); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}

	if statsReq.Index == "" {
		return nil, errors.New("index parameter not provided in request")
	}
	if statsReq.Property == "" {
		return nil, errors.New("property parameter not provided in request")
	}

	return statsReq, nil
}
