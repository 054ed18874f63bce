// Command climate-stats runs one climate statistics request against the
// document store and prints the resulting feature collection as JSON on
// stdout.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/jeremiedurand/climate-stats-api/internal/logger"
	"github.com/jeremiedurand/climate-stats-api/internal/model"
	"github.com/jeremiedurand/climate-stats-api/internal/repository"
	"github.com/jeremiedurand/climate-stats-api/internal/service"
)

var (
	index             = flag.String("index", "", "dataset to query, e.g. climate_public_daily_data")
	calculations      = flag.String("calculations", "", "comma separated calculations: mean, max, min, count_above, count_below, count_equal")
	property          = flag.String("property", "", "observation property to aggregate, e.g. TOTAL_PRECIPITATION")
	bbox              = flag.String("bbox", "", "bounding box as minLon,minLat,maxLon,maxLat")
	stations          = flag.String("stations", "", "comma separated station ids")
	threshold         = flag.Float64("threshold", 0, "threshold for the count calculations")
	missingDataOption = flag.String("missing-data-option", "None", "missing data policy: None, 5, 10, 15 or WMO")
	years             = flag.String("years", "", "comma separated years")
	months            = flag.String("months", "", "comma separated months")
	days              = flag.String("days", "", "comma separated days")
	hours             = flag.String("hours", "", "comma separated hours")
)

func main() {
	flag.Parse()

	req, err := buildRequest()
	if err != nil {
		logger.Fatal(err)
	}

	out, err := run(req)
	if err != nil {
		logger.Fatal(err)
	}

	fmt.Println(out)
}

func run(req *model.StatsRequest) (string, error) {
	repo, err := repository.New()
	if err != nil {
		return "", fmt.Errorf("failed to create repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error(err)
		}
	}()

	collection, err := service.New(repo).GetClimateStats(context.Background(), req)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(collection)
	if err != nil {
		return "", fmt.Errorf("failed to marshal feature collection: %w", err)
	}

	return string(body), nil
}

func buildRequest() (*model.StatsRequest, error) {
	if *index == "" {
		return nil, errors.New("index flag is required")
	}
	if *property == "" {
		return nil, errors.New("property flag is required")
	}

	policy, err := model.ParseMissingDataPolicy(*missingDataOption)
	if err != nil {
		return nil, err
	}

	box, err := parseBBox(*bbox)
	if err != nil {
		return nil, fmt.Errorf("invalid bbox flag: %w", err)
	}

	stationIDs, err := splitInt64s(*stations)
	if err != nil {
		return nil, fmt.Errorf("invalid stations flag: %w", err)
	}

	yearList, err := splitInts(*years)
	if err != nil {
		return nil, fmt.Errorf("invalid years flag: %w", err)
	}
	monthList, err := splitInts(*months)
	if err != nil {
		return nil, fmt.Errorf("invalid months flag: %w", err)
	}
	dayList, err := splitInts(*days)
	if err != nil {
		return nil, fmt.Errorf("invalid days flag: %w", err)
	}
	hourList, err := splitInts(*hours)
	if err != nil {
		return nil, fmt.Errorf("invalid hours flag: %w", err)
	}

	return &model.StatsRequest{
		Index:             *index,
		Calculations:      splitList(*calculations),
		Property:          *property,
		BBox:              box,
		StationIDs:        stationIDs,
		Threshold:         *threshold,
		MissingDataOption: policy,
		Years:             yearList,
		Months:            monthList,
		Days:              dayList,
		Hours:             hourList,
	}, nil
}

// ParseBBox reads the four comma separated bounding box coordinates into the
// top left and bottom right corners.
func parseBBox(s string) (*model.BoundingBox, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("expected 4 coordinates, got %d", len(parts))
	}

	coords := make([]float64, 0, len(parts))
	for _, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse coordinate %q: %w", part, err)
		}
		coords = append(coords, c)
	}

	return &model.BoundingBox{
		TopLeft:     model.Coordinate{Lat: coords[3], Lon: coords[0]},
		BottomRight: model.Coordinate{Lat: coords[1], Lon: coords[2]},
	}, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, ",")
}

func splitInts(s string) ([]int, error) {
	var values []int
	for _, part := range splitList(s) {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

func splitInt64s(s string) ([]int64, error) {
	var values []int64
	for _, part := range splitList(s) {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}
