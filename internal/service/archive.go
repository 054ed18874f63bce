package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/jeremiedurand/climate-stats-api/internal/logger"
	"github.com/jeremiedurand/climate-stats-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var dailyFileNameRegExp = `(climate_daily_+)`

// Column layout of the daily archive exports.
const (
	colStationID = iota
	colStationName
	colLongitude
	colLatitude
	colYear
	colMonth
	colDay
	colMeanTemperature
	colMinTemperature
	colMaxTemperature
	colTotalPrecipitation
	colTotalRain
	colTotalSnow
	colCount
)

// measurementColumns maps measurement columns onto document property names.
// Measurement cells may be empty and then stay null in the document.
var measurementColumns = map[int]string{
	colMeanTemperature:    "MEAN_TEMPERATURE",
	colMinTemperature:     "MIN_TEMPERATURE",
	colMaxTemperature:     "MAX_TEMPERATURE",
	colTotalPrecipitation: "TOTAL_PRECIPITATION",
	colTotalRain:          "TOTAL_RAIN",
	colTotalSnow:          "TOTAL_SNOW",
}

// LoadDailyObservations finds the daily archive files of the given station,
// parses them and stores the observation documents in the given dataset
// collection.
func (cs *ClimateStatsService) LoadDailyObservations(ctx context.Context, index, stationID string) error {
	listing, err := getArchiveListing()
	if err != nil {
		return fmt.Errorf("failed to get archive listing: %w", err)
	}

	fileNames := findStationDataFiles(stationID, listing)
	if len(fileNames) == 0 {
		return fmt.Errorf("no archive files found for station %s", stationID)
	}

	if err := cs.repo.EnsureObservationIndexes(ctx, index); err != nil {
		return fmt.Errorf("failed to ensure observation indexes: %w", err)
	}

	for _, fileName := range fileNames {
		docs, err := getArchiveObservations(fileName)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", fileName, err)
		}

		if err := cs.repo.InsertObservations(ctx, index, docs); err != nil {
			return fmt.Errorf("failed to insert observations from %s: %w", fileName, err)
		}

		logger.Info(fmt.Sprintf("loaded %d observations from %s", len(docs), fileName))
	}

	return nil
}

// GetArchiveListing fetches the archive directory listing page.
func getArchiveListing() (string, error) {
	resp, err := http.Get(os.Getenv("CLIMATE_ARCHIVE_URL"))
	if err != nil {
		return "", fmt.Errorf("failed to get archive listing from source: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// FindStationDataFiles looks for the station's daily data file names in the
// archive listing page.
func findStationDataFiles(stationID, listingHTML string) []string {
	z := html.NewTokenizer(strings.NewReader(listingHTML))

	var isLink bool
	var fileNames []string

	for {
		tokenType := z.Next()
		tokenData := z.Token().Data

		switch tokenType {
		case html.ErrorToken:
			return fileNames
		case html.StartTagToken:
			if tokenData == "a" {
				isLink = true
			}
		case html.TextToken:
			if isLink {
				isDataFile, err := regexp.MatchString(dailyFileNameRegExp+stationID, tokenData)
				if err != nil {
					logger.Error(fmt.Errorf("failed to check regexp in data file name: %v", err))
					continue
				}
				if isDataFile {
					fileNames = append(fileNames, tokenData)
				}

				isLink = false
			}
		default:
			continue
		}
	}
}

// GetArchiveObservations fetches one archive file and parses its records.
func getArchiveObservations(fileName string) ([]*model.ObservationDocument, error) {
	resp, err := http.Get(os.Getenv("CLIMATE_ARCHIVE_URL") + fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to get archive file from source: %w", err)
	}
	defer resp.Body.Close()

	return parseDailyObservations(resp.Body)
}

// ParseDailyObservations reads a daily archive export, decoding the legacy
// encoding the archive still serves station names in.
func parseDailyObservations(r io.Reader) ([]*model.ObservationDocument, error) {
	reader := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read archive records: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("archive file contains no data rows")
	}

	// first line is the column header
	docs := make([]*model.ObservationDocument, 0, len(records)-1)
	for _, record := range records[1:] {
		doc, err := parseDailyObservation(record)
		if err != nil {
			logger.Error(err)
			continue
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// ParseDailyObservation converts one archive record into an observation
// document.
func parseDailyObservation(record []string) (*model.ObservationDocument, error) {
	if len(record) < colCount {
		return nil, fmt.Errorf("expected %d columns, got %d", colCount, len(record))
	}

	stationID, err := strconv.ParseInt(record[colStationID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse station id: %w", err)
	}

	lon, err := strconv.ParseFloat(record[colLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude: %w", err)
	}

	lat, err := strconv.ParseFloat(record[colLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude: %w", err)
	}

	year, err := strconv.Atoi(record[colYear])
	if err != nil {
		return nil, fmt.Errorf("failed to parse year: %w", err)
	}

	month, err := strconv.Atoi(record[colMonth])
	if err != nil {
		return nil, fmt.Errorf("failed to parse month: %w", err)
	}

	day, err := strconv.Atoi(record[colDay])
	if err != nil {
		return nil, fmt.Errorf("failed to parse day: %w", err)
	}

	properties := bson.M{
		"STN_ID":       stationID,
		"STATION_NAME": strings.TrimSpace(record[colStationName]),
		"LOCAL_YEAR":   year,
		"LOCAL_MONTH":  month,
		"LOCAL_DAY":    day,
	}

	for col, name := range measurementColumns {
		value, err := parseMeasurement(record[col])
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		if value != nil {
			properties[name] = *value
		} else {
			properties[name] = nil
		}
	}

	return &model.ObservationDocument{
		Type:       "Feature",
		Properties: properties,
		Geometry: model.Geometry{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
	}, nil
}

// ParseMeasurement parses a measurement cell, keeping empty cells as the
// missing marker.
func parseMeasurement(cell string) (*float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
