// Command climate-loader fetches daily archive exports for the given
// stations and loads them into the document store.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/jeremiedurand/climate-stats-api/internal/logger"
	"github.com/jeremiedurand/climate-stats-api/internal/repository"
	"github.com/jeremiedurand/climate-stats-api/internal/service"
)

var (
	index    = flag.String("index", "climate_public_daily_data", "dataset collection to load observations into")
	stations = flag.String("stations", "", "comma separated station ids to load")
)

func main() {
	flag.Parse()

	if *stations == "" {
		logger.Fatal(fmt.Errorf("stations flag is required"))
	}

	if err := run(*index, strings.Split(*stations, ",")); err != nil {
		logger.Fatal(err)
	}
}

func run(index string, stationIDs []string) error {
	repo, err := repository.New()
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error(err)
		}
	}()

	climateService := service.New(repo)
	for _, stationID := range stationIDs {
		stationID = strings.TrimSpace(stationID)
		if err := climateService.LoadDailyObservations(context.Background(), index, stationID); err != nil {
			return fmt.Errorf("failed to load station %s: %w", stationID, err)
		}
	}

	return nil
}
