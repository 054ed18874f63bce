// Package api wires the repository, service and handlers into the HTTP API.
package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/jeremiedurand/climate-stats-api/internal/logger"
	"github.com/jeremiedurand/climate-stats-api/internal/repository"
	"github.com/jeremiedurand/climate-stats-api/internal/service"
	"github.com/jeremiedurand/climate-stats-api/internal/transport/rest/handler"
)

// RunAPI runs climate stats API.
func RunAPI() error {
	repo, err := repository.New()
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error(err)
		}
	}()

	service := service.New(repo)
	server := handler.NewClimateStatsServer(service)

	r := mux.NewRouter()

	r.HandleFunc("/processes/climate-stats", server.ProcessMetadataHandler).Methods("GET")
	r.HandleFunc("/processes/climate-stats/execution", server.ExecuteClimateStatsHandler).Methods("POST")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		logger.Info(fmt.Sprintf("Defaulting to port %s", port))
	}

	logger.Info(fmt.Sprintf("Starting climate stats api at port %s", port))

	options := setupCorsOptions()
	return http.ListenAndServe(":"+port, handlers.CORS(options...)(r))
}
