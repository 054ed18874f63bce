package main

import (
	"fmt"

	"github.com/jeremiedurand/climate-stats-api/internal/api"
	"github.com/jeremiedurand/climate-stats-api/internal/logger"
)

func main() {
	err := api.RunAPI()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run climate stats api: %v", err))
	}
}
