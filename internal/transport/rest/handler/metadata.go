package handler

// processMetadata is the self-description served to process discovery
// clients. Input names and accepted values mirror the execution request
// body.
var processMetadata = map[string]interface{}{
	"version": "0.1.0",
	"id":      "climate-stats",
	"title":   "Climate observation statistics",
	"description": "Computes missing data quantities and aggregate statistics " +
		"for one observation property over a filtered set of climate records, " +
		"returned as a GeoJSON feature collection of the reporting stations.",
	"keywords": []string{"climate stats", "observations", "missing data"},
	"links": []map[string]string{
		{
			"type":  "text/html",
			"rel":   "canonical",
			"title": "project source",
			"href":  "https://github.com/jeremiedurand/climate-stats-api",
		},
	},
	"inputs": map[string]interface{}{
		"index": map[string]interface{}{
			"title":     "dataset to query",
			"schema":    map[string]interface{}{"type": "string"},
			"minOccurs": 1,
			"maxOccurs": 1,
		},
		"calculations": map[string]interface{}{
			"title": "calculations to perform",
			"schema": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "string",
					"enum": []string{
						"mean",
						"max",
						"min",
						"count above threshold",
						"count below threshold",
						"count equal threshold",
					},
				},
			},
			"minOccurs": 0,
		},
		"property": map[string]interface{}{
			"title":     "observation property to aggregate",
			"schema":    map[string]interface{}{"type": "string"},
			"minOccurs": 1,
			"maxOccurs": 1,
		},
		"bbox": map[string]interface{}{
			"title":     "bounding box corners as top left and bottom right lat/lon pairs",
			"schema":    map[string]interface{}{"type": "object"},
			"minOccurs": 0,
			"maxOccurs": 1,
		},
		"stations_ids": map[string]interface{}{
			"title":     "station ids to include",
			"schema":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "integer"}},
			"minOccurs": 0,
		},
		"threshold": map[string]interface{}{
			"title":     "threshold for the count calculations",
			"schema":    map[string]interface{}{"type": "number"},
			"minOccurs": 0,
			"maxOccurs": 1,
		},
		"missing_data_option": map[string]interface{}{
			"title":     "missing data policy",
			"schema":    map[string]interface{}{"enum": []interface{}{nil, 5, 10, 15, "WMO"}},
			"minOccurs": 0,
			"maxOccurs": 1,
		},
		"years": map[string]interface{}{
			"title":     "years to include",
			"schema":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "integer"}},
			"minOccurs": 0,
		},
		"months": map[string]interface{}{
			"title":     "months to include",
			"schema":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "integer"}},
			"minOccurs": 0,
		},
		"days": map[string]interface{}{
			"title":     "days to include",
			"schema":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "integer"}},
			"minOccurs": 0,
		},
		"hours": map[string]interface{}{
			"title":     "hours to include",
			"schema":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "integer"}},
			"minOccurs": 0,
		},
	},
	"outputs": map[string]interface{}{
		"climate-stats-response": map[string]interface{}{
			"title": "climate statistics feature collection",
			"schema": map[string]interface{}{
				"contentMediaType": "application/json",
				"type":             "object",
			},
		},
	},
	"example": map[string]interface{}{
		"inputs": map[string]interface{}{
			"index":               "climate_public_daily_data",
			"calculations":        []string{"mean", "count above threshold"},
			"property":            "TOTAL_PRECIPITATION",
			"stations_ids":        []int{1535, 1789, 5137, 5555},
			"threshold":           0,
			"missing_data_option": 5,
			"years":               []int{1989, 1990},
			"days":                []int{1},
		},
	},
}
