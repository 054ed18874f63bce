package model

// RunInfo echoes the request parameters alongside the missing data report in
// the process output.
type RunInfo struct {
	Index                 string            `json:"index"`
	Property              string            `json:"property"`
	MissingDataOption     MissingDataPolicy `json:"missing_data_option"`
	MissingDataTotal      int               `json:"missing_data_total"`
	MissingDataPercentage float64           `json:"missing_data_percentage"`
	LongestMissingRun     int               `json:"longest_missing_run"`
	MissingDataStatus     string            `json:"missing_data_status"`
	UniqueStationsCount   int               `json:"unique_stations_count"`
}

// FeatureProperties carries the station attributes shown per feature.
type FeatureProperties struct {
	Name      string `json:"name"`
	StationID int64  `json:"station_id"`
}

// Feature is a GeoJSON point feature for one distinct station.
type Feature struct {
	Type       string            `json:"type"`
	Properties FeatureProperties `json:"properties"`
	Geometry   Geometry          `json:"geometry"`
}

// FeatureCollection is the GeoJSON-like process output: the run info, the
// statistics over all matched values and one feature per distinct station.
type FeatureCollection struct {
	Type        string            `json:"type"`
	Info        RunInfo           `json:"info"`
	GlobalStats *StatisticsReport `json:"global_stats"`
	Features    []Feature         `json:"features"`
}
