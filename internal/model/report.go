package model

// MissingDataReport summarizes the data gaps of one fetched value sequence.
type MissingDataReport struct {
	MissingCount      int     `json:"missing_data_total"`
	MissingPercentage float64 `json:"missing_data_percentage"`
	LongestRun        int     `json:"longest_missing_run"`
	Status            string  `json:"missing_data_status"`
}

// StatisticsReport carries the aggregate quantities computed over the
// non-missing values. Optional quantities stay nil when they were not
// requested or when no values remained to aggregate, and marshal as null.
type StatisticsReport struct {
	Total      int      `json:"total"`
	Mean       *float64 `json:"mean"`
	Max        *float64 `json:"max"`
	Min        *float64 `json:"min"`
	Threshold  float64  `json:"threshold"`
	CountAbove *int     `json:"count_above"`
	CountBelow *int     `json:"count_below"`
	CountEqual *int     `json:"count_equal"`
}
