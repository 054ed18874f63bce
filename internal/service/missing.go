package service

import (
	"fmt"

	"github.com/jeremiedurand/climate-stats-api/internal/model"
)

// WMO monthly completeness thresholds: a month is flagged when at least 11
// observations are missing overall or at least 5 are missing in a row.
const (
	wmoMissingThreshold     = 11
	wmoConsecutiveThreshold = 5
)

// EvaluateMissingData scans one fetched value sequence, counts missing
// entries and classifies the result against the requested policy. A nil
// entry is the missing marker. The missing percentage is computed against
// totalRecordCount, the number of records the search matched, which can
// exceed the number of fetched values.
func EvaluateMissingData(totalRecordCount int64, values []*float64, policy model.MissingDataPolicy) (*model.MissingDataReport, error) {
	if totalRecordCount == 0 {
		return nil, ErrNoMatchingRecords
	}

	missing := missingCount(values)
	percentage := round2(100 * float64(missing) / float64(totalRecordCount))
	longestRun := longestMissingRun(values)

	status, err := classifyMissingData(policy, percentage, missing, longestRun)
	if err != nil {
		return nil, err
	}

	return &model.MissingDataReport{
		MissingCount:      missing,
		MissingPercentage: percentage,
		LongestRun:        longestRun,
		Status:            status,
	}, nil
}

// MissingCount counts the missing entries of the value sequence.
func missingCount(values []*float64) int {
	count := 0
	for _, v := range values {
		if v == nil {
			count++
		}
	}

	return count
}

// LongestMissingRun finds the length of the longest stretch of consecutive
// missing entries, 0 when nothing is missing.
func longestMissingRun(values []*float64) int {
	var run, longest int

	for _, v := range values {
		if v == nil {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	return longest
}

// ClassifyMissingData checks the computed missing data quantities against
// the requested policy and returns the resulting status line.
func classifyMissingData(policy model.MissingDataPolicy, percentage float64, missing, longestRun int) (string, error) {
	switch policy {
	case model.PolicyNone:
		return "None", nil

	case model.PolicyPercent5, model.PolicyPercent10, model.PolicyPercent15:
		threshold, _ := policy.PercentThreshold()
		if percentage > float64(threshold) {
			return fmt.Sprintf("The input missing data option filtered this result: percentage missing data > input missing data option: %v > %d", percentage, threshold), nil
		}
		return "OK", nil

	case model.PolicyWMO:
		// A sequence without a missing run passes regardless of the count.
		if longestRun == 0 {
			return "OK", nil
		}
		if missing >= wmoMissingThreshold || longestRun >= wmoConsecutiveThreshold {
			return "WMO criteria met: Missing or invalid month", nil
		}
		return "OK", nil
	}

	return "", fmt.Errorf("%w, got %v", model.ErrInvalidMissingDataOption, policy)
}
