package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMissingDataOption is returned when a request carries a missing
// data option outside the accepted set.
var ErrInvalidMissingDataOption = errors.New(`invalid missing data option, expected one of: None, 5, 10, 15, WMO`)

// MissingDataPolicy selects how a result is classified against its share of
// missing data. The zero value is PolicyNone, which accepts everything.
type MissingDataPolicy int

// Accepted missing data policies.
const (
	PolicyNone MissingDataPolicy = iota
	PolicyPercent5
	PolicyPercent10
	PolicyPercent15
	PolicyWMO
)

// ParseMissingDataPolicy parses the textual form of a policy. The empty
// string means no policy.
func ParseMissingDataPolicy(s string) (MissingDataPolicy, error) {
	switch strings.TrimSpace(s) {
	case "", "None", "none":
		return PolicyNone, nil
	case "5":
		return PolicyPercent5, nil
	case "10":
		return PolicyPercent10, nil
	case "15":
		return PolicyPercent15, nil
	case "WMO", "wmo":
		return PolicyWMO, nil
	}

	return PolicyNone, fmt.Errorf("%w, got %q", ErrInvalidMissingDataOption, s)
}

// PercentThreshold returns the maximum accepted percentage of missing data
// and whether the policy is one of the percentage policies.
func (p MissingDataPolicy) PercentThreshold() (int, bool) {
	switch p {
	case PolicyPercent5:
		return 5, true
	case PolicyPercent10:
		return 10, true
	case PolicyPercent15:
		return 15, true
	}

	return 0, false
}

func (p MissingDataPolicy) String() string {
	switch p {
	case PolicyNone:
		return "None"
	case PolicyWMO:
		return "WMO"
	}

	if threshold, ok := p.PercentThreshold(); ok {
		return strconv.Itoa(threshold)
	}

	return fmt.Sprintf("MissingDataPolicy(%d)", int(p))
}

// UnmarshalJSON accepts null, the bare numbers 5, 10 and 15, and the strings
// the textual form accepts.
func (p *MissingDataPolicy) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*p = PolicyNone
		return nil
	case float64:
		parsed, err := ParseMissingDataPolicy(strconv.FormatFloat(value, 'f', -1, 64))
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case string:
		parsed, err := ParseMissingDataPolicy(value)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	return fmt.Errorf("%w, got %v", ErrInvalidMissingDataOption, v)
}

// MarshalJSON writes the policy back in its request form: null for no
// policy, a bare number for the percentage policies and "WMO" otherwise.
func (p MissingDataPolicy) MarshalJSON() ([]byte, error) {
	if threshold, ok := p.PercentThreshold(); ok {
		return json.Marshal(threshold)
	}

	if p == PolicyWMO {
		return json.Marshal(p.String())
	}

	return []byte("null"), nil
}
