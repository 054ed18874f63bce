package model

import "strings"

// Calculation names one aggregate quantity a request can ask for.
type Calculation string

// Supported calculations.
const (
	CalcMean       Calculation = "mean"
	CalcMax        Calculation = "max"
	CalcMin        Calculation = "min"
	CalcCountAbove Calculation = "count_above"
	CalcCountBelow Calculation = "count_below"
	CalcCountEqual Calculation = "count_equal"
)

// calculationAliases maps the long spellings accepted in requests onto their
// canonical names.
var calculationAliases = map[string]Calculation{
	"count above threshold": CalcCountAbove,
	"count below threshold": CalcCountBelow,
	"count equal threshold": CalcCountEqual,
}

// CalculationSet is the set of calculations one request asked for.
type CalculationSet map[Calculation]struct{}

// ParseCalculations normalizes the requested calculation names into a set.
// Unknown names are dropped.
func ParseCalculations(names []string) CalculationSet {
	set := make(CalculationSet, len(names))

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		if c, ok := calculationAliases[name]; ok {
			set[c] = struct{}{}
			continue
		}

		switch c := Calculation(name); c {
		case CalcMean, CalcMax, CalcMin, CalcCountAbove, CalcCountBelow, CalcCountEqual:
			set[c] = struct{}{}
		}
	}

	return set
}

// Has reports whether the calculation was requested.
func (s CalculationSet) Has(c Calculation) bool {
	_, ok := s[c]
	return ok
}
