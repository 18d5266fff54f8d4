package nscp

import (
	"fmt"
	"strings"
)

// LoadCase identifies the origin of a load so it can be factored
// NSCP 2015 Section 203.2 - Symbols and notation
type LoadCase string

const (
	Dead       LoadCase = "D"  // Dead load
	Live       LoadCase = "L"  // Live load
	Roof       LoadCase = "Lr" // Roof live load
	Wind       LoadCase = "W"  // Wind load
	Earthquake LoadCase = "E"  // Earthquake load
	Rain       LoadCase = "R"  // Rain load
)

// LoadCases lists every load case in the order reports print them
var LoadCases = []LoadCase{Dead, Live, Roof, Wind, Earthquake, Rain}

// ParseLoadCase accepts the NSCP symbol or the long name (case-insensitive).
// An empty string is a dead load.
func ParseLoadCase(s string) (LoadCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "d", "dead":
		return Dead, nil
	case "l", "live":
		return Live, nil
	case "lr", "roof":
		return Roof, nil
	case "w", "wind":
		return Wind, nil
	case "e", "earthquake":
		return Earthquake, nil
	case "r", "rain":
		return Rain, nil
	}
	return "", fmt.Errorf("unknown load case %q (use D, L, Lr, W, E or R)", s)
}

// Name returns the long name of the load case
func (c LoadCase) Name() string {
	switch c {
	case Dead, "":
		return "Dead"
	case Live:
		return "Live"
	case Roof:
		return "Roof live"
	case Wind:
		return "Wind"
	case Earthquake:
		return "Earthquake"
	case Rain:
		return "Rain"
	}
	return string(c)
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	Factors     map[LoadCase]float64
}

// Factor returns the load factor applied to a load case. Cases the
// combination does not mention get 0; an empty case counts as dead load.
func (lc LoadCombination) Factor(c LoadCase) float64 {
	if c == "" {
		c = Dead
	}
	return lc.Factors[c]
}

// Unfactored is the service-level combination (every case at 1.0)
var Unfactored = LoadCombination{
	ID:          "S",
	Description: "D + L + Lr + W + E + R (unfactored)",
	Factors: map[LoadCase]float64{
		Dead: 1, Live: 1, Roof: 1, Wind: 1, Earthquake: 1, Rain: 1,
	},
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Factors: map[LoadCase]float64{Dead: 1.4}},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Factors:     map[LoadCase]float64{Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Factors:     map[LoadCase]float64{Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Factors:     map[LoadCase]float64{Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Factors:     map[LoadCase]float64{Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	},
	{ID: "6", Description: "0.9D + 1.0W", Factors: map[LoadCase]float64{Dead: 0.9, Wind: 1.0}},
	{ID: "7", Description: "0.9D + 1.0E", Factors: map[LoadCase]float64{Dead: 0.9, Earthquake: 1.0}},
}

// SimplifiedCombinations for common beam design scenarios
// These are the most frequently used combinations for gravity loads
var SimplifiedCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Factors: map[LoadCase]float64{Dead: 1.4}},
	{ID: "2", Description: "1.2D + 1.6L", Factors: map[LoadCase]float64{Dead: 1.2, Live: 1.6}},
}

// FindCombination looks a combination up by ID in the full table,
// falling back to the unfactored service combination for "S".
func FindCombination(id string) (LoadCombination, error) {
	id = strings.TrimSpace(id)
	if strings.EqualFold(id, Unfactored.ID) {
		return Unfactored, nil
	}
	for _, combo := range LoadCombinations {
		if combo.ID == id {
			return combo, nil
		}
	}
	return LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
}
