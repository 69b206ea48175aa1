package nscp

import "github.com/alexiusacademia/csiapi/internal/csi"

// LoadKind is a load type named by the NSCP combinations.
type LoadKind int

const (
	Dead       LoadKind = iota + 1 // D
	Live                           // L
	Roof                           // Lr
	Wind                           // W
	Earthquake                     // E
)

func (k LoadKind) String() string {
	switch k {
	case Dead:
		return "D"
	case Live:
		return "L"
	case Roof:
		return "Lr"
	case Wind:
		return "W"
	case Earthquake:
		return "E"
	}
	return "?"
}

// KindOf maps a load pattern type to the load it contributes. Pattern
// types with no NSCP counterpart report false.
func KindOf(t csi.PatternType) (LoadKind, bool) {
	switch t {
	case csi.PatternDead, csi.PatternSuperDead:
		return Dead, true
	case csi.PatternLive, csi.PatternReducibleLive:
		return Live, true
	case csi.PatternRoofLive:
		return Roof, true
	case csi.PatternWind:
		return Wind, true
	case csi.PatternQuake:
		return Earthquake, true
	}
	return 0, false
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load

	// Principal is the load the combination is written for. Without it
	// the combination is covered by another one and is not generated.
	Principal LoadKind
}

// Factor returns the combination's factor on loads of kind k.
func (lc LoadCombination) Factor(k LoadKind) float64 {
	switch k {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	}
	return 0
}

// lateral reports whether the combination exists for wind or earthquake.
func (lc LoadCombination) lateral() bool {
	return lc.Wind != 0 || lc.Earthquake != 0
}

// applies reports whether the combination is needed for a model with the
// given loads: its principal load must be present, and a lateral
// combination needs one of its lateral loads.
func (lc LoadCombination) applies(present map[LoadKind]bool) bool {
	if lc.Principal != 0 && !present[lc.Principal] {
		return false
	}
	if !lc.lateral() {
		return true
	}
	return (lc.Wind != 0 && present[Wind]) || (lc.Earthquake != 0 && present[Earthquake])
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations. The host has no
// rain pattern type, so "Lr or R" is carried by roof live load alone.
// Combination 3 names two alternatives, "1.0L or 0.5W", and is split
// into 3a and 3b.
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
	},
	{
		ID:          "3a",
		Description: "1.2D + 1.6(Lr or R) + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Principal:   Roof,
	},
	{
		ID:          "3b",
		Description: "1.2D + 1.6(Lr or R) + 0.5W",
		Dead:        1.2,
		Roof:        1.6,
		Wind:        0.5,
		Principal:   Roof,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations are the gravity-only combinations.
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}
