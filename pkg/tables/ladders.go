// Package tables holds the fixed reference data for the calculation engine:
// current-carrying capacities, derating factors, diversity factors, standard
// component ladders, and unit material costs. All tables are immutable keyed
// mappings; callers handle missing entries fail-soft with named defaults.
package tables

// CrossSections is the standard copper conductor ladder in mm².
var CrossSections = []float64{1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120}

// BreakerRatings is the standard breaker/fuse rating ladder in amperes.
var BreakerRatings = []int{6, 10, 13, 16, 20, 25, 32, 40, 50, 63, 80, 100}

// EnclosureSizes is the standard panel enclosure ladder in DIN modules.
var EnclosureSizes = []int{12, 24, 36, 48, 72}

// CopperResistivity is the resistivity of copper at operating temperature,
// in ohm·mm²/m.
const CopperResistivity = 0.0225

// SelectBreakerRating returns the smallest standard rating >= current, or the
// ladder maximum when current exceeds every entry.
func SelectBreakerRating(currentA float64) int {
	for _, r := range BreakerRatings {
		if float64(r) >= currentA {
			return r
		}
	}
	return BreakerRatings[len(BreakerRatings)-1]
}

// NextBreakerRating returns the ladder entry one step above rating, or rating
// itself when already at the top or not on the ladder.
func NextBreakerRating(rating int) int {
	for i, r := range BreakerRatings {
		if r == rating {
			if i+1 < len(BreakerRatings) {
				return BreakerRatings[i+1]
			}
			return r
		}
	}
	return rating
}

// SelectEnclosureSize returns the smallest standard enclosure >= modules, or
// the largest size when modules exceeds every entry.
func SelectEnclosureSize(modules int) int {
	for _, s := range EnclosureSizes {
		if s >= modules {
			return s
		}
	}
	return EnclosureSizes[len(EnclosureSizes)-1]
}

// IsStandardCrossSection reports whether mm2 is on the cross-section ladder.
func IsStandardCrossSection(mm2 float64) bool {
	for _, s := range CrossSections {
		if s == mm2 {
			return true
		}
	}
	return false
}

// IsStandardBreakerRating reports whether rating is on the breaker ladder.
func IsStandardBreakerRating(rating int) bool {
	for _, r := range BreakerRatings {
		if r == rating {
			return true
		}
	}
	return false
}
