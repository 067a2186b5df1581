package tables

import "github.com/wukjhc-create/elta-crm-sub005/pkg/spec"

// Unit material costs in DKK. Baseline supplier list prices; kept as data so
// the sizing algorithms stay independent of pricing.
const (
	MainSwitchCost           = 320.0    // 1-/3-phase main switch up to 40 A
	MainSwitchSurcharge      = 180.0    // added above 40 A
	SurgeProtectionType2Cost = 1250.0   // Type 2 arrester incl. backup fuse
	CircuitMiscCost          = 45.0     // bus bars, terminals, labeling per circuit
	PanelSetupLaborSeconds   = 4 * 3600 // mounting, main switch, busbars
	CircuitLaborSeconds      = 1800     // per-circuit termination and test
	CablePullLaborSeconds    = 900      // per cable run
)

// DefaultCableCostPerMeter is the fallback when a cross-section has no price
// entry.
const DefaultCableCostPerMeter = 12.0

// cableCostPerMeter is the installed cable price per meter by cross-section.
var cableCostPerMeter = map[float64]float64{
	1.5: 8, 2.5: 11, 4: 18, 6: 26, 10: 42, 16: 65,
	25: 95, 35: 130, 50: 175, 70: 240, 95: 320, 120: 410,
}

// enclosureCost is the panel enclosure price by module count.
var enclosureCost = map[int]float64{
	12: 450, 24: 750, 36: 1100, 48: 1500, 72: 2200,
}

// CableCostPerMeter returns the per-meter cable price for a cross-section.
// The second return is false when no price entry exists.
func CableCostPerMeter(crossSection float64) (float64, bool) {
	c, ok := cableCostPerMeter[crossSection]
	return c, ok
}

// EnclosureCost returns the enclosure price for a standard module count.
// The second return is false for non-standard sizes.
func EnclosureCost(modules int) (float64, bool) {
	c, ok := enclosureCost[modules]
	return c, ok
}

// BreakerCost returns the device price for a breaker type and rating band.
func BreakerCost(breaker spec.BreakerType, ratingA int) float64 {
	switch breaker {
	case spec.BreakerRCBO:
		switch {
		case ratingA <= 16:
			return 295
		case ratingA <= 32:
			return 340
		case ratingA <= 63:
			return 520
		default:
			return 780
		}
	case spec.BreakerRCD:
		switch {
		case ratingA <= 40:
			return 380
		case ratingA <= 63:
			return 480
		default:
			return 650
		}
	default: // MCB
		switch {
		case ratingA <= 16:
			return 85
		case ratingA <= 32:
			return 110
		case ratingA <= 63:
			return 220
		default:
			return 380
		}
	}
}
