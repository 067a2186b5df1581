package panel

import (
	"sort"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

// CostBreakdown itemizes the panel material cost by category.
type CostBreakdown struct {
	Enclosure       float64 `json:"enclosure"`
	MainSwitch      float64 `json:"main_switch"`
	Breakers        float64 `json:"breakers"`
	RCDGroups       float64 `json:"rcd_groups"`
	SurgeProtection float64 `json:"surge_protection"`
	Misc            float64 `json:"misc"`
	Total           float64 `json:"total"`
}

// deviceKey identifies one distinct breaker line item.
type deviceKey struct {
	Breaker spec.BreakerType
	RatingA int
	Curve   spec.Characteristic
}

// breakdownCosts sums enclosure, main switch, breaker, RCD, surge, and
// per-circuit miscellaneous costs.
func breakdownCosts(p *PanelConfiguration) CostBreakdown {
	var cb CostBreakdown

	if c, ok := tables.EnclosureCost(p.TotalModules); ok {
		cb.Enclosure = c
	} else {
		// Non-standard size after rounding should not happen; price as the
		// largest standard enclosure.
		cb.Enclosure, _ = tables.EnclosureCost(tables.EnclosureSizes[len(tables.EnclosureSizes)-1])
	}

	cb.MainSwitch = tables.MainSwitchCost
	if p.MainSwitchA > 40 {
		cb.MainSwitch += tables.MainSwitchSurcharge
	}

	// Aggregate breakers by distinct (type, rating, curve). Sorted keys keep
	// the summation order deterministic.
	counts := map[deviceKey]int{}
	for _, c := range p.Circuits {
		counts[deviceKey{c.Breaker, c.RatingA, c.Curve}]++
	}
	keys := make([]deviceKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Breaker != keys[j].Breaker {
			return keys[i].Breaker < keys[j].Breaker
		}
		if keys[i].RatingA != keys[j].RatingA {
			return keys[i].RatingA < keys[j].RatingA
		}
		return keys[i].Curve < keys[j].Curve
	})
	for _, k := range keys {
		cb.Breakers += tables.BreakerCost(k.Breaker, k.RatingA) * float64(counts[k])
	}

	for _, g := range p.RCDGroups {
		cb.RCDGroups += tables.BreakerCost(spec.BreakerRCD, g.RatingA)
	}

	cb.SurgeProtection = tables.SurgeProtectionType2Cost
	cb.Misc = tables.CircuitMiscCost * float64(len(p.Circuits))

	cb.Total = cb.Enclosure + cb.MainSwitch + cb.Breakers + cb.RCDGroups + cb.SurgeProtection + cb.Misc
	return cb
}
