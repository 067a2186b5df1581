// Package load aggregates a project's loads by category, applies diversity
// factors, balances demand across phases, and recommends the main breaker and
// supply fuse ratings.
package load

import (
	"fmt"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/cable"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

// CategoryLoad is the per-category aggregation row.
type CategoryLoad struct {
	Category   spec.LoadCategory `json:"category"`
	ConnectedW float64           `json:"connected_w"`
	DemandW    float64           `json:"demand_w"`
	Factor     float64           `json:"factor"` // table factor; per-entry overrides applied in DemandW
}

// Result is the complete load analysis output.
type Result struct {
	ConnectedW       float64        `json:"connected_w"`
	DemandW          float64        `json:"demand_w"`
	Categories       []CategoryLoad `json:"categories"`
	PhaseLoadsW      [3]float64     `json:"phase_loads_w"` // demand per phase, 3-phase supply only
	ImbalancePercent float64        `json:"imbalance_percent"`
	DemandCurrentA   float64        `json:"demand_current_a"`
	MainBreakerA     int            `json:"main_breaker_a"`
	SupplyFuseA      int            `json:"supply_fuse_a"`
	SupplyAdequate   bool           `json:"supply_adequate"`
	Warnings         []string       `json:"warnings,omitempty"`
}

// Single-phase advisory thresholds: above these the installation should be
// converted to 3-phase service.
const (
	singlePhaseMaxCurrentA = 63.0
	singlePhaseMaxDemandW  = 17000.0
	imbalanceWarnPercent   = 20.0
)

// Analyze computes diversity-adjusted demand for the full load list.
// SupplyAdequate is always true here; the orchestrator overrides it when an
// existing main fuse is supplied and found insufficient.
func Analyze(loads []spec.LoadEntry, phase spec.Phase, building spec.BuildingType) Result {
	res := Result{SupplyAdequate: true}

	byCategory := map[spec.LoadCategory]*CategoryLoad{}
	estimated := map[spec.LoadCategory]bool{}

	for _, l := range loads {
		connected := l.ConnectedPowerW()

		factor, ok := tables.DiversityFactor(building, l.Category)
		if !ok {
			factor = tables.DefaultDiversityFactor
			estimated[l.Category] = true
		}
		row, exists := byCategory[l.Category]
		if !exists {
			row = &CategoryLoad{Category: l.Category, Factor: factor}
			byCategory[l.Category] = row
		}

		applied := factor
		if l.DemandFactor != nil {
			applied = *l.DemandFactor
		}
		demand := connected * applied

		row.ConnectedW += connected
		row.DemandW += demand
		res.ConnectedW += connected
		res.DemandW += demand

		if phase == spec.ThreePhase {
			res.PhaseLoadsW[assignPhase(l, res.PhaseLoadsW)] += demand
		}
	}

	// Fixed category order keeps the output deterministic.
	for _, cat := range spec.LoadCategoryOrder {
		if row, ok := byCategory[cat]; ok {
			res.Categories = append(res.Categories, *row)
		}
	}
	for _, cat := range spec.LoadCategoryOrder {
		if estimated[cat] {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("no diversity factor for category %q in %s table, using default %.2f", cat, building, tables.DefaultDiversityFactor))
		}
	}

	res.DemandCurrentA = cable.DesignCurrent(res.DemandW, phase.NominalVoltage(), 1.0, phase)
	res.MainBreakerA = tables.SelectBreakerRating(res.DemandCurrentA)
	res.SupplyFuseA = tables.NextBreakerRating(res.MainBreakerA)

	if phase == spec.ThreePhase {
		res.ImbalancePercent = Imbalance(res.PhaseLoadsW)
		if res.ImbalancePercent > imbalanceWarnPercent {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("phase imbalance %.1f%% exceeds %.0f%%; redistribute loads across phases", res.ImbalancePercent, imbalanceWarnPercent))
		}
	} else {
		if res.DemandCurrentA > singlePhaseMaxCurrentA {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("demand current %.1f A exceeds %.0f A on single-phase supply; 3-phase service required", res.DemandCurrentA, singlePhaseMaxCurrentA))
		}
		if res.DemandW > singlePhaseMaxDemandW {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("demand load %.1f kW exceeds %.0f kW on single-phase supply; 3-phase service required", res.DemandW/1000, singlePhaseMaxDemandW/1000))
		}
	}

	return res
}

// assignPhase picks the phase index (0-2) for one load: an explicit
// assignment wins, otherwise the currently least-loaded phase. Greedy single
// pass; later loads balance against the running totals.
func assignPhase(l spec.LoadEntry, phaseLoads [3]float64) int {
	if l.Phase >= 1 && l.Phase <= 3 {
		return l.Phase - 1
	}
	least := 0
	for i := 1; i < 3; i++ {
		if phaseLoads[i] < phaseLoads[least] {
			least = i
		}
	}
	return least
}

// Imbalance returns the maximum absolute deviation from the 3-phase average
// as a percent of that average.
func Imbalance(phaseLoads [3]float64) float64 {
	avg := (phaseLoads[0] + phaseLoads[1] + phaseLoads[2]) / 3
	if avg == 0 {
		return 0
	}
	maxDev := 0.0
	for _, p := range phaseLoads {
		dev := p - avg
		if dev < 0 {
			dev = -dev
		}
		if dev > maxDev {
			maxDev = dev
		}
	}
	return maxDev / avg * 100
}
