// Package panel designs the distribution board: it walks rooms and their
// loads, splits them into circuit-sized groups, assigns breakers and cables,
// balances phases, groups shared RCD protection, sizes the enclosure, and
// itemizes the material cost.
package panel

import (
	"fmt"
	"math"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/cable"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

// CircuitConfig is one breaker position in the panel.
type CircuitConfig struct {
	Position      int                 `json:"position"`
	Description   string              `json:"description"`
	Breaker       spec.BreakerType    `json:"breaker"`
	RatingA       int                 `json:"rating_a"`
	Curve         spec.Characteristic `json:"curve"`
	Phase         int                 `json:"phase"` // 1-3
	CrossSection  float64             `json:"cross_section_mm2"`
	CableType     spec.CableType      `json:"cable_type"`
	RCDType       spec.RCDType        `json:"rcd_type,omitempty"`
	RCDSensMA     int                 `json:"rcd_sensitivity_ma,omitempty"`
	LoadW         float64             `json:"load_w"`
	Category      spec.LoadCategory   `json:"category"`
	Room          string              `json:"room"`
	Points        int                 `json:"points,omitempty"` // outlets or fixtures on the circuit
}

// RCDGroup is a shared residual-current device protecting circuits that lack
// individual RCD protection.
type RCDGroup struct {
	Description string       `json:"description"`
	Type        spec.RCDType `json:"type"`
	SensMA      int          `json:"sensitivity_ma"`
	RatingA     int          `json:"rating_a"`
	Circuits    []int        `json:"circuits"` // protected positions
	Modules     int          `json:"modules"`
}

// PanelConfiguration is the complete distribution board design.
type PanelConfiguration struct {
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	TotalModules    int             `json:"total_modules"`
	ModulesUsed     int             `json:"modules_used"`
	SparePercent    float64         `json:"spare_percent"`
	MainSwitchA     int             `json:"main_switch_a"`
	Phase           spec.Phase      `json:"phase"`
	RCDGroups       []RCDGroup      `json:"rcd_groups"`
	Circuits        []CircuitConfig `json:"circuits"`
	SurgeProtection string          `json:"surge_protection"`
	MaterialCost    float64         `json:"material_cost"`
	LaborSeconds    int             `json:"labor_seconds"`
	CostBreakdown   CostBreakdown   `json:"cost_breakdown"`
	Notes           []string        `json:"notes,omitempty"`
	Warnings        []string        `json:"warnings,omitempty"`
}

const (
	mainSwitchModules1Ph = 2
	mainSwitchModules3Ph = 4
	surgeModules         = 3
	spareMargin          = 1.2
	spareWarnPercent     = 15.0

	// Flat diversity estimate used only for main switch sizing.
	mainSwitchDiversity = 0.6
)

// Configure designs the panel for the given rooms. The renovation flag adds
// advisory notes only; it never changes the sizing.
func Configure(rooms []spec.Room, phase spec.Phase, renovation bool) PanelConfiguration {
	b := newBuilder(phase)
	for _, room := range rooms {
		b.addRoom(room)
	}

	groups := groupRCDs(b.circuits, phase)

	p := PanelConfiguration{
		Name:            "Main distribution board",
		Phase:           phase,
		Circuits:        b.circuits,
		RCDGroups:       groups,
		SurgeProtection: "Type 2 surge arrester",
		Notes:           b.notes,
	}

	// Module budget: main switch, RCD groups, breakers, surge allowance.
	used := mainSwitchModules1Ph
	if phase == spec.ThreePhase {
		used = mainSwitchModules3Ph
	}
	for _, g := range groups {
		used += g.Modules
	}
	for _, c := range b.circuits {
		if c.Breaker == spec.BreakerRCBO {
			used += 2
		} else {
			used += 1
		}
	}
	used += surgeModules

	p.ModulesUsed = used
	p.TotalModules = tables.SelectEnclosureSize(int(math.Ceil(float64(used) * spareMargin)))
	p.SparePercent = float64(p.TotalModules-p.ModulesUsed) / float64(p.TotalModules) * 100
	p.Type = fmt.Sprintf("%d-module enclosure", p.TotalModules)

	totalConnected := 0.0
	for _, c := range b.circuits {
		totalConnected += c.LoadW
	}
	mainCurrent := cable.DesignCurrent(totalConnected*mainSwitchDiversity, phase.NominalVoltage(), 1.0, phase)
	p.MainSwitchA = tables.SelectBreakerRating(mainCurrent)

	p.CostBreakdown = breakdownCosts(&p)
	p.MaterialCost = p.CostBreakdown.Total
	p.LaborSeconds = tables.PanelSetupLaborSeconds + len(b.circuits)*tables.CircuitLaborSeconds

	if renovation {
		p.Notes = append(p.Notes,
			"renovation: inspect the existing earthing arrangement before connecting new circuits",
			"renovation: verify existing RCD protection covers circuits that remain in service")
	}
	if p.ModulesUsed > tables.EnclosureSizes[len(tables.EnclosureSizes)-1] {
		p.Warnings = append(p.Warnings,
			fmt.Sprintf("%d modules exceed the largest standard enclosure; split onto a sub-panel", p.ModulesUsed))
	}
	if p.SparePercent < spareWarnPercent {
		p.Warnings = append(p.Warnings,
			fmt.Sprintf("spare capacity %.1f%% is below %.0f%%; choose a larger enclosure for future circuits", p.SparePercent, spareWarnPercent))
	}

	return p
}
