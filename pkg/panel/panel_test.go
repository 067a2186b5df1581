package panel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

func bathroom() spec.Room {
	return spec.Room{
		Name:    "Bathroom",
		Type:    "bathroom",
		AreaM2:  8,
		WetRoom: true,
		Loads: []spec.LoadEntry{
			{Category: spec.CategorySocketOutlet, RatedPowerW: 1000, Quantity: 1},
		},
	}
}

func livingRoom() spec.Room {
	return spec.Room{
		Name:   "Living room",
		Type:   "living",
		AreaM2: 25,
		Loads: []spec.LoadEntry{
			{Category: spec.CategoryLighting, RatedPowerW: 15, Quantity: 12},
			{Category: spec.CategorySocketOutlet, RatedPowerW: 200, Quantity: 8},
		},
	}
}

func TestConfigureWetRoomSocketGetsRCBO(t *testing.T) {
	p := Configure([]spec.Room{bathroom()}, spec.SinglePhase, false)

	require.Len(t, p.Circuits, 1)
	c := p.Circuits[0]
	assert.Equal(t, spec.BreakerRCBO, c.Breaker)
	assert.Equal(t, spec.RCDTypeA, c.RCDType)
	assert.Equal(t, rcdSensitivityMA, c.RCDSensMA)
	assert.Equal(t, 16, c.RatingA)
	assert.Equal(t, 2.5, c.CrossSection)
}

func TestConfigureEVChargerGetsTypeBRCBO(t *testing.T) {
	garage := spec.Room{
		Name:   "Garage",
		AreaM2: 20,
		Loads: []spec.LoadEntry{
			{Category: spec.CategoryEVCharger, RatedPowerW: 11000, Quantity: 1, Description: "wallbox"},
		},
	}
	p := Configure([]spec.Room{garage}, spec.SinglePhase, false)

	require.Len(t, p.Circuits, 1)
	c := p.Circuits[0]
	assert.Equal(t, spec.BreakerRCBO, c.Breaker)
	assert.Equal(t, spec.RCDTypeB, c.RCDType)
	// 11 kW at 230 V is 47.8 A: next ladder rating is 50 A on 25 mm².
	assert.Equal(t, 50, c.RatingA)
	assert.Equal(t, 25.0, c.CrossSection)

	found := false
	for _, n := range p.Notes {
		if strings.Contains(n, "type B RCD") {
			found = true
		}
	}
	assert.True(t, found, "EV circuit must add a standards note")
}

func TestConfigureSocketCircuitSplitting(t *testing.T) {
	office := spec.Room{
		Name:   "Office",
		AreaM2: 40,
		Loads: []spec.LoadEntry{
			{Category: spec.CategorySocketOutlet, RatedPowerW: 200, Quantity: 25},
		},
	}
	p := Configure([]spec.Room{office}, spec.SinglePhase, false)

	// 25 outlets: at most 10 per circuit -> at least 3 circuits.
	require.GreaterOrEqual(t, len(p.Circuits), 3)

	points := 0
	for _, c := range p.Circuits {
		assert.LessOrEqual(t, c.Points, socketCircuitMaxPts)
		points += c.Points
	}
	assert.Equal(t, 25, points, "outlet count must be preserved across the split")

	require.NotEmpty(t, p.RCDGroups)
	for _, g := range p.RCDGroups {
		assert.LessOrEqual(t, len(g.Circuits), rcdGroupMaxCircuits)
		assert.Equal(t, spec.RCDTypeA, g.Type)
		assert.Equal(t, rcdSensitivityMA, g.SensMA)
		assert.GreaterOrEqual(t, g.RatingA, rcdGroupMinRating)
	}
}

func TestConfigureLightingSplitNearTenAmps(t *testing.T) {
	hall := spec.Room{
		Name:   "Hall",
		AreaM2: 60,
		Loads: []spec.LoadEntry{
			{Category: spec.CategoryLighting, RatedPowerW: 100, Quantity: 50}, // 5000 W
		},
	}
	p := Configure([]spec.Room{hall}, spec.SinglePhase, false)

	require.Len(t, p.Circuits, 3) // ceil(5000 / 2300)
	for _, c := range p.Circuits {
		assert.Equal(t, 10, c.RatingA)
		assert.Equal(t, 1.5, c.CrossSection)
		assert.InDelta(t, 5000.0/3, c.LoadW, 0.01)
	}
}

func TestConfigureMotorUsesCurveC(t *testing.T) {
	workshop := spec.Room{
		Name:   "Workshop",
		AreaM2: 30,
		Loads: []spec.LoadEntry{
			{Category: spec.CategoryMotor, RatedPowerW: 3000, Quantity: 1, Description: "compressor"},
		},
	}
	p := Configure([]spec.Room{workshop}, spec.SinglePhase, false)

	require.Len(t, p.Circuits, 1)
	assert.Equal(t, spec.CurveC, p.Circuits[0].Curve)
	assert.Equal(t, spec.BreakerMCB, p.Circuits[0].Breaker)
}

func TestConfigureThreePhaseBalancing(t *testing.T) {
	rooms := []spec.Room{{
		Name:   "Plant",
		AreaM2: 100,
		Loads: []spec.LoadEntry{
			{Category: spec.CategoryHeating, RatedPowerW: 2000, Quantity: 1},
			{Category: spec.CategoryHeating, RatedPowerW: 2000, Quantity: 1},
			{Category: spec.CategoryHeating, RatedPowerW: 2000, Quantity: 1},
		},
	}}
	p := Configure(rooms, spec.ThreePhase, false)

	require.Len(t, p.Circuits, 3)
	seen := map[int]bool{}
	for _, c := range p.Circuits {
		seen[c.Phase] = true
	}
	assert.Len(t, seen, 3, "equal circuits must land on three different phases")
}

func TestConfigureModuleBudgetAndSpare(t *testing.T) {
	p := Configure([]spec.Room{bathroom()}, spec.SinglePhase, false)

	// Main switch 2 + RCBO 2 + surge 3 = 7 used; 7 × 1.2 rounds into a
	// 12-module enclosure.
	assert.Equal(t, 7, p.ModulesUsed)
	assert.Equal(t, 12, p.TotalModules)
	assert.InDelta(t, float64(12-7)/12*100, p.SparePercent, 0.01)
	assert.True(t, tables.IsStandardBreakerRating(p.MainSwitchA))
}

func TestConfigureCostBreakdownSums(t *testing.T) {
	p := Configure([]spec.Room{bathroom(), livingRoom()}, spec.SinglePhase, false)

	cb := p.CostBreakdown
	sum := cb.Enclosure + cb.MainSwitch + cb.Breakers + cb.RCDGroups + cb.SurgeProtection + cb.Misc
	assert.InDelta(t, sum, cb.Total, 0.001)
	assert.Equal(t, cb.Total, p.MaterialCost)
	assert.Positive(t, cb.Enclosure)
	assert.Positive(t, cb.Breakers)
}

func TestConfigureLaborEstimate(t *testing.T) {
	p := Configure([]spec.Room{livingRoom()}, spec.SinglePhase, false)

	want := tables.PanelSetupLaborSeconds + len(p.Circuits)*tables.CircuitLaborSeconds
	assert.Equal(t, want, p.LaborSeconds)
}

func TestConfigureRenovationNotes(t *testing.T) {
	p := Configure([]spec.Room{livingRoom()}, spec.SinglePhase, true)

	notes := strings.Join(p.Notes, "\n")
	assert.Contains(t, notes, "earthing")
	assert.Contains(t, notes, "RCD")

	base := Configure([]spec.Room{livingRoom()}, spec.SinglePhase, false)
	assert.Equal(t, base.Circuits, p.Circuits, "renovation must not change the sizing")
	assert.Equal(t, base.TotalModules, p.TotalModules)
}

func TestConfigureInvariants(t *testing.T) {
	rooms := []spec.Room{bathroom(), livingRoom(), {
		Name:   "Kitchen",
		AreaM2: 15,
		Loads: []spec.LoadEntry{
			{Category: spec.CategoryCooking, RatedPowerW: 7000, Quantity: 1, Description: "induction hob"},
			{Category: spec.CategoryFixedAppliance, RatedPowerW: 2200, Quantity: 1, Description: "dishwasher"},
			{Category: spec.CategorySocketOutlet, RatedPowerW: 200, Quantity: 6},
		},
	}}
	p := Configure(rooms, spec.ThreePhase, false)

	for _, c := range p.Circuits {
		assert.True(t, tables.IsStandardBreakerRating(c.RatingA), "rating %d off ladder", c.RatingA)
		assert.True(t, tables.IsStandardCrossSection(c.CrossSection), "section %.3g off ladder", c.CrossSection)
		assert.GreaterOrEqual(t, c.Phase, 1)
		assert.LessOrEqual(t, c.Phase, 3)
	}
	assert.InDelta(t, float64(p.TotalModules-p.ModulesUsed)/float64(p.TotalModules)*100, p.SparePercent, 0.001)
}
