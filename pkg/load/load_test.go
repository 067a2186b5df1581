package load

import (
	"strings"
	"testing"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
)

func TestAnalyzeSingleLightingLoad(t *testing.T) {
	loads := []spec.LoadEntry{
		{Category: spec.CategoryLighting, RatedPowerW: 10, Quantity: 20, Description: "LED spots"},
	}
	res := Analyze(loads, spec.SinglePhase, spec.Residential)

	if res.ConnectedW != 200 {
		t.Errorf("connected = %.1f W, want 200", res.ConnectedW)
	}
	if res.DemandW != 170 { // 200 × 0.85
		t.Errorf("demand = %.1f W, want 170", res.DemandW)
	}
	if res.MainBreakerA != 6 {
		t.Errorf("main breaker = %d A, want 6", res.MainBreakerA)
	}
	if res.SupplyFuseA != 10 {
		t.Errorf("supply fuse = %d A, want 10", res.SupplyFuseA)
	}
	if !res.SupplyAdequate {
		t.Error("Analyze must leave SupplyAdequate true")
	}
}

func TestAnalyzeDemandFactorOverride(t *testing.T) {
	override := 1.0
	loads := []spec.LoadEntry{
		{Category: spec.CategoryLighting, RatedPowerW: 100, Quantity: 2, DemandFactor: &override},
	}
	res := Analyze(loads, spec.SinglePhase, spec.Residential)

	if res.DemandW != 200 {
		t.Errorf("demand = %.1f W, want 200 with override 1.0", res.DemandW)
	}
}

func TestAnalyzeCategoryAggregation(t *testing.T) {
	loads := []spec.LoadEntry{
		{Category: spec.CategorySocketOutlet, RatedPowerW: 200, Quantity: 5},
		{Category: spec.CategoryLighting, RatedPowerW: 50, Quantity: 4},
		{Category: spec.CategorySocketOutlet, RatedPowerW: 100, Quantity: 10},
	}
	res := Analyze(loads, spec.SinglePhase, spec.Residential)

	if len(res.Categories) != 2 {
		t.Fatalf("got %d category rows, want 2", len(res.Categories))
	}
	// Fixed category order: lighting before socket_outlet.
	if res.Categories[0].Category != spec.CategoryLighting {
		t.Errorf("first row = %s, want lighting", res.Categories[0].Category)
	}
	if res.Categories[1].ConnectedW != 2000 {
		t.Errorf("socket connected = %.1f W, want 2000", res.Categories[1].ConnectedW)
	}
}

func TestAnalyzeGreedyPhaseBalancing(t *testing.T) {
	// Equal heating loads spread evenly over three phases.
	loads := []spec.LoadEntry{
		{Category: spec.CategoryHeating, RatedPowerW: 1000, Quantity: 1},
		{Category: spec.CategoryHeating, RatedPowerW: 1000, Quantity: 1},
		{Category: spec.CategoryHeating, RatedPowerW: 1000, Quantity: 1},
	}
	res := Analyze(loads, spec.ThreePhase, spec.Residential)

	for i, p := range res.PhaseLoadsW {
		if p != 900 { // 1000 × 0.9
			t.Errorf("phase %d load = %.1f W, want 900", i+1, p)
		}
	}
	if res.ImbalancePercent != 0 {
		t.Errorf("imbalance = %.1f%%, want 0", res.ImbalancePercent)
	}
}

func TestAnalyzeExplicitPhaseAssignment(t *testing.T) {
	loads := []spec.LoadEntry{
		{Category: spec.CategoryHeating, RatedPowerW: 2000, Quantity: 1, Phase: 2},
		{Category: spec.CategoryHeating, RatedPowerW: 2000, Quantity: 1, Phase: 2},
	}
	res := Analyze(loads, spec.ThreePhase, spec.Residential)

	if res.PhaseLoadsW[1] != 3600 {
		t.Errorf("phase 2 load = %.1f W, want 3600", res.PhaseLoadsW[1])
	}
	if res.PhaseLoadsW[0] != 0 || res.PhaseLoadsW[2] != 0 {
		t.Errorf("phases 1/3 should be empty, got %.1f / %.1f", res.PhaseLoadsW[0], res.PhaseLoadsW[2])
	}
	if !hasWarning(res.Warnings, "phase imbalance") {
		t.Errorf("expected an imbalance warning, got %v", res.Warnings)
	}
}

func TestAnalyzeSinglePhaseOverloadWarnings(t *testing.T) {
	loads := []spec.LoadEntry{
		{Category: spec.CategoryHeating, RatedPowerW: 20000, Quantity: 1},
	}
	res := Analyze(loads, spec.SinglePhase, spec.Residential)

	// 18 kW demand at 230 V is 78 A: both advisories fire.
	if !hasWarning(res.Warnings, "demand current") {
		t.Errorf("expected a current advisory, got %v", res.Warnings)
	}
	if !hasWarning(res.Warnings, "demand load") {
		t.Errorf("expected a power advisory, got %v", res.Warnings)
	}
	if !res.SupplyAdequate {
		t.Error("advisories must not clear SupplyAdequate; only the orchestrator does")
	}
}

func TestAnalyzeUnknownBuildingTypeFailSoft(t *testing.T) {
	loads := []spec.LoadEntry{
		{Category: spec.CategoryLighting, RatedPowerW: 100, Quantity: 1},
	}
	res := Analyze(loads, spec.SinglePhase, spec.BuildingType("museum"))

	if res.DemandW != 50 { // default 0.5 factor
		t.Errorf("demand = %.1f W, want 50 via default factor", res.DemandW)
	}
	if !hasWarning(res.Warnings, "using default") {
		t.Errorf("fail-soft lookup must warn, got %v", res.Warnings)
	}
}

func TestImbalance(t *testing.T) {
	if got := Imbalance([3]float64{0, 0, 0}); got != 0 {
		t.Errorf("Imbalance(zero) = %.1f, want 0", got)
	}
	// avg 2000, max deviation 1000 -> 50%.
	if got := Imbalance([3]float64{3000, 2000, 1000}); got != 50 {
		t.Errorf("Imbalance = %.1f, want 50", got)
	}
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}
