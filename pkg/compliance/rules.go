package compliance

import (
	"fmt"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/cable"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/load"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/panel"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

// Coordination is re-verified against a fixed reference condition rather
// than each circuit's own installation parameters, so the check is
// independent of the sizing stage.
const (
	referenceMethod = spec.MethodB2
	referenceCores  = 2

	imbalanceLimitPercent = 25.0
	spareLimitPercent     = 10.0
	wetRoomMaxSensMA      = 30
)

// Check evaluates the panel, its parallel cable sizings, and the room list
// against the rule set. Rules are independent and order-insensitive.
func Check(p panel.PanelConfiguration, sizings []cable.Result, rooms []spec.Room) *Report {
	r := NewReport()

	groupSens := groupSensitivityByPosition(p.RCDGroups)

	checkSocketRCD(r, p, groupSens)
	checkWetRooms(r, p, rooms, groupSens)
	checkEVRCDType(r, p)
	checkCoordination(r, p)
	checkVoltageDrop(r, p, sizings)
	checkPhaseBalance(r, p)
	checkSpareCapacity(r, p)
	checkSurgeProtection(r, p)

	return r
}

// groupSensitivityByPosition maps each RCD-group-protected position to the
// group's sensitivity in mA.
func groupSensitivityByPosition(groups []panel.RCDGroup) map[int]int {
	sens := map[int]int{}
	for _, g := range groups {
		for _, pos := range g.Circuits {
			sens[pos] = g.SensMA
		}
	}
	return sens
}

// checkSocketRCD: every socket circuit rated <= 32 A needs RCD protection,
// either its own RCBO or membership in a shared group.
func checkSocketRCD(r *Report, p panel.PanelConfiguration, groupSens map[int]int) {
	for _, c := range p.Circuits {
		if c.Category != spec.CategorySocketOutlet || c.RatingA > 32 {
			continue
		}
		if c.Breaker == spec.BreakerRCBO {
			continue
		}
		if _, ok := groupSens[c.Position]; ok {
			continue
		}
		r.AddError(Issue{
			Code:           CodeRCDSocket,
			StandardRef:    "DS/HD 60364-4-41 411.3.3",
			Description:    fmt.Sprintf("socket circuit %d (%s) has no RCD protection", c.Position, c.Description),
			Area:           c.Room,
			Recommendation: "protect the circuit with a 30 mA RCBO or add it to a shared RCD group",
		})
	}
}

// checkWetRooms: every circuit in a wet room needs RCD protection at 30 mA
// or better.
func checkWetRooms(r *Report, p panel.PanelConfiguration, rooms []spec.Room, groupSens map[int]int) {
	wet := map[string]bool{}
	for _, room := range rooms {
		if room.WetRoom {
			wet[room.Name] = true
		}
	}

	for _, c := range p.Circuits {
		if !wet[c.Room] {
			continue
		}
		if c.Breaker == spec.BreakerRCBO && c.RCDSensMA > 0 && c.RCDSensMA <= wetRoomMaxSensMA {
			continue
		}
		if sens, ok := groupSens[c.Position]; ok && sens <= wetRoomMaxSensMA {
			continue
		}
		r.AddError(Issue{
			Code:           CodeRCDWetRoom,
			StandardRef:    "DS/HD 60364-7-701",
			Description:    fmt.Sprintf("circuit %d (%s) in wet room %q lacks 30 mA RCD protection", c.Position, c.Description, c.Room),
			Area:           c.Room,
			Recommendation: "protect all wet-room circuits with a 30 mA RCD or RCBO",
		})
	}
}

// checkEVRCDType: EV charging circuits must use a type B RCD.
func checkEVRCDType(r *Report, p panel.PanelConfiguration) {
	for _, c := range p.Circuits {
		if c.Category != spec.CategoryEVCharger {
			continue
		}
		if c.RCDType == spec.RCDTypeB {
			continue
		}
		r.AddError(Issue{
			Code:           CodeEVRCDType,
			StandardRef:    "DS/HD 60364-7-722",
			Description:    fmt.Sprintf("EV charging circuit %d (%s) uses RCD type %q instead of type B", c.Position, c.Description, c.RCDType),
			Area:           c.Room,
			Recommendation: "replace the protection with a type B RCD or RCBO rated for DC fault currents",
		})
	}
}

// checkCoordination: the chosen cable's tabulated ampacity must cover the
// breaker rating, re-derived here from the reference table.
func checkCoordination(r *Report, p panel.PanelConfiguration) {
	for _, c := range p.Circuits {
		capacity, ok := tables.Ampacity(referenceMethod, referenceCores, c.CrossSection)
		if ok && capacity >= float64(c.RatingA) {
			continue
		}

		minSection := 0.0
		for _, s := range tables.CrossSections {
			if cap2, ok2 := tables.Ampacity(referenceMethod, referenceCores, s); ok2 && cap2 >= float64(c.RatingA) {
				minSection = s
				break
			}
		}
		rec := "no standard cross-section covers this rating; split the load"
		if minSection > 0 {
			rec = fmt.Sprintf("use at least %.3g mm² for a %d A breaker", minSection, c.RatingA)
		}
		r.AddError(Issue{
			Code:           CodeCableBreakerMismatch,
			StandardRef:    "DS/HD 60364-4-43 433.1",
			Description:    fmt.Sprintf("circuit %d (%s): %.3g mm² cable (%.1f A) cannot carry the %d A breaker rating", c.Position, c.Description, c.CrossSection, capacity, c.RatingA),
			Area:           c.Room,
			Recommendation: rec,
		})
	}
}

// checkVoltageDrop surfaces non-compliant cable sizings. The sizing list is
// index-aligned with the panel circuits.
func checkVoltageDrop(r *Report, p panel.PanelConfiguration, sizings []cable.Result) {
	for i, s := range sizings {
		if s.Compliant {
			continue
		}
		area := ""
		desc := fmt.Sprintf("cable run %d", i+1)
		if i < len(p.Circuits) {
			area = p.Circuits[i].Room
			desc = p.Circuits[i].Description
		}
		r.AddWarning(Issue{
			Code:           CodeVoltageDrop,
			StandardRef:    "DS/HD 60364-5-52 525",
			Description:    fmt.Sprintf("%s: voltage drop %.1f%% or ampacity %.1f A fails the sizing limits", desc, s.VoltageDropPercent, s.AmpacityA),
			Area:           area,
			Recommendation: "increase the cross-section or shorten the cable run",
		})
	}
}

// checkPhaseBalance re-derives per-phase connected load from the circuits
// directly, not trusting the load-analysis figure.
func checkPhaseBalance(r *Report, p panel.PanelConfiguration) {
	if p.Phase != spec.ThreePhase {
		return
	}
	var phaseLoads [3]float64
	for _, c := range p.Circuits {
		if c.Phase >= 1 && c.Phase <= 3 {
			phaseLoads[c.Phase-1] += c.LoadW
		}
	}
	imbalance := load.Imbalance(phaseLoads)
	if imbalance <= imbalanceLimitPercent {
		return
	}
	r.AddWarning(Issue{
		Code:           CodePhaseImbalance,
		StandardRef:    "DS/HD 60364-8-1",
		Description:    fmt.Sprintf("phase imbalance %.1f%% exceeds %.0f%% (L1 %.0f W, L2 %.0f W, L3 %.0f W)", imbalance, imbalanceLimitPercent, phaseLoads[0], phaseLoads[1], phaseLoads[2]),
		Recommendation: "move circuits between phases to even out the connected load",
	})
}

func checkSpareCapacity(r *Report, p panel.PanelConfiguration) {
	if p.SparePercent >= spareLimitPercent {
		return
	}
	r.AddWarning(Issue{
		Code:           CodeSpareCapacity,
		StandardRef:    "DS/HD 60364-8-1",
		Description:    fmt.Sprintf("spare capacity %.1f%% is below %.0f%% (%d of %d modules used)", p.SparePercent, spareLimitPercent, p.ModulesUsed, p.TotalModules),
		Recommendation: "select the next larger standard enclosure",
	})
}

func checkSurgeProtection(r *Report, p panel.PanelConfiguration) {
	if p.SurgeProtection != "" {
		return
	}
	r.AddInfo(Issue{
		Code:           CodeSurgeProtection,
		StandardRef:    "DS/HD 60364-5-53 534",
		Description:    "panel has no surge protective device",
		Recommendation: "fit a type 2 surge arrester at the origin of the installation",
	})
}
