// Package project wires load analysis, panel configuration, per-circuit cable
// sizing, and compliance checking into one calculation for a whole project.
package project

import (
	"fmt"
	"math"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/cable"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/compliance"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/load"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/panel"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

// RoomSummary aggregates one room's share of the design.
type RoomSummary struct {
	Room         string  `json:"room"`
	ConnectedW   float64 `json:"connected_w"`
	Circuits     int     `json:"circuits"`
	CableM       float64 `json:"cable_m"`
	MaterialCost float64 `json:"material_cost"`
	LaborSeconds int     `json:"labor_seconds"`
}

// Result is the complete project output. CableSizings is index-aligned with
// Panel.Circuits.
type Result struct {
	Load              load.Result              `json:"load"`
	Panel             panel.PanelConfiguration `json:"panel"`
	CableSizings      []cable.Result           `json:"cable_sizings"`
	Compliance        *compliance.Report       `json:"compliance"`
	Rooms             []RoomSummary            `json:"rooms"`
	TotalCableM       float64                  `json:"total_cable_m"`
	TotalMaterialCost float64                  `json:"total_material_cost"`
	TotalLaborSeconds int                      `json:"total_labor_seconds"`
	Warnings          []string                 `json:"warnings,omitempty"`
}

// Run-length estimation for rooms without an explicit distance: a vertical
// riser per floor, a horizontal run across the room, and a service allowance.
const (
	riserPerFloorM    = 3.0
	serviceAllowanceM = 5.0
)

// Calculate runs the full pipeline for one project. It fails fast only on
// structurally invalid input; engineering findings are returned as data.
func Calculate(in spec.ElectricalProjectInput) (*Result, error) {
	if err := spec.ValidateProject(&in); err != nil {
		return nil, fmt.Errorf("invalid project input: %w", err)
	}

	method := in.InstallationMethod
	if method == "" {
		method = spec.MethodB2
	}

	res := &Result{
		Load:  load.Analyze(in.AllLoads(), in.SupplyPhase, in.BuildingType),
		Panel: panel.Configure(in.Rooms, in.SupplyPhase, in.Renovation),
	}

	// The orchestrator is the only place that checks an existing supply.
	if in.ExistingMainFuseA > 0 && res.Load.DemandCurrentA > float64(in.ExistingMainFuseA) {
		res.Load.SupplyAdequate = false
		res.Load.Warnings = append(res.Load.Warnings,
			fmt.Sprintf("demand current %.1f A exceeds the existing %d A main fuse; supply upgrade required",
				res.Load.DemandCurrentA, in.ExistingMainFuseA))
	}

	runByRoom := map[string]float64{}
	for _, room := range in.Rooms {
		runByRoom[room.Name] = runLength(room, in.MaxCableRunM)
	}

	res.CableSizings = make([]cable.Result, len(res.Panel.Circuits))
	for i, c := range res.Panel.Circuits {
		pf := 1.0
		if c.Category == spec.CategoryMotor {
			pf = 0.9
		}
		res.CableSizings[i] = cable.Size(cable.Input{
			PowerW:      c.LoadW,
			Phase:       spec.SinglePhase,
			PowerFactor: pf,
			LengthM:     runByRoom[c.Room],
			Method:      method,
			CableType:   c.CableType,
		})
	}

	res.Compliance = compliance.Check(res.Panel, res.CableSizings, in.Rooms)

	res.Rooms = summarizeRooms(in.Rooms, res.Panel.Circuits, res.CableSizings, runByRoom)
	for _, rs := range res.Rooms {
		res.TotalCableM += rs.CableM
	}

	cableCost := 0.0
	for _, s := range res.CableSizings {
		cableCost += s.TotalCost
	}
	res.TotalMaterialCost = res.Panel.MaterialCost + cableCost
	res.TotalLaborSeconds = res.Panel.LaborSeconds + len(res.Panel.Circuits)*tables.CablePullLaborSeconds

	res.Warnings = dedupe(collectWarnings(res))

	return res, nil
}

// runLength returns the room's cable run: the explicit distance when given,
// otherwise an estimate from floor index and room area, capped by the
// project's maximum when set.
func runLength(room spec.Room, maxRunM float64) float64 {
	if room.CableRunM > 0 {
		return room.CableRunM
	}
	floors := float64(room.Floor)
	if floors < 0 {
		floors = -floors
	}
	est := riserPerFloorM*floors + math.Sqrt(room.AreaM2) + serviceAllowanceM
	if maxRunM > 0 && est > maxRunM {
		est = maxRunM
	}
	return est
}

func summarizeRooms(rooms []spec.Room, circuits []panel.CircuitConfig, sizings []cable.Result, runByRoom map[string]float64) []RoomSummary {
	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		rs := RoomSummary{Room: room.Name}
		for _, l := range room.Loads {
			rs.ConnectedW += l.ConnectedPowerW()
		}
		for i, c := range circuits {
			if c.Room != room.Name {
				continue
			}
			rs.Circuits++
			rs.CableM += runByRoom[room.Name]
			if i < len(sizings) {
				rs.MaterialCost += sizings[i].TotalCost
			}
		}
		rs.LaborSeconds = rs.Circuits * (tables.CablePullLaborSeconds + tables.CircuitLaborSeconds)
		summaries = append(summaries, rs)
	}
	return summaries
}

func collectWarnings(res *Result) []string {
	var all []string
	all = append(all, res.Load.Warnings...)
	all = append(all, res.Panel.Warnings...)
	for _, s := range res.CableSizings {
		all = append(all, s.Warnings...)
	}
	return all
}

// dedupe removes duplicate warnings, keeping first-seen order.
func dedupe(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range in {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
