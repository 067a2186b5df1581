package panel

import (
	"fmt"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

const (
	rcdGroupMaxCircuits = 6

	// Sizing heuristic for a shared RCD: half the group's connected load with
	// a 40 A floor. Not a normative DS/HD 60364 figure; confirm against the
	// target jurisdiction before relying on it.
	rcdGroupDiversity = 0.5
	rcdGroupMinRating = 40
)

// groupRCDs batches circuits still on plain MCB protection under shared
// 30 mA type A devices, at most six circuits per group, socket circuits
// grouped separately from lighting and other circuits.
func groupRCDs(circuits []CircuitConfig, phase spec.Phase) []RCDGroup {
	var socketPos, otherPos []int
	loadByPos := map[int]float64{}

	for _, c := range circuits {
		if c.Breaker != spec.BreakerMCB {
			continue
		}
		loadByPos[c.Position] = c.LoadW
		if c.Category == spec.CategorySocketOutlet {
			socketPos = append(socketPos, c.Position)
		} else {
			otherPos = append(otherPos, c.Position)
		}
	}

	modules := 2
	if phase == spec.ThreePhase {
		modules = 4
	}

	var groups []RCDGroup
	groups = appendChunked(groups, socketPos, loadByPos, "socket circuits", modules)
	groups = appendChunked(groups, otherPos, loadByPos, "lighting/other circuits", modules)
	return groups
}

func appendChunked(groups []RCDGroup, positions []int, loadByPos map[int]float64, label string, modules int) []RCDGroup {
	for start := 0; start < len(positions); start += rcdGroupMaxCircuits {
		end := start + rcdGroupMaxCircuits
		if end > len(positions) {
			end = len(positions)
		}
		chunk := positions[start:end]

		groupLoad := 0.0
		for _, pos := range chunk {
			groupLoad += loadByPos[pos]
		}
		rating := tables.SelectBreakerRating(groupLoad * rcdGroupDiversity / spec.SinglePhase.NominalVoltage())
		if rating < rcdGroupMinRating {
			rating = rcdGroupMinRating
		}

		groups = append(groups, RCDGroup{
			Description: fmt.Sprintf("RCD group %d (%s)", len(groups)+1, label),
			Type:        spec.RCDTypeA,
			SensMA:      rcdSensitivityMA,
			RatingA:     rating,
			Circuits:    append([]int(nil), chunk...),
			Modules:     modules,
		})
	}
	return groups
}
