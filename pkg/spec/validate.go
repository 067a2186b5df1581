package spec

import (
	"errors"
	"fmt"
)

// ValidateProject checks the project input for structural errors before any
// computation. Malformed input outside the documented domain fails fast here;
// engineering non-conformance is never reported through this path.
func ValidateProject(in *ElectricalProjectInput) error {
	var errs []error

	if !in.SupplyPhase.Valid() {
		errs = append(errs, fmt.Errorf("supply_phase %q is not one of %q/%q", in.SupplyPhase, SinglePhase, ThreePhase))
	}
	if !in.BuildingType.Valid() {
		errs = append(errs, fmt.Errorf("building_type %q is not one of residential/commercial/industrial", in.BuildingType))
	}
	if in.InstallationMethod != "" && !in.InstallationMethod.Valid() {
		errs = append(errs, fmt.Errorf("installation_method %q is not a known reference method", in.InstallationMethod))
	}
	if in.ExistingMainFuseA < 0 {
		errs = append(errs, fmt.Errorf("existing_main_fuse_a must be >= 0, got %d", in.ExistingMainFuseA))
	}
	if in.MaxCableRunM < 0 {
		errs = append(errs, fmt.Errorf("max_cable_run_m must be >= 0, got %.1f", in.MaxCableRunM))
	}
	if len(in.Rooms) == 0 {
		errs = append(errs, errors.New("project must contain at least one room"))
	}

	for ri, room := range in.Rooms {
		if room.Name == "" {
			errs = append(errs, fmt.Errorf("rooms[%d]: name must not be empty", ri))
		}
		if room.AreaM2 < 0 {
			errs = append(errs, fmt.Errorf("rooms[%d] (%s): area_m2 must be >= 0, got %.1f", ri, room.Name, room.AreaM2))
		}
		if room.CableRunM < 0 {
			errs = append(errs, fmt.Errorf("rooms[%d] (%s): cable_run_m must be >= 0, got %.1f", ri, room.Name, room.CableRunM))
		}
		for li, l := range room.Loads {
			if !l.Category.Valid() {
				errs = append(errs, fmt.Errorf("rooms[%d].loads[%d]: unknown category %q", ri, li, l.Category))
			}
			if l.RatedPowerW <= 0 {
				errs = append(errs, fmt.Errorf("rooms[%d].loads[%d]: rated_power_w must be > 0, got %.1f", ri, li, l.RatedPowerW))
			}
			if l.Quantity < 1 {
				errs = append(errs, fmt.Errorf("rooms[%d].loads[%d]: quantity must be >= 1, got %d", ri, li, l.Quantity))
			}
			if l.DemandFactor != nil && (*l.DemandFactor <= 0 || *l.DemandFactor > 1) {
				errs = append(errs, fmt.Errorf("rooms[%d].loads[%d]: demand_factor must be in (0, 1], got %.2f", ri, li, *l.DemandFactor))
			}
			if l.Phase < 0 || l.Phase > 3 {
				errs = append(errs, fmt.Errorf("rooms[%d].loads[%d]: phase must be 1-3 or omitted, got %d", ri, li, l.Phase))
			}
		}
	}

	return errors.Join(errs...)
}
