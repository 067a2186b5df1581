package tables

import "github.com/wukjhc-create/elta-crm-sub005/pkg/spec"

// DefaultDiversityFactor is the conservative fallback when a category has no
// table entry for the building type.
const DefaultDiversityFactor = 0.5

// diversityFactors holds per-category demand factors by building type.
var diversityFactors = map[spec.BuildingType]map[spec.LoadCategory]float64{
	spec.Residential: {
		spec.CategoryLighting:       0.85,
		spec.CategorySocketOutlet:   0.40,
		spec.CategoryFixedAppliance: 0.75,
		spec.CategoryMotor:          0.75,
		spec.CategoryHeating:        0.90,
		spec.CategoryCooking:        0.60,
		spec.CategoryEVCharger:      1.00,
		spec.CategoryDataEquipment:  0.70,
		spec.CategoryOther:          0.50,
	},
	spec.Commercial: {
		spec.CategoryLighting:       0.90,
		spec.CategorySocketOutlet:   0.50,
		spec.CategoryFixedAppliance: 0.80,
		spec.CategoryMotor:          0.80,
		spec.CategoryHeating:        0.90,
		spec.CategoryCooking:        0.70,
		spec.CategoryEVCharger:      1.00,
		spec.CategoryDataEquipment:  0.90,
		spec.CategoryOther:          0.60,
	},
	spec.Industrial: {
		spec.CategoryLighting:       0.95,
		spec.CategorySocketOutlet:   0.40,
		spec.CategoryFixedAppliance: 0.85,
		spec.CategoryMotor:          0.85,
		spec.CategoryHeating:        0.90,
		spec.CategoryCooking:        0.70,
		spec.CategoryEVCharger:      1.00,
		spec.CategoryDataEquipment:  0.90,
		spec.CategoryOther:          0.60,
	},
}

// DiversityFactor returns the demand factor for the category under the given
// building type. The second return is false when no table entry exists;
// callers substitute DefaultDiversityFactor and report the estimation.
func DiversityFactor(building spec.BuildingType, category spec.LoadCategory) (float64, bool) {
	byCategory, ok := diversityFactors[building]
	if !ok {
		return 0, false
	}
	f, ok := byCategory[category]
	return f, ok
}
