// Package cable sizes a single circuit's conductor: design current, derated
// ampacity, voltage drop, and the minimum standard cross-section meeting both.
package cable

import (
	"fmt"
	"math"

	"github.com/wukjhc-create/elta-crm-sub005/pkg/spec"
	"github.com/wukjhc-create/elta-crm-sub005/pkg/tables"
)

// Input describes one circuit to size. Zero values take documented defaults
// (voltage by phase type, power factor 1.0, ambient 30 °C, single circuit,
// 4 % drop limit).
type Input struct {
	PowerW         float64                 `yaml:"power_w" json:"power_w"`
	VoltageV       float64                 `yaml:"voltage_v" json:"voltage_v"`
	Phase          spec.Phase              `yaml:"phase" json:"phase"`
	PowerFactor    float64                 `yaml:"power_factor" json:"power_factor"`
	LengthM        float64                 `yaml:"length_m" json:"length_m"`
	Method         spec.InstallationMethod `yaml:"method" json:"method"`
	Cores          int                     `yaml:"cores" json:"cores"` // loaded conductors, 2 or 3
	AmbientC       float64                 `yaml:"ambient_c" json:"ambient_c"`
	Grouped        int                     `yaml:"grouped" json:"grouped"` // cables bunched on the route
	CableType      spec.CableType          `yaml:"cable_type" json:"cable_type"`
	MaxDropPercent float64                 `yaml:"max_drop_percent" json:"max_drop_percent"`
}

// Result is the sizing outcome for one circuit. Non-compliance is data, not
// an error: the caller decides whether to reject the design.
type Result struct {
	RecommendedSection float64  `json:"recommended_section_mm2"`
	SectionByAmpacity  float64  `json:"section_by_ampacity_mm2"`
	SectionByDrop      float64  `json:"section_by_drop_mm2"`
	DesignCurrentA     float64  `json:"design_current_a"`
	AmpacityA          float64  `json:"ampacity_a"` // derated, for the recommended section
	VoltageDropV       float64  `json:"voltage_drop_v"`
	VoltageDropPercent float64  `json:"voltage_drop_percent"`
	DeratingFactor     float64  `json:"derating_factor"`
	Designation        string   `json:"designation"`
	CostPerMeter       float64  `json:"cost_per_meter"`
	TotalCost          float64  `json:"total_cost"`
	Compliant          bool     `json:"compliant"`
	Warnings           []string `json:"warnings,omitempty"`
}

func (in *Input) normalize() {
	if in.Phase == "" {
		in.Phase = spec.SinglePhase
	}
	if in.VoltageV == 0 {
		in.VoltageV = in.Phase.NominalVoltage()
	}
	if in.PowerFactor == 0 {
		in.PowerFactor = 1.0
	}
	if in.Cores == 0 {
		if in.Phase == spec.ThreePhase {
			in.Cores = 3
		} else {
			in.Cores = 2
		}
	}
	if in.AmbientC == 0 {
		in.AmbientC = 30
	}
	if in.Grouped == 0 {
		in.Grouped = 1
	}
	if in.CableType == "" {
		in.CableType = spec.CableNOIKLX
	}
	if in.MaxDropPercent == 0 {
		in.MaxDropPercent = 4
	}
}

// DesignCurrent computes the load current in amperes.
func DesignCurrent(powerW, voltageV, powerFactor float64, phase spec.Phase) float64 {
	if voltageV == 0 || powerFactor == 0 {
		return 0
	}
	if phase == spec.ThreePhase {
		return powerW / (math.Sqrt(3) * voltageV * powerFactor)
	}
	return powerW / (voltageV * powerFactor)
}

// VoltageDrop computes the drop in volts across a run of the given
// cross-section carrying the given current.
func VoltageDrop(crossSection, lengthM, currentA float64, phase spec.Phase) float64 {
	if crossSection <= 0 {
		return 0
	}
	if phase == spec.ThreePhase {
		return math.Sqrt(3) * lengthM * currentA * tables.CopperResistivity / crossSection
	}
	return 2 * lengthM * currentA * tables.CopperResistivity / crossSection
}

// Size computes the recommended cross-section for one circuit. It always
// returns a result for valid numeric input; an undersized outcome is flagged
// via Compliant and Warnings.
func Size(in Input) Result {
	in.normalize()

	res := Result{
		DesignCurrentA: DesignCurrent(in.PowerW, in.VoltageV, in.PowerFactor, in.Phase),
	}

	method := in.Method
	if _, ok := tables.Ampacity(method, in.Cores, tables.CrossSections[0]); !ok {
		// Unknown method or core count: estimate with clipped-direct values
		// rather than refusing to size.
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("unknown installation method %q with %d cores, using method C default", method, in.Cores))
		method = spec.MethodC
		if in.Cores != 2 && in.Cores != 3 {
			in.Cores = 2
		}
	}

	res.DeratingFactor = tables.TemperatureCorrection(in.AmbientC) * tables.GroupingCorrection(in.Grouped)

	res.SectionByAmpacity = minSectionByAmpacity(method, in.Cores, res.DeratingFactor, res.DesignCurrentA)
	res.SectionByDrop = minSectionByDrop(in, res.DesignCurrentA)

	res.RecommendedSection = res.SectionByAmpacity
	if res.SectionByDrop > res.RecommendedSection {
		res.RecommendedSection = res.SectionByDrop
	}

	capacity, _ := tables.Ampacity(method, in.Cores, res.RecommendedSection)
	res.AmpacityA = capacity * res.DeratingFactor
	res.VoltageDropV = VoltageDrop(res.RecommendedSection, in.LengthM, res.DesignCurrentA, in.Phase)
	res.VoltageDropPercent = res.VoltageDropV / in.VoltageV * 100

	res.Compliant = res.VoltageDropPercent <= in.MaxDropPercent && res.AmpacityA >= res.DesignCurrentA
	if res.VoltageDropPercent > in.MaxDropPercent {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("voltage drop %.1f%% exceeds the %.1f%% limit even at %.3g mm²; shorten the run or supply at 3-phase",
				res.VoltageDropPercent, in.MaxDropPercent, res.RecommendedSection))
	}
	if res.AmpacityA < res.DesignCurrentA {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("derated ampacity %.1f A is below design current %.1f A at the largest standard section",
				res.AmpacityA, res.DesignCurrentA))
	}

	if in.Phase == spec.SinglePhase && res.DesignCurrentA > 32 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("design current %.1f A on single phase; consider 3-phase supply", res.DesignCurrentA))
	}
	if in.Grouped > 6 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d cables grouped on one route; consider separate routing to reduce derating", in.Grouped))
	}

	res.Designation = Designation(res.RecommendedSection, in.Phase, in.CableType)
	cost, ok := tables.CableCostPerMeter(res.RecommendedSection)
	if !ok {
		cost = tables.DefaultCableCostPerMeter
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("no price entry for %.3g mm², using default %.0f DKK/m", res.RecommendedSection, cost))
	}
	res.CostPerMeter = cost
	res.TotalCost = cost * in.LengthM

	return res
}

// minSectionByAmpacity returns the smallest standard section whose derated
// capacity covers the design current, or the largest available section.
func minSectionByAmpacity(method spec.InstallationMethod, cores int, derating, currentA float64) float64 {
	for _, s := range tables.CrossSections {
		capacity, ok := tables.Ampacity(method, cores, s)
		if !ok {
			continue
		}
		if capacity*derating >= currentA {
			return s
		}
	}
	return tables.CrossSections[len(tables.CrossSections)-1]
}

// minSectionByDrop returns the smallest standard section keeping the voltage
// drop within the allowed percentage, or the largest available section.
func minSectionByDrop(in Input, currentA float64) float64 {
	for _, s := range tables.CrossSections {
		drop := VoltageDrop(s, in.LengthM, currentA, in.Phase)
		if drop/in.VoltageV*100 <= in.MaxDropPercent {
			return s
		}
	}
	return tables.CrossSections[len(tables.CrossSections)-1]
}

// Designation builds the human cable designation, e.g. "3G2.5 NOIKLX 90".
// Single-phase circuits run 3 conductors (L, N, PE), 3-phase circuits run 5.
func Designation(crossSection float64, phase spec.Phase, cableType spec.CableType) string {
	conductors := 3
	if phase == spec.ThreePhase {
		conductors = 5
	}
	return fmt.Sprintf("%dG%.3g %s", conductors, crossSection, cableType)
}
