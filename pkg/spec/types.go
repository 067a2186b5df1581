package spec

// LoadCategory classifies one electrical consumer group. The set is closed;
// validators and circuit builders switch over it exhaustively.
type LoadCategory string

const (
	CategoryLighting       LoadCategory = "lighting"
	CategorySocketOutlet   LoadCategory = "socket_outlet"
	CategoryFixedAppliance LoadCategory = "fixed_appliance"
	CategoryMotor          LoadCategory = "motor"
	CategoryHeating        LoadCategory = "heating"
	CategoryCooking        LoadCategory = "cooking"
	CategoryEVCharger      LoadCategory = "ev_charger"
	CategoryDataEquipment  LoadCategory = "data_equipment"
	CategoryOther          LoadCategory = "other"
)

// LoadCategoryOrder is the fixed aggregation and presentation order.
var LoadCategoryOrder = []LoadCategory{
	CategoryLighting,
	CategorySocketOutlet,
	CategoryFixedAppliance,
	CategoryMotor,
	CategoryHeating,
	CategoryCooking,
	CategoryEVCharger,
	CategoryDataEquipment,
	CategoryOther,
}

// Valid reports whether c is a known category.
func (c LoadCategory) Valid() bool {
	switch c {
	case CategoryLighting, CategorySocketOutlet, CategoryFixedAppliance,
		CategoryMotor, CategoryHeating, CategoryCooking,
		CategoryEVCharger, CategoryDataEquipment, CategoryOther:
		return true
	}
	return false
}

// Phase is the supply phase type.
type Phase string

const (
	SinglePhase Phase = "single_phase"
	ThreePhase  Phase = "three_phase"
)

func (p Phase) Valid() bool {
	return p == SinglePhase || p == ThreePhase
}

// NominalVoltage returns the Danish LV nominal voltage for the phase type:
// 230 V line-to-neutral, 400 V line-to-line.
func (p Phase) NominalVoltage() float64 {
	if p == ThreePhase {
		return 400
	}
	return 230
}

// BuildingType selects which diversity-factor table applies.
type BuildingType string

const (
	Residential BuildingType = "residential"
	Commercial  BuildingType = "commercial"
	Industrial  BuildingType = "industrial"
)

func (b BuildingType) Valid() bool {
	return b == Residential || b == Commercial || b == Industrial
}

// BreakerType is the protective-device type at one panel position.
type BreakerType string

const (
	BreakerMCB  BreakerType = "MCB"
	BreakerRCBO BreakerType = "RCBO"
	BreakerRCD  BreakerType = "RCD"
)

// Characteristic is the breaker trip curve.
type Characteristic string

const (
	CurveB Characteristic = "B"
	CurveC Characteristic = "C"
	CurveD Characteristic = "D"
)

// RCDType is the residual-current device class. Type B is required where DC
// fault currents can occur (EV chargers); type A covers general use.
type RCDType string

const (
	RCDTypeA RCDType = "A"
	RCDTypeB RCDType = "B"
)

// InstallationMethod is the IEC 60364-5-52 reference installation method.
type InstallationMethod string

const (
	MethodA1 InstallationMethod = "A1" // insulated conductors in conduit in a thermally insulated wall
	MethodA2 InstallationMethod = "A2" // multi-core cable in conduit in a thermally insulated wall
	MethodB1 InstallationMethod = "B1" // insulated conductors in conduit on a wall
	MethodB2 InstallationMethod = "B2" // multi-core cable in conduit on a wall
	MethodC  InstallationMethod = "C"  // multi-core cable clipped direct
	MethodD1 InstallationMethod = "D1" // cable in buried duct
)

func (m InstallationMethod) Valid() bool {
	switch m {
	case MethodA1, MethodA2, MethodB1, MethodB2, MethodC, MethodD1:
		return true
	}
	return false
}

// CableType is the installation cable product family.
type CableType string

const (
	CableNOIKLX CableType = "NOIKLX 90"
	CablePVIKJ  CableType = "PVIKJ"
)

// LoadEntry is one electrical consumer group within a room. Immutable once
// constructed.
type LoadEntry struct {
	Category     LoadCategory `yaml:"category" json:"category"`
	RatedPowerW  float64      `yaml:"rated_power_w" json:"rated_power_w"` // per unit
	Quantity     int          `yaml:"quantity" json:"quantity"`
	DemandFactor *float64     `yaml:"demand_factor,omitempty" json:"demand_factor,omitempty"` // overrides the category table
	Phase        int          `yaml:"phase,omitempty" json:"phase,omitempty"`                 // 1-3 explicit, 0 = assign automatically
	Description  string       `yaml:"description" json:"description"`
}

// ConnectedPowerW returns rated power times quantity.
func (l LoadEntry) ConnectedPowerW() float64 {
	return l.RatedPowerW * float64(l.Quantity)
}

// Room is a named space holding an ordered sequence of loads. Read-only to
// the engine.
type Room struct {
	Name      string      `yaml:"name" json:"name"`
	Type      string      `yaml:"type" json:"type"`
	Floor     int         `yaml:"floor" json:"floor"`
	AreaM2    float64     `yaml:"area_m2" json:"area_m2"`
	WetRoom   bool        `yaml:"wet_room" json:"wet_room"`
	Loads     []LoadEntry `yaml:"loads" json:"loads"`
	CableRunM float64     `yaml:"cable_run_m,omitempty" json:"cable_run_m,omitempty"` // 0 = estimate from floor and area
}

// ElectricalProjectInput is the full input for one project calculation.
type ElectricalProjectInput struct {
	Name               string             `yaml:"name" json:"name"`
	Rooms              []Room             `yaml:"rooms" json:"rooms"`
	SupplyPhase        Phase              `yaml:"supply_phase" json:"supply_phase"`
	BuildingType       BuildingType       `yaml:"building_type" json:"building_type"`
	ExistingMainFuseA  int                `yaml:"existing_main_fuse_a,omitempty" json:"existing_main_fuse_a,omitempty"` // 0 = no existing supply to check
	InstallationMethod InstallationMethod `yaml:"installation_method,omitempty" json:"installation_method,omitempty"`   // default B2
	MaxCableRunM       float64            `yaml:"max_cable_run_m,omitempty" json:"max_cable_run_m,omitempty"`           // 0 = no cap on estimated runs
	Renovation         bool               `yaml:"renovation" json:"renovation"`
}

// AllLoads returns every load entry across all rooms in input order.
func (in ElectricalProjectInput) AllLoads() []LoadEntry {
	var loads []LoadEntry
	for _, r := range in.Rooms {
		loads = append(loads, r.Loads...)
	}
	return loads
}
