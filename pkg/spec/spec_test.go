package spec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const projectYAML = `name: Terraced house
supply_phase: single_phase
building_type: residential
rooms:
  - name: Kitchen
    floor: 0
    area_m2: 14
    loads:
      - category: socket_outlet
        rated_power_w: 200
        quantity: 6
      - category: cooking
        rated_power_w: 7000
        quantity: 1
        description: induction hob
  - name: Bathroom
    floor: 0
    area_m2: 5
    wet_room: true
    cable_run_m: 8.5
    loads:
      - category: heating
        rated_power_w: 800
        quantity: 1
        demand_factor: 0.8
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadProject(t *testing.T) {
	dir := writeProject(t, projectYAML)

	in, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}

	if in.Name != "Terraced house" {
		t.Errorf("name = %q", in.Name)
	}
	if in.SupplyPhase != SinglePhase {
		t.Errorf("supply_phase = %q", in.SupplyPhase)
	}
	if len(in.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(in.Rooms))
	}
	if !in.Rooms[1].WetRoom {
		t.Error("bathroom should be a wet room")
	}
	if in.Rooms[1].CableRunM != 8.5 {
		t.Errorf("cable_run_m = %v", in.Rooms[1].CableRunM)
	}
	df := in.Rooms[1].Loads[0].DemandFactor
	if df == nil || *df != 0.8 {
		t.Errorf("demand_factor = %v", df)
	}
	if err := ValidateProject(in); err != nil {
		t.Errorf("loaded project should validate: %v", err)
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	if _, err := LoadProject(t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing project.yaml")
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := writeProject(t, "rooms: [name: {{")
	if _, err := LoadProject(dir); err == nil {
		t.Fatal("expected a parse error")
	}
}

func validProject() *ElectricalProjectInput {
	return &ElectricalProjectInput{
		Name:         "Test",
		SupplyPhase:  SinglePhase,
		BuildingType: Residential,
		Rooms: []Room{{
			Name:   "Kitchen",
			AreaM2: 12,
			Loads: []LoadEntry{
				{Category: CategoryLighting, RatedPowerW: 50, Quantity: 4},
			},
		}},
	}
}

func TestValidateProject(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ElectricalProjectInput)
		wantErr string // empty means valid
	}{
		{"valid", func(in *ElectricalProjectInput) {}, ""},
		{"bad phase", func(in *ElectricalProjectInput) { in.SupplyPhase = "two_phase" }, "supply_phase"},
		{"bad building type", func(in *ElectricalProjectInput) { in.BuildingType = "barn" }, "building_type"},
		{"bad installation method", func(in *ElectricalProjectInput) { in.InstallationMethod = "Z9" }, "installation_method"},
		{"blank method allowed", func(in *ElectricalProjectInput) { in.InstallationMethod = "" }, ""},
		{"negative fuse", func(in *ElectricalProjectInput) { in.ExistingMainFuseA = -1 }, "existing_main_fuse_a"},
		{"negative max run", func(in *ElectricalProjectInput) { in.MaxCableRunM = -2 }, "max_cable_run_m"},
		{"no rooms", func(in *ElectricalProjectInput) { in.Rooms = nil }, "at least one room"},
		{"unnamed room", func(in *ElectricalProjectInput) { in.Rooms[0].Name = "" }, "name must not be empty"},
		{"negative area", func(in *ElectricalProjectInput) { in.Rooms[0].AreaM2 = -4 }, "area_m2"},
		{"unknown category", func(in *ElectricalProjectInput) { in.Rooms[0].Loads[0].Category = "jacuzzi" }, "unknown category"},
		{"zero power", func(in *ElectricalProjectInput) { in.Rooms[0].Loads[0].RatedPowerW = 0 }, "rated_power_w"},
		{"zero quantity", func(in *ElectricalProjectInput) { in.Rooms[0].Loads[0].Quantity = 0 }, "quantity"},
		{"demand factor above one", func(in *ElectricalProjectInput) {
			f := 1.5
			in.Rooms[0].Loads[0].DemandFactor = &f
		}, "demand_factor"},
		{"phase out of range", func(in *ElectricalProjectInput) { in.Rooms[0].Loads[0].Phase = 4 }, "phase must be 1-3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validProject()
			tc.mutate(in)
			err := ValidateProject(in)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected an error mentioning %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateProjectJoinsErrors(t *testing.T) {
	in := validProject()
	in.SupplyPhase = "two_phase"
	in.Rooms[0].Loads[0].RatedPowerW = -5

	err := ValidateProject(in)
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	for _, want := range []string{"supply_phase", "rated_power_w"} {
		if !strings.Contains(msg, want) {
			t.Errorf("joined error %q does not mention %q", msg, want)
		}
	}
}

func TestConnectedPowerW(t *testing.T) {
	l := LoadEntry{Category: CategorySocketOutlet, RatedPowerW: 200, Quantity: 8}
	if got := l.ConnectedPowerW(); got != 1600 {
		t.Errorf("ConnectedPowerW = %v, want 1600", got)
	}
}

func TestPhaseNominalVoltage(t *testing.T) {
	if v := SinglePhase.NominalVoltage(); v != 230 {
		t.Errorf("single phase voltage = %v", v)
	}
	if v := ThreePhase.NominalVoltage(); v != 400 {
		t.Errorf("three phase voltage = %v", v)
	}
}

func TestAllLoads(t *testing.T) {
	in := &ElectricalProjectInput{Rooms: []Room{
		{Name: "A", Loads: []LoadEntry{{Category: CategoryLighting, RatedPowerW: 50, Quantity: 1}}},
		{Name: "B", Loads: []LoadEntry{
			{Category: CategorySocketOutlet, RatedPowerW: 200, Quantity: 2},
			{Category: CategoryHeating, RatedPowerW: 800, Quantity: 1},
		}},
	}}
	if got := len(in.AllLoads()); got != 3 {
		t.Errorf("AllLoads returned %d entries, want 3", got)
	}
}
