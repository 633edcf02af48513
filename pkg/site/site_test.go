package site

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `project_name: Test Bungalow
address: Bodakdev, Ahmedabad
location:
  lat: 23.0225
  lng: 72.5714
authority: AUDA
zone: R1
plot_dimensions:
  length: 30
  width: 20
  area: 600
is_corner_plot: true
road_width_primary: 9
road_width_secondary: 7.5
intended_use: Residential-Single
special_conditions:
  heritage: false
  toz: true
  sez: false
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if d.ProjectName != "Test Bungalow" || d.Zone != ZoneR1 || d.Authority != AuthorityAUDA {
		t.Errorf("header fields parsed wrong: %+v", d)
	}
	if d.PlotDimensions.Area != 600 || d.PlotDimensions.Length != 30 {
		t.Errorf("plot dimensions parsed wrong: %+v", d.PlotDimensions)
	}
	if !d.IsCornerPlot || d.RoadWidthPrimary != 9 || d.RoadWidthSecondary != 7.5 {
		t.Errorf("road fields parsed wrong: %+v", d)
	}
	if d.IntendedUse != UseResidentialSingle {
		t.Errorf("intended use = %q", d.IntendedUse)
	}
	if !d.SpecialConditions.TOZ || d.SpecialConditions.Heritage {
		t.Errorf("special conditions parsed wrong: %+v", d.SpecialConditions)
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if d.ProjectName != "Test Bungalow" {
		t.Errorf("project name = %q", d.ProjectName)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file must error")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("zone: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML must error")
	}
}

func TestEnumValidity(t *testing.T) {
	for _, z := range AllZones {
		if !z.Valid() {
			t.Errorf("zone %s not valid", z)
		}
	}
	if Zone("Agricultural").Valid() {
		t.Error("unknown zone accepted")
	}
	for _, u := range AllUses {
		if !u.Valid() {
			t.Errorf("use %s not valid", u)
		}
	}
	if IntendedUse("Hospital").Valid() {
		t.Error("unknown use accepted")
	}
	if Authority("GMC").Valid() {
		t.Error("unknown authority accepted")
	}
}
