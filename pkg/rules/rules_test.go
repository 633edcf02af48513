package rules

import (
	"testing"

	"github.com/Arch8541/limit/pkg/site"
)

func TestDefaultTableLoads(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("loading embedded table: %v", err)
	}
	if table.Version != "GDCR-2017" {
		t.Errorf("version = %q, want GDCR-2017", table.Version)
	}
	if len(table.Zones) != len(site.AllZones) {
		t.Errorf("zones = %d, want %d", len(table.Zones), len(site.AllZones))
	}
}

func TestDefaultTableVerifies(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatalf("loading embedded table: %v", err)
	}
	report := Verify(table)
	if !report.Valid {
		t.Fatalf("embedded table failed verification: %+v", report.Errors)
	}
}

func TestDefaultTableR1Fixture(t *testing.T) {
	table, _ := Default()
	zr, ok := table.ZoneRules(site.ZoneR1)
	if !ok {
		t.Fatal("R1 missing from the default table")
	}

	if zr.BaseFSI != 1.2 {
		t.Errorf("R1 base FSI = %v, want 1.2", zr.BaseFSI)
	}
	if premium, matched := zr.FSIPremium.Lookup(9); !matched || premium != 0.3 {
		t.Errorf("R1 premium at 9m = %v (matched %v), want 0.3", premium, matched)
	}
	if setback, matched := zr.Setbacks.Front.Lookup(9); !matched || setback != 4.5 {
		t.Errorf("R1 front setback at 9m = %v (matched %v), want 4.5", setback, matched)
	}
	if zr.MaxFSI != 1.8 || zr.MaxHeight != 45 || zr.GroundCoverage != 60 {
		t.Errorf("R1 caps = %v/%v/%v, want 1.8/45/60", zr.MaxFSI, zr.MaxHeight, zr.GroundCoverage)
	}
}

func TestBandHalfOpen(t *testing.T) {
	b := Band{Min: 9, Max: 12}

	if !b.Contains(9) {
		t.Error("min is inside the band")
	}
	if b.Contains(12) {
		t.Error("max is outside the band (half-open)")
	}
	if !b.Contains(11.999) {
		t.Error("just below max is inside")
	}
	if b.Contains(8.999) {
		t.Error("just below min is outside")
	}
}

func TestPremiumLookupEdges(t *testing.T) {
	bands := PremiumBands{
		{RoadWidth: Band{Min: 0, Max: 9}, Premium: 0},
		{RoadWidth: Band{Min: 9, Max: 12}, Premium: 0.3},
		{RoadWidth: Band{Min: 12, Max: 18}, Premium: 0.5},
	}

	cases := []struct {
		width   float64
		premium float64
		matched bool
	}{
		{0, 0, true},
		{8.999, 0, true},
		{9, 0.3, true},
		{12, 0.5, true}, // at a boundary the next band wins
		{17.999, 0.5, true},
		{18, 0, false}, // beyond the last band: default, flagged
		{-1, 0, false},
	}
	for _, tc := range cases {
		premium, matched := bands.Lookup(tc.width)
		if premium != tc.premium || matched != tc.matched {
			t.Errorf("Lookup(%v) = (%v, %v), want (%v, %v)", tc.width, premium, matched, tc.premium, tc.matched)
		}
	}
}

func TestSideLookupDefaultFlag(t *testing.T) {
	bands := SideSetbackBands{
		{Height: Band{Min: 0, Max: 10}, Setback: 2},
		{Height: Band{Min: 10, Max: 45}, Setback: 3},
	}

	if setback, matched := bands.Lookup(45); matched || setback != 0 {
		t.Errorf("Lookup(45) = (%v, %v), want the default fall-through (0, false)", setback, matched)
	}
	if setback, matched := bands.Lookup(44.999); !matched || setback != 3 {
		t.Errorf("Lookup(44.999) = (%v, %v), want (3, true)", setback, matched)
	}
}

func TestVerifyMissingZone(t *testing.T) {
	table, _ := Default()
	delete(table.Zones, site.ZoneIndustrial)

	report := Verify(table)
	if report.Valid {
		t.Fatal("verification should fail when a zone is missing")
	}

	found := false
	for _, e := range report.Errors {
		if e.Field == "zones.Industrial" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error on zones.Industrial, got %+v", report.Errors)
	}
}

func TestVerifyBandGap(t *testing.T) {
	table, _ := Default()
	zr := table.Zones[site.ZoneR1]
	zr.FSIPremium = PremiumBands{
		{RoadWidth: Band{Min: 0, Max: 9}, Premium: 0},
		{RoadWidth: Band{Min: 10, Max: 12}, Premium: 0.3}, // gap at [9,10)
	}
	table.Zones[site.ZoneR1] = zr

	report := Verify(table)
	if report.Valid {
		t.Fatal("verification should fail on a band gap")
	}
}

func TestVerifyMissingParkingNorm(t *testing.T) {
	table, _ := Default()
	delete(table.Parking.Norms, site.UseMixedUse)

	report := Verify(table)
	if report.Valid {
		t.Fatal("verification should fail when a use has no parking norm")
	}
}

func TestVerifyInvertedBand(t *testing.T) {
	table, _ := Default()
	zr := table.Zones[site.ZoneR2]
	zr.Setbacks.Side = SideSetbackBands{
		{Height: Band{Min: 10, Max: 10}, Setback: 2},
	}
	table.Zones[site.ZoneR2] = zr

	report := Verify(table)
	if report.Valid {
		t.Fatal("verification should fail on an empty interval")
	}
}
