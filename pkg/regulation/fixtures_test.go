package regulation

import (
	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
)

// testZoneRules returns a small R1 fixture: base FSI 1.2, a single
// premium band [9,12) of 0.3, max FSI 1.8, max height 45, ground
// coverage 60, front setback 4.5 on the [9,12) road band.
func testZoneRules() rules.ZoneRules {
	return rules.ZoneRules{
		BaseFSI: 1.2,
		FSIPremium: rules.PremiumBands{
			{RoadWidth: rules.Band{Min: 0, Max: 9}, Premium: 0},
			{RoadWidth: rules.Band{Min: 9, Max: 12}, Premium: 0.3},
			{RoadWidth: rules.Band{Min: 12, Max: 18}, Premium: 0.5},
		},
		MaxFSI:         1.8,
		MaxHeight:      45,
		GroundCoverage: 60,
		Setbacks: rules.Setbacks{
			Front: rules.FrontSetbackBands{
				{RoadWidth: rules.Band{Min: 0, Max: 9}, Setback: 3},
				{RoadWidth: rules.Band{Min: 9, Max: 12}, Setback: 4.5},
				{RoadWidth: rules.Band{Min: 12, Max: 18}, Setback: 6},
			},
			Side: rules.SideSetbackBands{
				{Height: rules.Band{Min: 0, Max: 10}, Setback: 2},
				{Height: rules.Band{Min: 10, Max: 25}, Setback: 3},
				{Height: rules.Band{Min: 25, Max: 45}, Setback: 4.5},
				{Height: rules.Band{Min: 45, Max: 70}, Setback: 6},
			},
			Rear: 3,
		},
	}
}

func testTable() *rules.Table {
	return &rules.Table{
		Version: "test",
		Zones: map[site.Zone]rules.ZoneRules{
			site.ZoneR1: testZoneRules(),
		},
		CornerPlotBonus: rules.CornerPlotBonus{FSIBonus: 0.15},
		Parking: rules.ParkingRules{
			ECSArea: 25,
			Norms: map[site.IntendedUse]rules.ParkingNorm{
				site.UseResidentialSingle: {
					BuiltupUnit:   200,
					EcsPerBuiltup: 1,
					Description:   "1 ECS per 200 sq.m of built-up area",
				},
				site.UseCommercialOffice: {
					BuiltupUnit:   50,
					EcsPerBuiltup: 1,
					Description:   "1 ECS per 50 sq.m of built-up area",
				},
			},
		},
		Structural: func() rules.Structural {
			var st rules.Structural
			st.PlinthHeight.Max = 0.9
			st.FloorHeight.Residential = 3.3
			st.FloorHeight.Commercial = 3.6
			st.Parapet.Min = 1.2
			return st
		}(),
		FireSafety: rules.FireSafety{
			HeightThreshold: 15,
			Requirements: []string{
				"Fire escape staircase with minimum 1.2m width",
				"Wet riser and hose reel on every floor",
			},
		},
		Accessibility: rules.Accessibility{
			LiftThreshold: 15,
			RampRequired:  true,
			Requirements: []string{
				"Ramp with maximum slope 1:12 at building entrance",
				"Lift required for buildings above 15m",
				"Accessible toilet on ground floor",
			},
		},
		Clauses: rules.ClauseRefs{
			FSI:            "9.3",
			Height:         "9.10",
			Setbacks:       "9.7",
			GroundCoverage: "9.5",
			Parking:        "10.2",
			Structural:     "11.1",
			FireSafety:     "12.4",
			Accessibility:  "13.1",
		},
	}
}

// testSite is the example scenario: R1, 9m road, 30 × 20 plot.
func testSite() *site.Description {
	return &site.Description{
		ProjectName: "Test Plot",
		Address:     "Ahmedabad",
		Authority:   site.AuthorityAUDA,
		Zone:        site.ZoneR1,
		PlotDimensions: site.PlotDimensions{
			Length: 30,
			Width:  20,
			Area:   600,
		},
		RoadWidthPrimary: 9,
		IntendedUse:      site.UseResidentialSingle,
	}
}
