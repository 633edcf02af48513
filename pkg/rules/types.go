package rules

import "github.com/Arch8541/limit/pkg/site"

// Band is a half-open interval [Min, Max) over meters.
type Band struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v < b.Max
}

// PremiumBand grants an FSI premium for plots on roads within the band.
type PremiumBand struct {
	RoadWidth Band    `yaml:"road_width" json:"roadWidth"`
	Premium   float64 `yaml:"premium" json:"premium"`
}

// PremiumBands is an ordered, contiguous list of FSI premium bands.
type PremiumBands []PremiumBand

// Lookup returns the premium for the given road width. The second
// return value is false when no band contains the width; callers fall
// back to the documented default (zero premium) in that case.
func (bs PremiumBands) Lookup(roadWidth float64) (float64, bool) {
	for _, b := range bs {
		if b.RoadWidth.Contains(roadWidth) {
			return b.Premium, true
		}
	}
	return 0, false
}

// FrontSetbackBand maps a road-width band to a front setback.
type FrontSetbackBand struct {
	RoadWidth Band    `yaml:"road_width" json:"roadWidth"`
	Setback   float64 `yaml:"setback" json:"setback"`
}

// FrontSetbackBands is an ordered, contiguous list of front-setback bands.
type FrontSetbackBands []FrontSetbackBand

// Lookup returns the front setback for the given road width, with a
// matched flag as for PremiumBands.Lookup.
func (bs FrontSetbackBands) Lookup(roadWidth float64) (float64, bool) {
	for _, b := range bs {
		if b.RoadWidth.Contains(roadWidth) {
			return b.Setback, true
		}
	}
	return 0, false
}

// SideSetbackBand maps a building-height band to a side setback.
type SideSetbackBand struct {
	Height  Band    `yaml:"height" json:"height"`
	Setback float64 `yaml:"setback" json:"setback"`
}

// SideSetbackBands is an ordered, contiguous list of side-setback bands.
type SideSetbackBands []SideSetbackBand

// Lookup returns the side setback for the given building height, with
// a matched flag as for PremiumBands.Lookup.
func (bs SideSetbackBands) Lookup(height float64) (float64, bool) {
	for _, b := range bs {
		if b.Height.Contains(height) {
			return b.Setback, true
		}
	}
	return 0, false
}

// Setbacks holds the three setback rules for a zone. Front is banded
// by road width, side by computed building height, rear is a constant.
type Setbacks struct {
	Front FrontSetbackBands `yaml:"front" json:"front"`
	Side  SideSetbackBands  `yaml:"side" json:"side"`
	Rear  float64           `yaml:"rear" json:"rear"`
}

// ZoneRules is the per-zone rule record.
type ZoneRules struct {
	BaseFSI        float64      `yaml:"base_fsi" json:"baseFSI"`
	FSIPremium     PremiumBands `yaml:"fsi_premium" json:"fsiPremium"`
	MaxFSI         float64      `yaml:"max_fsi" json:"maxFSI"`
	MaxHeight      float64      `yaml:"max_height" json:"maxHeight"`
	GroundCoverage float64      `yaml:"ground_coverage" json:"groundCoverage"`
	Setbacks       Setbacks     `yaml:"setbacks" json:"setbacks"`
}

// CornerPlotBonus holds the zone-independent corner plot adjustments.
type CornerPlotBonus struct {
	FSIBonus float64 `yaml:"fsi_bonus" json:"fsiBonus"`
}

// ParkingNorm is the parking requirement for one intended use:
// EcsPerBuiltup car spaces per BuiltupUnit square meters of built-up area.
type ParkingNorm struct {
	BuiltupUnit   float64 `yaml:"builtup_unit" json:"builtupUnit"`
	EcsPerBuiltup float64 `yaml:"ecs_per_builtup" json:"ecsPerBuiltup"`
	Description   string  `yaml:"description" json:"description"`
}

// ParkingRules holds the per-use norms and the area of one ECS.
type ParkingRules struct {
	ECSArea float64                          `yaml:"ecs_area" json:"ecsArea"`
	Norms   map[site.IntendedUse]ParkingNorm `yaml:"norms" json:"norms"`
}

// Structural holds the zone-independent structural minimums.
type Structural struct {
	PlinthHeight struct {
		Max float64 `yaml:"max" json:"max"`
	} `yaml:"plinth_height" json:"plinthHeight"`
	FloorHeight struct {
		Residential float64 `yaml:"residential" json:"residential"`
		Commercial  float64 `yaml:"commercial" json:"commercial"`
	} `yaml:"floor_height" json:"floorHeight"`
	Parapet struct {
		Min float64 `yaml:"min" json:"min"`
	} `yaml:"parapet" json:"parapet"`
}

// FireSafety holds the height threshold above which the full
// requirements list applies.
type FireSafety struct {
	HeightThreshold float64  `yaml:"height_threshold" json:"heightThreshold"`
	Requirements    []string `yaml:"requirements" json:"requirements"`
}

// Accessibility holds the lift threshold and the universal
// accessibility requirements list.
type Accessibility struct {
	LiftThreshold float64  `yaml:"lift_threshold" json:"liftThreshold"`
	RampRequired  bool     `yaml:"ramp_required" json:"rampRequired"`
	Requirements  []string `yaml:"requirements" json:"requirements"`
}

// ClauseRefs maps each result category to its GDCR clause number.
// Display and audit only; the numeric pipeline never reads these.
type ClauseRefs struct {
	FSI            string `yaml:"fsi" json:"fsi"`
	Height         string `yaml:"height" json:"height"`
	Setbacks       string `yaml:"setbacks" json:"setbacks"`
	GroundCoverage string `yaml:"ground_coverage" json:"groundCoverage"`
	Parking        string `yaml:"parking" json:"parking"`
	Structural     string `yaml:"structural" json:"structural"`
	FireSafety     string `yaml:"fire_safety" json:"fireSafety"`
	Accessibility  string `yaml:"accessibility" json:"accessibility"`
}

// Table is the complete GDCR 2017 rule table. Loaded once, treated as
// immutable, and passed to the calculator by argument rather than held
// as process state.
type Table struct {
	Version         string                  `yaml:"version" json:"version"`
	Zones           map[site.Zone]ZoneRules `yaml:"zones" json:"zones"`
	CornerPlotBonus CornerPlotBonus         `yaml:"corner_plot_bonus" json:"cornerPlotBonus"`
	Parking         ParkingRules            `yaml:"parking" json:"parking"`
	Structural      Structural              `yaml:"structural" json:"structural"`
	FireSafety      FireSafety              `yaml:"fire_safety" json:"fireSafety"`
	Accessibility   Accessibility           `yaml:"accessibility" json:"accessibility"`
	Clauses         ClauseRefs              `yaml:"gdcr_clauses" json:"gdcrClauses"`
}

// ZoneRules returns the rule record for the given zone. The second
// return value is false when the zone has no entry; Verify guarantees
// this cannot happen for a table that passed the startup check.
func (t *Table) ZoneRules(z site.Zone) (ZoneRules, bool) {
	zr, ok := t.Zones[z]
	return zr, ok
}
