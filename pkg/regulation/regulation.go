// Package regulation computes permissible building envelope parameters
// for a plot under the GDCR 2017 rule table. The calculator is a pure
// function over an immutable site description and rule table: no I/O,
// no shared state, safe to call concurrently.
package regulation

import (
	"fmt"

	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
)

// FSIResult is the floor-space-index outcome.
type FSIResult struct {
	Base           float64 `json:"base"`
	Premium        float64 `json:"premium"`
	Total          float64 `json:"total"`
	MaxBuiltUpArea float64 `json:"maxBuiltUpArea"`
	Calculation    string  `json:"calculation"`
}

// HeightResult is the permissible-height outcome.
type HeightResult struct {
	Max         float64 `json:"max"`
	Formula     string  `json:"formula"`
	ZoneLimit   float64 `json:"zoneLimit"`
	Calculation string  `json:"calculation"`
}

// SetbacksResult holds the three mandatory setback distances.
type SetbacksResult struct {
	Front        float64 `json:"front"`
	Side         float64 `json:"side"`
	Rear         float64 `json:"rear"`
	Calculations string  `json:"calculations"`
}

// CoverageResult is the ground-coverage outcome.
type CoverageResult struct {
	MaxPercentage float64 `json:"maxPercentage"`
	MaxArea       float64 `json:"maxArea"`
	Calculation   string  `json:"calculation"`
}

// ParkingResult is the parking requirement in ECS units. Required is
// the unrounded ECS count rounded up; AreaRequired is derived from the
// unrounded count, so the two deliberately diverge for fractional ECS.
type ParkingResult struct {
	Required     int     `json:"required"`
	AreaRequired float64 `json:"areaRequired"`
	Calculation  string  `json:"calculation"`
}

// StructuralResult holds the structural minimums for the use category.
type StructuralResult struct {
	PlinthHeight float64 `json:"plinthHeight"`
	FloorHeight  float64 `json:"floorHeight"`
	Parapet      float64 `json:"parapet"`
}

// FireSafetyResult holds the fire-safety obligations.
type FireSafetyResult struct {
	Required     bool     `json:"required"`
	Requirements []string `json:"requirements"`
}

// AccessibilityResult holds the universal accessibility obligations.
type AccessibilityResult struct {
	RampRequired bool     `json:"rampRequired"`
	LiftRequired bool     `json:"liftRequired"`
	Requirements []string `json:"requirements"`
}

// Result is the complete regulation outcome for one site. The
// per-dimension calculation strings reproduce the literal arithmetic
// performed and are part of the report contract, not cosmetic.
type Result struct {
	FSI            FSIResult           `json:"fsi"`
	Height         HeightResult        `json:"height"`
	Setbacks       SetbacksResult      `json:"setbacks"`
	GroundCoverage CoverageResult      `json:"groundCoverage"`
	Parking        ParkingResult       `json:"parking"`
	Structural     StructuralResult    `json:"structural"`
	FireSafety     FireSafetyResult    `json:"fireSafety"`
	Accessibility  AccessibilityResult `json:"accessibility"`
}

// Clause is one GDCR citation entry, built from the rule table's
// clause references independently of the numeric result.
type Clause struct {
	ClauseNumber string `json:"clauseNumber"`
	Description  string `json:"description"`
	Category     string `json:"category"`
}

// Calculate derives the full regulation result for a site. The rule
// table must have passed rules.Verify: a zone or parking norm missing
// from the table is a caller contract violation and is the only way
// Calculate can fail.
func Calculate(d *site.Description, t *rules.Table) (*Result, []Clause, error) {
	zr, ok := t.ZoneRules(d.Zone)
	if !ok {
		return nil, nil, fmt.Errorf("regulation configuration incomplete for zone %s", d.Zone)
	}

	// 1. FSI (premium banded by road width, corner bonus, capped)
	fsi := calculateFSI(d, zr, t.CornerPlotBonus)

	// 2. Height (front-setback lookup feeds the height formula)
	height := calculateHeight(d, zr)

	// 3. Setbacks (side band keyed by the capped height)
	setbacks := calculateSetbacks(d, zr, height.Max)

	// 4. Ground coverage
	coverage := calculateGroundCoverage(d, zr)

	// 5. Parking (derived from the FSI built-up area, never recomputed)
	parking, err := calculateParking(d, t.Parking, fsi.MaxBuiltUpArea)
	if err != nil {
		return nil, nil, err
	}

	// 6. Structural minimums
	structural := structuralRequirements(d, t.Structural)

	// 7. Fire safety (gated on the computed height)
	fireSafety := fireSafetyRequirements(height.Max, t.FireSafety)

	// 8. Accessibility (lift gated on the computed height)
	accessibility := accessibilityRequirements(height.Max, t.Accessibility)

	result := &Result{
		FSI:            fsi,
		Height:         height,
		Setbacks:       setbacks,
		GroundCoverage: coverage,
		Parking:        parking,
		Structural:     structural,
		FireSafety:     fireSafety,
		Accessibility:  accessibility,
	}

	return result, Clauses(t), nil
}

// Clauses builds the citation list for a report, one entry per result
// category, from the table's clause references.
func Clauses(t *rules.Table) []Clause {
	return []Clause{
		{ClauseNumber: t.Clauses.FSI, Description: "Floor Space Index regulations based on zone and road width", Category: "FSI"},
		{ClauseNumber: t.Clauses.Height, Description: "Maximum permissible building height", Category: "Height"},
		{ClauseNumber: t.Clauses.Setbacks, Description: "Mandatory setback distances from plot boundaries", Category: "Setbacks"},
		{ClauseNumber: t.Clauses.GroundCoverage, Description: "Maximum ground floor coverage percentage", Category: "Ground Coverage"},
		{ClauseNumber: t.Clauses.Parking, Description: "Parking space requirements in ECS units", Category: "Parking"},
		{ClauseNumber: t.Clauses.Structural, Description: "Structural specifications for plinth, floor, and parapet", Category: "Structural"},
		{ClauseNumber: t.Clauses.FireSafety, Description: "Fire safety and emergency requirements", Category: "Fire Safety"},
		{ClauseNumber: t.Clauses.Accessibility, Description: "Universal accessibility standards", Category: "Accessibility"},
	}
}
