package regulation

import (
	"fmt"
	"math"
	"strings"

	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
)

// heightFormula is the GDCR permissible-height formula.
const heightFormula = "2 × (Road Width + Front Setback)"

// defaultFrontSetback applies when the road width falls outside every
// front-setback band. Documented fallback, not an error.
const defaultFrontSetback = 3.0

// calculateHeight applies the height formula using the front setback
// for the primary road, clamped to the zone's height cap.
func calculateHeight(d *site.Description, zr rules.ZoneRules) HeightResult {
	roadWidth := d.RoadWidthPrimary

	frontSetback, matched := zr.Setbacks.Front.Lookup(roadWidth)
	if !matched {
		frontSetback = defaultFrontSetback
	}

	calculated := 2 * (roadWidth + frontSetback)
	max := math.Min(calculated, zr.MaxHeight)

	var b strings.Builder
	fmt.Fprintf(&b, "Formula: %s\n", heightFormula)
	fmt.Fprintf(&b, "= 2 × (%gm + %gm)\n", roadWidth, frontSetback)
	fmt.Fprintf(&b, "= 2 × %gm\n", roadWidth+frontSetback)
	fmt.Fprintf(&b, "= %.2fm\n\n", calculated)
	fmt.Fprintf(&b, "Zone Maximum: %gm\n", zr.MaxHeight)
	fmt.Fprintf(&b, "Permissible Height: %.2fm (lower of calculated and zone max)", max)

	return HeightResult{
		Max:         max,
		Formula:     heightFormula,
		ZoneLimit:   zr.MaxHeight,
		Calculation: b.String(),
	}
}
