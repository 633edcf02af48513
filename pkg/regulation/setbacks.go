package regulation

import (
	"fmt"
	"strings"

	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
)

// defaultSideSetback applies when the building height falls outside
// every side-setback band. Documented fallback, not an error.
const defaultSideSetback = 0.0

// calculateSetbacks resolves the three setback distances. The front
// band lookup is recomputed rather than reused from the height step to
// keep the sub-calculations decoupled; both must agree because the
// reference data is shared. The side band is keyed by the already
// capped building height, not the raw formula result.
func calculateSetbacks(d *site.Description, zr rules.ZoneRules, buildingHeight float64) SetbacksResult {
	roadWidth := d.RoadWidthPrimary

	front, matched := zr.Setbacks.Front.Lookup(roadWidth)
	if !matched {
		front = defaultFrontSetback
	}

	side, matched := zr.Setbacks.Side.Lookup(buildingHeight)
	if !matched {
		side = defaultSideSetback
	}

	rear := zr.Setbacks.Rear

	var b strings.Builder
	fmt.Fprintf(&b, "Front Setback (Road Width %gm): %gm\n", roadWidth, front)
	fmt.Fprintf(&b, "Side Setback (Building Height %.2fm): %gm\n", buildingHeight, side)
	fmt.Fprintf(&b, "Rear Setback: %gm", rear)
	if d.IsCornerPlot {
		fmt.Fprintf(&b, "\n\nCorner Plot: Front setback required on both road-facing sides")
	}

	return SetbacksResult{
		Front:        front,
		Side:         side,
		Rear:         rear,
		Calculations: b.String(),
	}
}
