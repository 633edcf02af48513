package regulation

import (
	"fmt"
	"math"
	"strings"

	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
)

// calculateFSI resolves base FSI, the road-width premium band, and the
// corner plot bonus, capped at the zone's max FSI. The built-up area
// cap is plot area times total FSI.
func calculateFSI(d *site.Description, zr rules.ZoneRules, bonus rules.CornerPlotBonus) FSIResult {
	roadWidth := d.RoadWidthPrimary

	// No matching band means no premium.
	bandPremium, _ := zr.FSIPremium.Lookup(roadWidth)

	premium := bandPremium
	if d.IsCornerPlot {
		premium += bonus.FSIBonus
	}

	total := math.Min(zr.BaseFSI+premium, zr.MaxFSI)
	maxBuiltUp := d.PlotDimensions.Area * total

	var b strings.Builder
	fmt.Fprintf(&b, "Base FSI (%s): %g\n", d.Zone, zr.BaseFSI)
	fmt.Fprintf(&b, "Road Width Premium (%gm): +%g\n", roadWidth, bandPremium)
	if d.IsCornerPlot {
		fmt.Fprintf(&b, "Corner Plot Bonus: +%g\n", bonus.FSIBonus)
	}
	fmt.Fprintf(&b, "Total FSI: %.2f (Max: %g)\n\n", total, zr.MaxFSI)
	fmt.Fprintf(&b, "Maximum Built-up Area = Plot Area × FSI\n")
	fmt.Fprintf(&b, "= %.2f sq.m × %.2f\n", d.PlotDimensions.Area, total)
	fmt.Fprintf(&b, "= %.2f sq.m", maxBuiltUp)

	return FSIResult{
		Base:           zr.BaseFSI,
		Premium:        premium,
		Total:          total,
		MaxBuiltUpArea: maxBuiltUp,
		Calculation:    b.String(),
	}
}
