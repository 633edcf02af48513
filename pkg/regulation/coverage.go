package regulation

import (
	"fmt"
	"strings"

	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
)

// calculateGroundCoverage converts the zone's coverage percentage into
// the maximum ground floor area for the plot.
func calculateGroundCoverage(d *site.Description, zr rules.ZoneRules) CoverageResult {
	maxPercentage := zr.GroundCoverage
	maxArea := d.PlotDimensions.Area * maxPercentage / 100

	var b strings.Builder
	fmt.Fprintf(&b, "Maximum Ground Coverage: %g%%\n", maxPercentage)
	fmt.Fprintf(&b, "Plot Area: %.2f sq.m\n\n", d.PlotDimensions.Area)
	fmt.Fprintf(&b, "Maximum Ground Floor Area = Plot Area × Coverage %%\n")
	fmt.Fprintf(&b, "= %.2f sq.m × %g%%\n", d.PlotDimensions.Area, maxPercentage)
	fmt.Fprintf(&b, "= %.2f sq.m", maxArea)

	return CoverageResult{
		MaxPercentage: maxPercentage,
		MaxArea:       maxArea,
		Calculation:   b.String(),
	}
}
