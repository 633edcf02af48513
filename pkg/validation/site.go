package validation

import (
	"fmt"
	"math"

	"github.com/Arch8541/limit/pkg/site"
)

// ValidateSite performs schema-level validation on a site description
// before it reaches the calculator. The calculator itself trusts its
// input; everything that would make it meaningless is caught here.
func ValidateSite(d *site.Description) *Report {
	r := NewReport()

	validateEnums(d, r)
	validatePlot(d, r)
	validateRoads(d, r)

	return r
}

func validateEnums(d *site.Description, r *Report) {
	if !d.Zone.Valid() {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown zone %q", d.Zone),
			Field:       "zone",
			ActualValue: string(d.Zone),
			Expected:    "one of R1, R2, Commercial, Industrial, Mixed-Use",
		})
	}
	if !d.IntendedUse.Valid() {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown intended use %q", d.IntendedUse),
			Field:       "intended_use",
			ActualValue: string(d.IntendedUse),
			Expected:    "a recognised use category",
		})
	}
	if !d.Authority.Valid() {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown authority %q", d.Authority),
			Field:       "authority",
			ActualValue: string(d.Authority),
			Expected:    "AUDA or AMC",
		})
	}
}

func validatePlot(d *site.Description, r *Report) {
	p := d.PlotDimensions

	if p.Length <= 0 || p.Width <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "plot length and width must be greater than 0",
			Field:       "plot_dimensions",
			ActualValue: fmt.Sprintf("%.2f × %.2f", p.Length, p.Width),
			Expected:    "> 0",
		})
	}
	if p.Area <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "plot area must be greater than 0",
			Field:       "plot_dimensions.area",
			ActualValue: p.Area,
			Expected:    "> 0",
		})
	}

	// Area is the caller's responsibility; a mismatch with length ×
	// width is surfaced but the stated area is still what gets used.
	if p.Length > 0 && p.Width > 0 && p.Area > 0 {
		derived := p.Length * p.Width
		if math.Abs(derived-p.Area) > 0.01*derived {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("plot area %.2f does not match length × width (%.2f)", p.Area, derived),
				Field:       "plot_dimensions.area",
				ActualValue: p.Area,
				Expected:    fmt.Sprintf("%.2f", derived),
				Suggestions: []string{"Check the plot dimensions; calculations use the stated area"},
			})
		}
	}
}

func validateRoads(d *site.Description, r *Report) {
	if d.RoadWidthPrimary <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "primary road width must be greater than 0",
			Field:       "road_width_primary",
			ActualValue: d.RoadWidthPrimary,
			Expected:    "> 0",
		})
	}
	if d.RoadWidthSecondary < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "secondary road width must not be negative",
			Field:       "road_width_secondary",
			ActualValue: d.RoadWidthSecondary,
			Expected:    ">= 0",
		})
	}

	// Corner plots front two roads. The secondary width is recorded
	// for display only, so its absence is informational, not an error.
	if d.IsCornerPlot && d.RoadWidthSecondary == 0 {
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: "corner plot without a secondary road width; the FSI bonus still applies",
			Field:   "road_width_secondary",
		})
	}
}
