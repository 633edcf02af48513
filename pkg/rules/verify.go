package rules

import (
	"fmt"

	"github.com/Arch8541/limit/pkg/site"
	"github.com/Arch8541/limit/pkg/validation"
)

// Verify runs the startup-time consistency check on a loaded rule
// table. The calculator treats table coverage as a precondition, so an
// incomplete table must be rejected here rather than surfacing as a
// wrong result at call time.
func Verify(t *Table) *validation.Report {
	r := validation.NewReport()

	verifyZones(t, r)
	verifyParking(t, r)
	verifyGlobals(t, r)
	verifyClauses(t, r)

	return r
}

func verifyZones(t *Table, r *validation.Report) {
	for _, zone := range site.AllZones {
		zr, ok := t.Zones[zone]
		if !ok {
			r.AddError(validation.Result{
				Level:    validation.LevelReference,
				Message:  fmt.Sprintf("regulation configuration incomplete for zone %s", zone),
				Field:    fmt.Sprintf("zones.%s", zone),
				Expected: "one rule record per zone",
			})
			continue
		}

		field := func(name string) string { return fmt.Sprintf("zones.%s.%s", zone, name) }

		if zr.BaseFSI <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("zone %s: base_fsi must be > 0", zone),
				Field:       field("base_fsi"),
				ActualValue: zr.BaseFSI,
				Expected:    "> 0",
			})
		}
		if zr.MaxFSI < zr.BaseFSI {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("zone %s: max_fsi (%.2f) must not be below base_fsi (%.2f)", zone, zr.MaxFSI, zr.BaseFSI),
				Field:       field("max_fsi"),
				ActualValue: zr.MaxFSI,
				Expected:    fmt.Sprintf(">= %.2f", zr.BaseFSI),
			})
		}
		if zr.MaxHeight <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("zone %s: max_height must be > 0", zone),
				Field:       field("max_height"),
				ActualValue: zr.MaxHeight,
				Expected:    "> 0",
			})
		}
		if zr.GroundCoverage <= 0 || zr.GroundCoverage > 100 {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("zone %s: ground_coverage must be a percentage in (0, 100]", zone),
				Field:       field("ground_coverage"),
				ActualValue: zr.GroundCoverage,
				Expected:    "0 < value <= 100",
			})
		}
		if zr.Setbacks.Rear < 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("zone %s: rear setback must be non-negative", zone),
				Field:       field("setbacks.rear"),
				ActualValue: zr.Setbacks.Rear,
				Expected:    ">= 0",
			})
		}

		verifyBands(premiumSpans(zr.FSIPremium), field("fsi_premium"), r)
		verifyBands(frontSpans(zr.Setbacks.Front), field("setbacks.front"), r)
		verifyBands(sideSpans(zr.Setbacks.Side), field("setbacks.side"), r)
	}
}

func premiumSpans(bs PremiumBands) []Band {
	spans := make([]Band, len(bs))
	for i, b := range bs {
		spans[i] = b.RoadWidth
	}
	return spans
}

func frontSpans(bs FrontSetbackBands) []Band {
	spans := make([]Band, len(bs))
	for i, b := range bs {
		spans[i] = b.RoadWidth
	}
	return spans
}

func sideSpans(bs SideSetbackBands) []Band {
	spans := make([]Band, len(bs))
	for i, b := range bs {
		spans[i] = b.Height
	}
	return spans
}

// verifyBands checks that a band list is well-formed: every interval
// ascending, and each band's max equal to the next band's min so the
// half-open intervals tile without gap or overlap.
func verifyBands(spans []Band, field string, r *validation.Report) {
	if len(spans) == 0 {
		r.AddError(validation.Result{
			Level:    validation.LevelReference,
			Message:  fmt.Sprintf("%s must contain at least one band", field),
			Field:    field,
			Expected: "at least 1 band",
		})
		return
	}

	for i, s := range spans {
		if s.Min >= s.Max {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("%s[%d]: min (%.2f) must be less than max (%.2f)", field, i, s.Min, s.Max),
				Field:       fmt.Sprintf("%s[%d]", field, i),
				ActualValue: fmt.Sprintf("%.2f-%.2f", s.Min, s.Max),
			})
		}
	}

	for i := 0; i < len(spans)-1; i++ {
		if spans[i].Max != spans[i+1].Min {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("band gap: %s[%d] ends at %.2f but %s[%d] starts at %.2f", field, i, spans[i].Max, field, i+1, spans[i+1].Min),
				Field:       fmt.Sprintf("%s[%d].min", field, i+1),
				ActualValue: spans[i+1].Min,
				Expected:    fmt.Sprintf("%.2f (matching the previous band's max)", spans[i].Max),
			})
		}
	}
}

func verifyParking(t *Table, r *validation.Report) {
	if t.Parking.ECSArea <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelReference,
			Message:     "parking.ecs_area must be > 0",
			Field:       "parking.ecs_area",
			ActualValue: t.Parking.ECSArea,
			Expected:    "> 0",
		})
	}

	for _, use := range site.AllUses {
		norm, ok := t.Parking.Norms[use]
		if !ok {
			r.AddError(validation.Result{
				Level:    validation.LevelReference,
				Message:  fmt.Sprintf("regulation configuration incomplete for use %s", use),
				Field:    fmt.Sprintf("parking.norms.%s", use),
				Expected: "one parking norm per intended use",
			})
			continue
		}
		if norm.BuiltupUnit <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("parking norm for %s: builtup_unit must be > 0", use),
				Field:       fmt.Sprintf("parking.norms.%s.builtup_unit", use),
				ActualValue: norm.BuiltupUnit,
				Expected:    "> 0",
			})
		}
		if norm.EcsPerBuiltup <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelReference,
				Message:     fmt.Sprintf("parking norm for %s: ecs_per_builtup must be > 0", use),
				Field:       fmt.Sprintf("parking.norms.%s.ecs_per_builtup", use),
				ActualValue: norm.EcsPerBuiltup,
				Expected:    "> 0",
			})
		}
	}
}

func verifyGlobals(t *Table, r *validation.Report) {
	if t.FireSafety.HeightThreshold <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelReference,
			Message:     "fire_safety.height_threshold must be > 0",
			Field:       "fire_safety.height_threshold",
			ActualValue: t.FireSafety.HeightThreshold,
			Expected:    "> 0",
		})
	}
	if len(t.FireSafety.Requirements) == 0 {
		r.AddError(validation.Result{
			Level:    validation.LevelReference,
			Message:  "fire_safety.requirements must not be empty",
			Field:    "fire_safety.requirements",
			Expected: "at least 1 requirement",
		})
	}
	if t.Accessibility.LiftThreshold <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelReference,
			Message:     "accessibility.lift_threshold must be > 0",
			Field:       "accessibility.lift_threshold",
			ActualValue: t.Accessibility.LiftThreshold,
			Expected:    "> 0",
		})
	}
	if len(t.Accessibility.Requirements) == 0 {
		r.AddError(validation.Result{
			Level:    validation.LevelReference,
			Message:  "accessibility.requirements must not be empty",
			Field:    "accessibility.requirements",
			Expected: "at least 1 requirement",
		})
	}
}

func verifyClauses(t *Table, r *validation.Report) {
	refs := map[string]string{
		"gdcr_clauses.fsi":             t.Clauses.FSI,
		"gdcr_clauses.height":          t.Clauses.Height,
		"gdcr_clauses.setbacks":        t.Clauses.Setbacks,
		"gdcr_clauses.ground_coverage": t.Clauses.GroundCoverage,
		"gdcr_clauses.parking":         t.Clauses.Parking,
		"gdcr_clauses.structural":      t.Clauses.Structural,
		"gdcr_clauses.fire_safety":     t.Clauses.FireSafety,
		"gdcr_clauses.accessibility":   t.Clauses.Accessibility,
	}
	for field, ref := range refs {
		if ref == "" {
			r.AddWarning(validation.Result{
				Level:    validation.LevelReference,
				Message:  fmt.Sprintf("%s has no clause citation; reports will show an empty reference", field),
				Field:    field,
				Expected: "a GDCR clause number",
			})
		}
	}
}
