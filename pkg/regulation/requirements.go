package regulation

import (
	"strings"

	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
)

// structuralRequirements is a direct field lookup; only the floor
// height branches, on whether the use category is commercial.
func structuralRequirements(d *site.Description, st rules.Structural) StructuralResult {
	floorHeight := st.FloorHeight.Residential
	if strings.HasPrefix(string(d.IntendedUse), "Commercial") {
		floorHeight = st.FloorHeight.Commercial
	}

	return StructuralResult{
		PlinthHeight: st.PlinthHeight.Max,
		FloorHeight:  floorHeight,
		Parapet:      st.Parapet.Min,
	}
}

// fireSafetyRequirements gates the full requirements list on the
// building height. Below the threshold a single generic
// recommendation replaces the list.
func fireSafetyRequirements(buildingHeight float64, fs rules.FireSafety) FireSafetyResult {
	required := buildingHeight > fs.HeightThreshold

	requirements := []string{"Fire extinguisher on ground floor (recommended)"}
	if required {
		requirements = append([]string(nil), fs.Requirements...)
	}

	return FireSafetyResult{
		Required:     required,
		Requirements: requirements,
	}
}

// accessibilityRequirements copies the requirements list, softening
// the lift entry to a recommendation when the building is below the
// lift threshold. The ramp flag is unconditional. If no entry
// mentions a lift requirement the list is left untouched.
func accessibilityRequirements(buildingHeight float64, ac rules.Accessibility) AccessibilityResult {
	liftRequired := buildingHeight > ac.LiftThreshold

	requirements := append([]string(nil), ac.Requirements...)
	if !liftRequired {
		for i, req := range requirements {
			if strings.Contains(req, "Lift required") {
				requirements[i] = "Lift recommended for heights above 15m"
				break
			}
		}
	}

	return AccessibilityResult{
		RampRequired: ac.RampRequired,
		LiftRequired: liftRequired,
		Requirements: requirements,
	}
}
