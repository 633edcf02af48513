package regulation

import (
	"fmt"
	"math"
	"strings"

	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
)

// calculateParking derives the ECS requirement from the FSI built-up
// area cap. The reported count is rounded up; the reported area uses
// the unrounded count. That asymmetry is part of the audited report
// contract and must not be normalized.
func calculateParking(d *site.Description, pr rules.ParkingRules, maxBuiltUpArea float64) (ParkingResult, error) {
	norm, ok := pr.Norms[d.IntendedUse]
	if !ok {
		return ParkingResult{}, fmt.Errorf("regulation configuration incomplete for use %s", d.IntendedUse)
	}

	requiredECS := (maxBuiltUpArea / norm.BuiltupUnit) * norm.EcsPerBuiltup
	areaRequired := requiredECS * pr.ECSArea

	var b strings.Builder
	fmt.Fprintf(&b, "Use Type: %s\n", d.IntendedUse)
	fmt.Fprintf(&b, "Parking Norm: %s\n\n", norm.Description)
	fmt.Fprintf(&b, "Required ECS = (Built-up Area / %g) × %g\n", norm.BuiltupUnit, norm.EcsPerBuiltup)
	fmt.Fprintf(&b, "= (%.2f sq.m / %g) × %g\n", maxBuiltUpArea, norm.BuiltupUnit, norm.EcsPerBuiltup)
	fmt.Fprintf(&b, "= %.2f ECS\n\n", requiredECS)
	fmt.Fprintf(&b, "Parking Area Required = ECS × %g sq.m\n", pr.ECSArea)
	fmt.Fprintf(&b, "= %.2f × %g sq.m\n", requiredECS, pr.ECSArea)
	fmt.Fprintf(&b, "= %.2f sq.m", areaRequired)

	return ParkingResult{
		Required:     int(math.Ceil(requiredECS)),
		AreaRequired: areaRequired,
		Calculation:  b.String(),
	}, nil
}
