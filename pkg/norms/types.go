package norms

import "github.com/Arch8541/limit/pkg/site"

// Category classifies a construction-element norm.
type Category string

const (
	CategoryRoomDimensions     Category = "Room Dimensions"
	CategoryStructuralElements Category = "Structural Elements"
	CategoryOpenings           Category = "Openings"
	CategoryServices           Category = "Services"
	CategoryFireSafety         Category = "Fire Safety"
	CategoryAccessibility      Category = "Accessibility"
	CategoryParking            Category = "Parking"
	CategoryCommonAreas        Category = "Common Areas"
)

// CategoryAll selects every category when narrowing a grouped set.
const CategoryAll Category = "all"

// AllCategories lists the eight norm categories.
var AllCategories = []Category{
	CategoryRoomDimensions,
	CategoryStructuralElements,
	CategoryOpenings,
	CategoryServices,
	CategoryFireSafety,
	CategoryAccessibility,
	CategoryParking,
	CategoryCommonAreas,
}

// Valid reports whether c is a recognised category.
func (c Category) Valid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Requirements is the open key/value map of a norm's requirement
// values: scalars or lists, depending on the element.
type Requirements map[string]any

// Norm is one granular construction-element norm from the GDCR 2017
// building norms catalog. Loaded once at startup, never mutated.
type Norm struct {
	RuleID       string                          `yaml:"rule_id" json:"rule_id"`
	Category     Category                        `yaml:"category" json:"category"`
	Element      string                          `yaml:"element" json:"element"`
	Requirements Requirements                    `yaml:"requirements" json:"requirements"`
	Unit         string                          `yaml:"unit" json:"unit"`
	ApplicableTo []site.IntendedUse              `yaml:"applicable_to" json:"applicable_to"`
	Source       string                          `yaml:"source" json:"source"`
	Notes        string                          `yaml:"notes,omitempty" json:"notes,omitempty"`
	ZoneSpecific map[site.Zone]Requirements      `yaml:"zone_specific,omitempty" json:"zone_specific,omitempty"`
}

// AppliesTo reports whether the norm applies to the given use category.
func (n *Norm) AppliesTo(use site.IntendedUse) bool {
	for _, u := range n.ApplicableTo {
		if u == use {
			return true
		}
	}
	return false
}

// Catalog is the full building-norms reference data set.
type Catalog struct {
	Version     string `yaml:"version" json:"version"`
	LastUpdated string `yaml:"last_updated" json:"lastUpdated"`
	Norms       []Norm `yaml:"norms" json:"norms"`
}
