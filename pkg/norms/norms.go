package norms

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Arch8541/limit/pkg/site"
)

//go:embed building-norms.yaml
var defaultCatalog []byte

// Load reads a norms catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading norms catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a norms catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing norms catalog YAML: %w", err)
	}
	return &c, nil
}

// Default returns the GDCR 2017 building norms catalog embedded in
// the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Grouped is a set of norms grouped by category. Categories keep
// their first-appearance order in the catalog, and norms keep catalog
// order within each category, so repeated runs over the same inputs
// produce identical output.
type Grouped struct {
	categories []Category
	byCategory map[Category][]Norm
}

// ForUse filters the catalog to norms applicable to the given use and
// groups them by category.
func ForUse(c *Catalog, use site.IntendedUse) *Grouped {
	g := &Grouped{byCategory: map[Category][]Norm{}}
	for _, n := range c.Norms {
		if !n.AppliesTo(use) {
			continue
		}
		if _, seen := g.byCategory[n.Category]; !seen {
			g.categories = append(g.categories, n.Category)
		}
		g.byCategory[n.Category] = append(g.byCategory[n.Category], n)
	}
	return g
}

// Categories returns the grouped categories in stable order.
func (g *Grouped) Categories() []Category {
	return g.categories
}

// Get returns the norms in one category, in catalog order.
func (g *Grouped) Get(c Category) []Norm {
	return g.byCategory[c]
}

// Total returns the number of norms across all categories.
func (g *Grouped) Total() int {
	total := 0
	for _, ns := range g.byCategory {
		total += len(ns)
	}
	return total
}

// Narrow restricts the grouped set by a free-text query and a single
// category. An empty query matches everything; CategoryAll (or the
// empty category) keeps every category. Search and category selection
// commute, and categories left with no matching norms are dropped.
func (g *Grouped) Narrow(query string, category Category) *Grouped {
	q := strings.ToLower(query)

	out := &Grouped{byCategory: map[Category][]Norm{}}
	for _, c := range g.categories {
		if category != CategoryAll && category != "" && c != category {
			continue
		}

		var matching []Norm
		for _, n := range g.byCategory[c] {
			if matchesQuery(&n, q) {
				matching = append(matching, n)
			}
		}
		if len(matching) > 0 {
			out.categories = append(out.categories, c)
			out.byCategory[c] = matching
		}
	}
	return out
}

// matchesQuery does a case-insensitive substring match against the
// norm's element, rule ID, source, and notes when present.
func matchesQuery(n *Norm, lowered string) bool {
	if lowered == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Element), lowered) ||
		strings.Contains(strings.ToLower(n.RuleID), lowered) ||
		strings.Contains(strings.ToLower(n.Source), lowered) ||
		(n.Notes != "" && strings.Contains(strings.ToLower(n.Notes), lowered))
}
