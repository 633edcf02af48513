package norms

import (
	"reflect"
	"testing"

	"github.com/Arch8541/limit/pkg/site"
)

func testCatalog() *Catalog {
	return &Catalog{
		Version: "test",
		Norms: []Norm{
			{
				RuleID:       "RD-001",
				Category:     CategoryRoomDimensions,
				Element:      "Habitable Room",
				Requirements: Requirements{"min_area": 9.5},
				Unit:         "sq.m",
				ApplicableTo: []site.IntendedUse{site.UseResidentialSingle, site.UseResidentialMulti},
				Source:       "GDCR 2017, Clause 14.2",
			},
			{
				RuleID:       "RD-002",
				Category:     CategoryRoomDimensions,
				Element:      "Kitchen",
				Requirements: Requirements{"min_area": 5.0},
				Unit:         "sq.m",
				ApplicableTo: []site.IntendedUse{site.UseResidentialSingle},
				Source:       "GDCR 2017, Clause 14.3",
			},
			{
				RuleID:       "FS-001",
				Category:     CategoryFireSafety,
				Element:      "Fire Escape Staircase",
				Requirements: Requirements{"min_width": 1.2},
				Unit:         "m",
				ApplicableTo: []site.IntendedUse{site.UseResidentialMulti, site.UseCommercialOffice},
				Source:       "GDCR 2017, Clause 12.4",
				Notes:        "Wider staircase in commercial zones.",
			},
			{
				RuleID:       "PK-001",
				Category:     CategoryParking,
				Element:      "Equivalent Car Space",
				Requirements: Requirements{"ecs_area": 25},
				Unit:         "sq.m",
				ApplicableTo: []site.IntendedUse{site.UseResidentialSingle, site.UseCommercialOffice},
				Source:       "GDCR 2017, Clause 10.2",
			},
		},
	}
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("loading embedded catalog: %v", err)
	}
	if len(c.Norms) == 0 {
		t.Fatal("embedded catalog is empty")
	}

	seen := map[string]bool{}
	for _, n := range c.Norms {
		if !n.Category.Valid() {
			t.Errorf("norm %s has unknown category %q", n.RuleID, n.Category)
		}
		if seen[n.RuleID] {
			t.Errorf("duplicate rule_id %s", n.RuleID)
		}
		seen[n.RuleID] = true
		if len(n.ApplicableTo) == 0 {
			t.Errorf("norm %s applies to no use category", n.RuleID)
		}
		for _, u := range n.ApplicableTo {
			if !u.Valid() {
				t.Errorf("norm %s applies to unknown use %q", n.RuleID, u)
			}
		}
	}
}

func TestForUseFiltersAndGroups(t *testing.T) {
	g := ForUse(testCatalog(), site.UseResidentialSingle)

	if g.Total() != 3 {
		t.Fatalf("total = %d, want 3", g.Total())
	}
	wantCategories := []Category{CategoryRoomDimensions, CategoryParking}
	if !reflect.DeepEqual(g.Categories(), wantCategories) {
		t.Errorf("categories = %v, want %v", g.Categories(), wantCategories)
	}

	// Catalog order preserved within the category.
	rd := g.Get(CategoryRoomDimensions)
	if len(rd) != 2 || rd[0].RuleID != "RD-001" || rd[1].RuleID != "RD-002" {
		t.Errorf("room dimensions order wrong: %v", rd)
	}
}

func TestNarrowAllEmptyIsIdentity(t *testing.T) {
	g := ForUse(testCatalog(), site.UseResidentialSingle)
	narrowed := g.Narrow("", CategoryAll)

	if narrowed.Total() != g.Total() {
		t.Errorf("empty narrow dropped norms: %d vs %d", narrowed.Total(), g.Total())
	}
	if !reflect.DeepEqual(narrowed.Categories(), g.Categories()) {
		t.Errorf("empty narrow changed category order")
	}
}

func TestNarrowByCategory(t *testing.T) {
	g := ForUse(testCatalog(), site.UseResidentialSingle)
	narrowed := g.Narrow("", CategoryParking)

	if narrowed.Total() != 1 {
		t.Fatalf("total = %d, want 1", narrowed.Total())
	}
	if len(narrowed.Get(CategoryRoomDimensions)) != 0 {
		t.Error("other categories should be dropped")
	}
}

func TestNarrowSearchCaseInsensitive(t *testing.T) {
	g := ForUse(testCatalog(), site.UseResidentialSingle)

	for _, query := range []string{"kitchen", "KITCHEN", "Kitch"} {
		narrowed := g.Narrow(query, CategoryAll)
		if narrowed.Total() != 1 {
			t.Errorf("query %q: total = %d, want 1", query, narrowed.Total())
			continue
		}
		if narrowed.Get(CategoryRoomDimensions)[0].RuleID != "RD-002" {
			t.Errorf("query %q matched the wrong norm", query)
		}
	}
}

func TestNarrowSearchesNotesAndSource(t *testing.T) {
	g := ForUse(testCatalog(), site.UseResidentialMulti)

	if n := g.Narrow("clause 12.4", CategoryAll); n.Total() != 1 {
		t.Errorf("source search: total = %d, want 1", n.Total())
	}
	if n := g.Narrow("wider staircase", CategoryAll); n.Total() != 1 {
		t.Errorf("notes search: total = %d, want 1", n.Total())
	}
	if n := g.Narrow("rd-001", CategoryAll); n.Total() != 1 {
		t.Errorf("rule_id search: total = %d, want 1", n.Total())
	}
}

func TestNarrowStagesCommute(t *testing.T) {
	g := ForUse(testCatalog(), site.UseResidentialSingle)

	a := g.Narrow("room", CategoryAll).Narrow("", CategoryRoomDimensions)
	b := g.Narrow("", CategoryRoomDimensions).Narrow("room", CategoryAll)

	if a.Total() != b.Total() {
		t.Fatalf("search and category selection do not commute: %d vs %d", a.Total(), b.Total())
	}
	if !reflect.DeepEqual(a.Get(CategoryRoomDimensions), b.Get(CategoryRoomDimensions)) {
		t.Error("narrowed results differ between orders")
	}
}

func TestNarrowDropsEmptyCategories(t *testing.T) {
	g := ForUse(testCatalog(), site.UseResidentialSingle)
	narrowed := g.Narrow("habitable", CategoryAll)

	if len(narrowed.Categories()) != 1 {
		t.Errorf("categories = %v, want only Room Dimensions", narrowed.Categories())
	}
}

func TestNarrowDeterministic(t *testing.T) {
	g := ForUse(testCatalog(), site.UseResidentialSingle)

	a := g.Narrow("", CategoryAll)
	b := g.Narrow("", CategoryAll)
	if !reflect.DeepEqual(a.Categories(), b.Categories()) {
		t.Error("repeated runs must yield identical category order")
	}
	for _, c := range a.Categories() {
		if !reflect.DeepEqual(a.Get(c), b.Get(c)) {
			t.Errorf("category %s order differs across runs", c)
		}
	}
}
