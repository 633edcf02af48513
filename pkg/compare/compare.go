// Package compare provides read-side reducers over a batch of
// regulation results: sorting, extremes, and a parameter/values table
// for side-by-side display. Pure projections; nothing here feeds back
// into the calculation.
package compare

import (
	"fmt"
	"sort"

	"github.com/Arch8541/limit/pkg/bulk"
)

// Key selects the metric a comparison sorts by.
type Key string

const (
	KeyFSI      Key = "fsi"
	KeyHeight   Key = "height"
	KeyCoverage Key = "coverage"
	KeyParking  Key = "parking"
	KeyArea     Key = "area"
)

// Order is the sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// value extracts the sortable metric from an item. Items without a
// result sort as zero rather than being dropped.
func value(item *bulk.Item, key Key) float64 {
	if key == KeyArea {
		return item.Site.PlotDimensions.Area
	}
	r := item.Result
	if r == nil {
		return 0
	}
	switch key {
	case KeyFSI:
		return r.FSI.Total
	case KeyHeight:
		return r.Height.Max
	case KeyCoverage:
		return r.GroundCoverage.MaxPercentage
	case KeyParking:
		return float64(r.Parking.Required)
	}
	return 0
}

// Sort returns the items ordered by the given key and direction. The
// sort is stable, so equal values keep batch order, and the input
// slice is left untouched.
func Sort(items []bulk.Item, key Key, order Order) []bulk.Item {
	sorted := append([]bulk.Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := value(&sorted[i], key), value(&sorted[j], key)
		if order == Ascending {
			return a < b
		}
		return a > b
	})
	return sorted
}

// Extremes holds the best and worst values per highlighted metric.
type Extremes struct {
	MaxFSI    float64 `json:"maxFSI"`
	MinFSI    float64 `json:"minFSI"`
	MaxHeight float64 `json:"maxHeight"`
	MinHeight float64 `json:"minHeight"`
}

// FindExtremes scans the batch for the FSI and height extremes used
// to highlight the comparison table.
func FindExtremes(items []bulk.Item) Extremes {
	var e Extremes
	for i := range items {
		fsi := value(&items[i], KeyFSI)
		height := value(&items[i], KeyHeight)
		if i == 0 {
			e = Extremes{MaxFSI: fsi, MinFSI: fsi, MaxHeight: height, MinHeight: height}
			continue
		}
		if fsi > e.MaxFSI {
			e.MaxFSI = fsi
		}
		if fsi < e.MinFSI {
			e.MinFSI = fsi
		}
		if height > e.MaxHeight {
			e.MaxHeight = height
		}
		if height < e.MinHeight {
			e.MinHeight = height
		}
	}
	return e
}

// TableRow is one comparison parameter with one value per project.
type TableRow struct {
	Parameter string   `json:"parameter"`
	Values    []string `json:"values"`
}

// Table builds the side-by-side comparison rows, one column per item
// in the given order. Items without a result show "N/A".
func Table(items []bulk.Item) []TableRow {
	rows := []TableRow{
		{Parameter: "Project"},
		{Parameter: "Zone"},
		{Parameter: "Plot Area (sq.m)"},
		{Parameter: "Total FSI"},
		{Parameter: "Max Built-up Area (sq.m)"},
		{Parameter: "Max Height (m)"},
		{Parameter: "Ground Coverage (%)"},
		{Parameter: "Parking (ECS)"},
		{Parameter: "Setbacks F/S/R (m)"},
	}

	for i := range items {
		item := &items[i]
		rows[0].Values = append(rows[0].Values, item.Site.ProjectName)
		rows[1].Values = append(rows[1].Values, string(item.Site.Zone))
		rows[2].Values = append(rows[2].Values, fmt.Sprintf("%.2f", item.Site.PlotDimensions.Area))

		r := item.Result
		if r == nil {
			for j := 3; j < len(rows); j++ {
				rows[j].Values = append(rows[j].Values, "N/A")
			}
			continue
		}
		rows[3].Values = append(rows[3].Values, fmt.Sprintf("%.2f", r.FSI.Total))
		rows[4].Values = append(rows[4].Values, fmt.Sprintf("%.2f", r.FSI.MaxBuiltUpArea))
		rows[5].Values = append(rows[5].Values, fmt.Sprintf("%.2f", r.Height.Max))
		rows[6].Values = append(rows[6].Values, fmt.Sprintf("%g", r.GroundCoverage.MaxPercentage))
		rows[7].Values = append(rows[7].Values, fmt.Sprintf("%d", r.Parking.Required))
		rows[8].Values = append(rows[8].Values, fmt.Sprintf("%g / %g / %g", r.Setbacks.Front, r.Setbacks.Side, r.Setbacks.Rear))
	}

	return rows
}
