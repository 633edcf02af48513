package main

import (
	"fmt"
	"strings"

	"github.com/Arch8541/limit/pkg/bulk"
	"github.com/Arch8541/limit/pkg/compare"
	"github.com/Arch8541/limit/pkg/norms"
	"github.com/Arch8541/limit/pkg/regulation"
	"github.com/Arch8541/limit/pkg/site"
	"github.com/Arch8541/limit/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Field != "" {
				fmt.Printf("    -> %s = %v\n", w.Field, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printRegulationReport(d *site.Description, r *regulation.Result) {
	fmt.Printf("Regulation Report: %s\n", d.ProjectName)
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Zone: %s | Use: %s | Plot: %.2f sq.m | Road: %gm\n",
		d.Zone, d.IntendedUse, d.PlotDimensions.Area, d.RoadWidthPrimary)
	if d.IsCornerPlot {
		fmt.Println("Corner plot")
	}

	section("FSI", r.FSI.Calculation)
	section("Height", r.Height.Calculation)
	section("Setbacks", r.Setbacks.Calculations)
	section("Ground Coverage", r.GroundCoverage.Calculation)
	section("Parking", r.Parking.Calculation)

	fmt.Println()
	fmt.Println("Structural")
	fmt.Println("----------")
	fmt.Printf("  Plinth height (max):  %gm\n", r.Structural.PlinthHeight)
	fmt.Printf("  Floor height:         %gm\n", r.Structural.FloorHeight)
	fmt.Printf("  Parapet (min):        %gm\n", r.Structural.Parapet)

	fmt.Println()
	fmt.Printf("Fire Safety (required: %v)\n", r.FireSafety.Required)
	fmt.Println("-----------")
	for _, req := range r.FireSafety.Requirements {
		fmt.Printf("  - %s\n", req)
	}

	fmt.Println()
	fmt.Printf("Accessibility (ramp: %v, lift: %v)\n", r.Accessibility.RampRequired, r.Accessibility.LiftRequired)
	fmt.Println("-------------")
	for _, req := range r.Accessibility.Requirements {
		fmt.Printf("  - %s\n", req)
	}
}

func section(title, body string) {
	fmt.Println()
	fmt.Println(title)
	fmt.Println(strings.Repeat("-", len(title)))
	for _, line := range strings.Split(body, "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func printClauses(clauses []regulation.Clause) {
	fmt.Println()
	fmt.Println("GDCR 2017 Clause References")
	fmt.Println("---------------------------")
	for _, c := range clauses {
		fmt.Printf("  Clause %-6s %-16s %s\n", c.ClauseNumber, c.Category, c.Description)
	}
}

func printNorms(d *site.Description, g *norms.Grouped) {
	fmt.Printf("Applicable Building Norms: %s / %s (%d norms)\n", d.Zone, d.IntendedUse, g.Total())

	for _, category := range g.Categories() {
		ns := g.Get(category)
		fmt.Println()
		fmt.Printf("%s (%d)\n", category, len(ns))
		fmt.Println(strings.Repeat("-", len(string(category))))
		for _, n := range ns {
			fmt.Printf("  %s: %s [%s]\n", n.RuleID, n.Element, n.Unit)
			for key, value := range n.Requirements {
				fmt.Printf("    %s: %v\n", strings.ReplaceAll(key, "_", " "), value)
			}
			fmt.Printf("    source: %s\n", n.Source)
			if n.Notes != "" {
				fmt.Printf("    note: %s\n", n.Notes)
			}
		}
	}

	if g.Total() == 0 {
		fmt.Println()
		fmt.Println("No norms found matching the search criteria.")
	}
}

func printBatchSummary(items []bulk.Item) {
	completed, failed := 0, 0
	for _, item := range items {
		if item.Status == bulk.StatusCompleted {
			completed++
		} else {
			failed++
		}
	}

	fmt.Printf("Batch: %d rows, %d completed, %d failed\n", len(items), completed, failed)
	for _, item := range items {
		switch item.Status {
		case bulk.StatusCompleted:
			fmt.Printf("  row %d  %-24s FSI %.2f  height %.2fm  parking %d ECS\n",
				item.RowNumber, item.Site.ProjectName,
				item.Result.FSI.Total, item.Result.Height.Max, item.Result.Parking.Required)
		default:
			fmt.Printf("  row %d  %-24s ERROR: %s\n", item.RowNumber, item.Site.ProjectName, item.Error)
		}
	}

	if completed > 1 {
		fmt.Println()
		printComparison(compare.Sort(items, compare.KeyFSI, compare.Descending))
	}
}

func printComparison(items []bulk.Item) {
	fmt.Println("Comparison (by FSI, descending)")
	fmt.Println("-------------------------------")
	for _, row := range compare.Table(items) {
		fmt.Printf("  %-26s %s\n", row.Parameter+":", strings.Join(row.Values, " | "))
	}
}
