package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Arch8541/limit/pkg/bulk"
	"github.com/Arch8541/limit/pkg/norms"
	"github.com/Arch8541/limit/pkg/regulation"
	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
	"github.com/Arch8541/limit/pkg/validation"
)

var errMissingCSV = errors.New("a CSV file argument is required (or use --template)")

// loadRules loads and verifies the rule table, failing fast when the
// configuration is incomplete rather than at calculation time.
func loadRules(rulesPath string) (*rules.Table, error) {
	var (
		table *rules.Table
		err   error
	)
	if rulesPath == "" {
		table, err = rules.Default()
	} else {
		table, err = rules.Load(rulesPath)
	}
	if err != nil {
		return nil, err
	}

	report := rules.Verify(table)
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("rule table failed verification; fix the reference data before calculating")
	}
	return table, nil
}

// loadAndValidate loads the site description and runs schema validation.
func loadAndValidate(projectPath string) (*site.Description, *validation.Report, error) {
	d, err := site.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading site: %w", err)
	}
	return d, validation.ValidateSite(d), nil
}

func runCalculate(projectPath, rulesPath string) error {
	table, err := loadRules(rulesPath)
	if err != nil {
		return err
	}

	d, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("site has validation errors")
	}

	result, clauses, err := regulation.Calculate(d, table)
	if err != nil {
		return err
	}

	printRegulationReport(d, result)
	printClauses(clauses)

	if len(report.Warnings) > 0 || len(report.Info) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runValidate(projectPath, rulesPath string) error {
	table, err := loadRules(rulesPath)
	if err != nil {
		return err
	}
	fmt.Printf("Rule table %s: OK (%d zones)\n\n", table.Version, len(table.Zones))

	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runNorms(projectPath, category, search string) error {
	d, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("site has validation errors")
	}

	catalog, err := norms.Default()
	if err != nil {
		return err
	}

	grouped := norms.ForUse(catalog, d.IntendedUse).Narrow(search, norms.Category(category))
	printNorms(d, grouped)
	return nil
}

func runBulk(csvPath, rulesPath, outPath string, workers int) error {
	table, err := loadRules(rulesPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("reading CSV file: %w", err)
	}

	rows, parseReport, err := bulk.ParseRows(string(data))
	if err != nil {
		return err
	}
	if len(parseReport.Warnings) > 0 {
		printValidationReport(parseReport)
	}

	items := bulk.Run(rows, table, workers)
	printBatchSummary(items)

	out := bulk.ResultsToCSV(items)
	if outPath == "" {
		fmt.Println()
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing results CSV: %w", err)
	}
	fmt.Printf("\nResults written to %s\n", outPath)
	return nil
}

func runBulkTemplate() error {
	fmt.Println(bulk.Template())
	return nil
}
