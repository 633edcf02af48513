package bulk

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/Arch8541/limit/pkg/site"
	"github.com/Arch8541/limit/pkg/validation"
)

// Row is one parsed line of the bulk-import CSV format. The format
// carries only the fields that drive the calculation; everything else
// in a site description is filled with fixed placeholders.
type Row struct {
	RowNumber    int       `json:"rowNumber"`
	ProjectName  string    `json:"projectName"`
	PlotArea     float64   `json:"plotArea"`
	PlotWidth    float64   `json:"plotWidth"`
	PlotDepth    float64   `json:"plotDepth"`
	RoadWidth    float64   `json:"roadWidth"`
	Zone         site.Zone `json:"zone"`
	IsCornerPlot bool      `json:"isCornerPlot"`
	PremiumFSI   bool      `json:"premiumFSI"`
	TDRFSI       float64   `json:"tdrFSI"`
}

// importColumns are the recognised header tokens, matched lowercased
// and order-independent.
var importColumns = []string{
	"project_name",
	"plot_area",
	"plot_width",
	"plot_depth",
	"road_width",
	"zone",
	"corner_plot",
	"premium_fsi",
	"tdr_fsi",
}

// ParseRows parses the bulk-import CSV text. Rows whose column count
// disagrees with the header are skipped with a warning in the report;
// they never fail the batch. Missing numeric fields default to 0 and
// a missing project name becomes "Project {rowNumber}".
func ParseRows(csvText string) ([]Row, *validation.Report, error) {
	report := validation.NewReport()

	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(csvText)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("CSV file is empty or has no data rows")
	}

	header := records[0]
	index := map[string]int{}
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(values []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(values) {
			return ""
		}
		return strings.TrimSpace(values[i])
	}

	var rows []Row
	for i, values := range records[1:] {
		rowNumber := i + 1

		if len(values) != len(header) {
			report.AddWarning(validation.Result{
				Level:       validation.LevelBatch,
				Message:     fmt.Sprintf("skipping row %d: column count mismatch", rowNumber+1),
				Field:       fmt.Sprintf("row[%d]", rowNumber),
				ActualValue: len(values),
				Expected:    fmt.Sprintf("%d columns", len(header)),
			})
			continue
		}

		name := field(values, "project_name")
		if name == "" {
			name = fmt.Sprintf("Project %d", rowNumber)
		}

		zone := site.Zone(field(values, "zone"))
		if zone == "" {
			zone = site.ZoneR1
		}

		rows = append(rows, Row{
			RowNumber:    rowNumber,
			ProjectName:  name,
			PlotArea:     parseNumber(field(values, "plot_area")),
			PlotWidth:    parseNumber(field(values, "plot_width")),
			PlotDepth:    parseNumber(field(values, "plot_depth")),
			RoadWidth:    parseNumber(field(values, "road_width")),
			Zone:         zone,
			IsCornerPlot: strings.EqualFold(field(values, "corner_plot"), "yes"),
			PremiumFSI:   strings.EqualFold(field(values, "premium_fsi"), "yes"),
			TDRFSI:       parseNumber(field(values, "tdr_fsi")),
		})
	}

	return rows, report, nil
}

// parseNumber returns 0 for missing or unparseable values; a bad
// number in one cell must not sink the row.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// RowToSite maps a CSV row onto a full site description. The CSV
// format does not carry address, coordinates, authority, intended use
// or special conditions, so those get fixed placeholder values. Known
// format limitation, not a defect.
func RowToSite(row Row) site.Description {
	return site.Description{
		ProjectName: row.ProjectName,
		Address:     "Imported from CSV",
		Location:    site.Location{Lat: 23.0225, Lng: 72.5714},
		Authority:   site.AuthorityAUDA,
		Zone:        row.Zone,
		PlotDimensions: site.PlotDimensions{
			Length: row.PlotDepth,
			Width:  row.PlotWidth,
			Area:   row.PlotArea,
		},
		IsCornerPlot:     row.IsCornerPlot,
		RoadWidthPrimary: row.RoadWidth,
		IntendedUse:      site.UseResidentialSingle,
	}
}

// Template returns a sample import CSV with the recognised header.
func Template() string {
	sampleRows := []string{
		"Sample Project 1,500,20,25,12,R1,no,yes,0",
		"Sample Project 2,800,25,32,18,R2,yes,yes,0.5",
		"Commercial Complex,1200,30,40,24,Commercial,yes,yes,0",
	}
	return strings.Join(append([]string{strings.Join(importColumns, ",")}, sampleRows...), "\n")
}

// exportColumns is the fixed export column order.
var exportColumns = []string{
	"Project Name",
	"Plot Area (sq.m)",
	"Zone",
	"Base FSI",
	"Max Height (m)",
	"Ground Coverage (%)",
	"Parking (ECS)",
	"Front Setback (m)",
	"Side Setback (m)",
	"Rear Setback (m)",
}

// ResultsToCSV serializes a batch back to tabular form, one line per
// item in the fixed column order. Items without a result export zeros.
func ResultsToCSV(items []Item) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	w.Write(exportColumns)
	for _, item := range items {
		record := []string{
			item.Site.ProjectName,
			formatNumber(item.Site.PlotDimensions.Area),
			string(item.Site.Zone),
			"0", "0", "0", "0", "0", "0", "0",
		}
		if item.Site.ProjectName == "" {
			record[0] = "N/A"
		}
		if item.Site.Zone == "" {
			record[2] = "N/A"
		}
		if r := item.Result; r != nil {
			record[3] = formatNumber(r.FSI.Base)
			record[4] = formatNumber(r.Height.Max)
			record[5] = formatNumber(r.GroundCoverage.MaxPercentage)
			record[6] = strconv.Itoa(r.Parking.Required)
			record[7] = formatNumber(r.Setbacks.Front)
			record[8] = formatNumber(r.Setbacks.Side)
			record[9] = formatNumber(r.Setbacks.Rear)
		}
		w.Write(record)
	}
	w.Flush()

	return strings.TrimRight(b.String(), "\n")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
