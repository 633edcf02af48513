package bulk

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Arch8541/limit/pkg/regulation"
	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
	"github.com/Arch8541/limit/pkg/validation"
)

// Status is the processing state of one batch item.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Item is the outcome for one CSV row: a project with its calculation
// result, or a recorded error. One item failing never aborts the batch.
type Item struct {
	RowNumber int                 `json:"rowNumber"`
	ProjectID string              `json:"projectId"`
	Site      site.Description    `json:"siteData"`
	Result    *regulation.Result  `json:"regulationResult,omitempty"`
	Clauses   []regulation.Clause `json:"gdcrClauses,omitempty"`
	Status    Status              `json:"status"`
	Error     string              `json:"error,omitempty"`
}

// Run calculates regulations for every row. Each row becomes an
// independent project: it is validated, calculated, and recorded as
// completed or errored on its own. Calculator calls share no state,
// so rows are fanned out across the given number of workers; results
// come back in row order regardless of scheduling.
func Run(rows []Row, table *rules.Table, workers int) []Item {
	items := make([]Item, len(rows))
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, row := range rows {
		wg.Add(1)
		go func(i int, row Row) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			items[i] = runOne(row, table)
		}(i, row)
	}
	wg.Wait()

	return items
}

func runOne(row Row, table *rules.Table) Item {
	item := Item{
		RowNumber: row.RowNumber,
		ProjectID: uuid.NewString(),
		Site:      RowToSite(row),
		Status:    StatusPending,
	}

	if report := validation.ValidateSite(&item.Site); !report.Valid {
		item.Status = StatusError
		item.Error = report.Errors[0].Message
		return item
	}

	result, clauses, err := regulation.Calculate(&item.Site, table)
	if err != nil {
		item.Status = StatusError
		item.Error = err.Error()
		return item
	}

	item.Result = result
	item.Clauses = clauses
	item.Status = StatusCompleted
	return item
}
