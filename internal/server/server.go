// Package server hosts the local regulation API: calculation, bulk
// processing, and reference-data endpoints over plain net/http.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/Arch8541/limit/pkg/bulk"
	"github.com/Arch8541/limit/pkg/norms"
	"github.com/Arch8541/limit/pkg/regulation"
	"github.com/Arch8541/limit/pkg/rules"
	"github.com/Arch8541/limit/pkg/site"
	"github.com/Arch8541/limit/pkg/validation"
)

// bulkWorkers bounds the calculator fan-out for one bulk request.
const bulkWorkers = 4

// Server is the local regulation API server. The rule table is
// immutable per request; a file watcher swaps in a freshly verified
// table when the backing file changes.
type Server struct {
	rulesPath string
	port      int

	mu      sync.RWMutex
	table   *rules.Table
	report  *validation.Report
	catalog *norms.Catalog
}

// New creates a server. An empty rulesPath serves the embedded GDCR
// 2017 table and disables hot reload.
func New(rulesPath string, port int) *Server {
	return &Server{
		rulesPath: rulesPath,
		port:      port,
	}
}

// Start loads and verifies the reference data, then launches the HTTP
// server. A rule table that fails verification refuses to start.
func (s *Server) Start() error {
	table, report, err := s.loadTable()
	if err != nil {
		return err
	}
	if !report.Valid {
		return fmt.Errorf("rule table failed verification: %s", report.Summary)
	}

	catalog, err := norms.Default()
	if err != nil {
		return fmt.Errorf("loading norms catalog: %w", err)
	}

	s.mu.Lock()
	s.table = table
	s.report = report
	s.catalog = catalog
	s.mu.Unlock()

	if s.rulesPath != "" {
		stop, err := s.watchRules()
		if err != nil {
			return err
		}
		defer stop()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	mux.HandleFunc("POST /api/bulk", s.handleBulk)
	mux.HandleFunc("GET /api/norms", s.handleNorms)
	mux.HandleFunc("GET /api/rules", s.handleRules)
	mux.HandleFunc("GET /api/clauses", s.handleClauses)
	mux.HandleFunc("GET /api/validation", s.handleValidation)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("GDCR regulation server starting on http://localhost%s", addr)
	if s.rulesPath != "" {
		log.Printf("Rule table: %s (hot reload enabled)", s.rulesPath)
	} else {
		log.Printf("Rule table: embedded %s", s.currentTable().Version)
	}

	return http.ListenAndServe(addr, mux)
}

func (s *Server) loadTable() (*rules.Table, *validation.Report, error) {
	var (
		table *rules.Table
		err   error
	)
	if s.rulesPath == "" {
		table, err = rules.Default()
	} else {
		table, err = rules.Load(s.rulesPath)
	}
	if err != nil {
		return nil, nil, err
	}
	return table, rules.Verify(table), nil
}

func (s *Server) currentTable() *rules.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var d site.Description
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		httpError(w, http.StatusBadRequest, fmt.Sprintf("decoding site description: %v", err))
		return
	}

	if report := validation.ValidateSite(&d); !report.Valid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(report)
		return
	}

	result, clauses, err := regulation.Calculate(&d, s.currentTable())
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, map[string]any{
		"result":  result,
		"clauses": clauses,
	})
}

func (s *Server) handleBulk(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpError(w, http.StatusBadRequest, fmt.Sprintf("reading request body: %v", err))
		return
	}

	rows, report, err := bulk.ParseRows(string(body))
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := bulk.Run(rows, s.currentTable(), bulkWorkers)
	writeJSON(w, map[string]any{
		"items":      items,
		"parsing":    report,
		"comparison": compareSummary(items),
	})
}

func compareSummary(items []bulk.Item) map[string]any {
	completed := 0
	for _, item := range items {
		if item.Status == bulk.StatusCompleted {
			completed++
		}
	}
	return map[string]any{
		"total":     len(items),
		"completed": completed,
		"failed":    len(items) - completed,
	}
}

func (s *Server) handleNorms(w http.ResponseWriter, r *http.Request) {
	use := site.IntendedUse(r.URL.Query().Get("use"))
	if use == "" {
		use = site.UseResidentialSingle
	}
	if !use.Valid() {
		httpError(w, http.StatusBadRequest, fmt.Sprintf("unknown intended use %q", use))
		return
	}

	category := norms.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = norms.CategoryAll
	}
	query := r.URL.Query().Get("q")

	s.mu.RLock()
	catalog := s.catalog
	s.mu.RUnlock()

	grouped := norms.ForUse(catalog, use).Narrow(query, category)

	type categoryGroup struct {
		Category norms.Category `json:"category"`
		Norms    []norms.Norm   `json:"norms"`
	}
	groups := []categoryGroup{}
	for _, c := range grouped.Categories() {
		groups = append(groups, categoryGroup{Category: c, Norms: grouped.Get(c)})
	}

	writeJSON(w, map[string]any{
		"use":        use,
		"total":      grouped.Total(),
		"categories": groups,
	})
}

func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.currentTable())
}

func (s *Server) handleClauses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, regulation.Clauses(s.currentTable()))
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()
	writeJSON(w, report)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
