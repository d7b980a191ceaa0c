// Package analyze exposes the standardization and analysis pipeline
// over HTTP.
package analyze

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"balance_insight/pkg/core/agent"
	"balance_insight/pkg/core/calc"
	"balance_insight/pkg/core/ingest"
	"balance_insight/pkg/core/standardize"
	"balance_insight/pkg/core/store"
	"balance_insight/pkg/core/summary"
	"balance_insight/pkg/core/validate"
	"balance_insight/pkg/models"
)

// Request carries one balance sheet in exactly one representation.
type Request struct {
	CSV       string           `json:"csv,omitempty"`
	HTML      string           `json:"html,omitempty"`
	Table     *models.RawTable `json:"table,omitempty"`
	Narrative bool             `json:"narrative"` // generate LLM narrative
	Assist    bool             `json:"assist"`    // LLM fallback for unclassified accounts
}

// Response is the full analysis result. Unprojected is set only when
// the input could not be standardized; it carries the best-effort table
// with amounts cleaned.
type Response struct {
	ReportID    string                 `json:"report_id,omitempty"`
	Format      models.FormatInfo      `json:"format"`
	Table       *models.CanonicalTable `json:"table"`
	Unprojected *models.RawTable       `json:"unprojected_table,omitempty"`
	Validation  validate.Report        `json:"validation"`
	Analysis    *calc.Analysis         `json:"analysis"`
	Narrative   string                 `json:"narrative,omitempty"`
}

// Handler holds dependencies for the analyze endpoint.
type Handler struct {
	AgentMgr *agent.Manager
	Repo     *store.ReportRepo // nil disables persistence
}

func NewHandler(agentMgr *agent.Manager, repo *store.ReportRepo) *Handler {
	return &Handler{AgentMgr: agentMgr, Repo: repo}
}

// HandleAnalyze runs the full pipeline on an uploaded table.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	raw, err := h.loadTable(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pipeline := standardize.Pipeline{}
	if req.Assist {
		pipeline.Assist = h.AgentMgr.GetProvider("classifier")
	}

	result := pipeline.Run(r.Context(), raw)
	table := result.Table
	asRaw := table.AsRaw()
	resp := Response{
		Format:      result.Format,
		Table:       &table,
		Unprojected: result.Unprojected,
		Validation:  validate.CheckStandard(&asRaw),
		Analysis:    calc.Analyze(&table),
	}

	if req.Narrative {
		gen := summary.NewGenerator(h.AgentMgr.GetProvider("summarizer"))
		resp.Narrative = gen.Generate(r.Context(), resp.Analysis)
	}

	if h.Repo != nil {
		report := store.NewReport(result.Format, &table, resp.Analysis, resp.Narrative)
		if err := h.Repo.Save(r.Context(), report); err != nil {
			fmt.Printf("[Analyze] Report persistence failed: %v\n", err)
		} else {
			resp.ReportID = report.ID.String()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// loadTable resolves the request body into a RawTable.
func (h *Handler) loadTable(req *Request) (*models.RawTable, error) {
	switch {
	case req.Table != nil:
		return req.Table, nil
	case req.CSV != "":
		return ingest.ReadCSV(strings.NewReader(req.CSV))
	case req.HTML != "":
		return ingest.ReadHTML(strings.NewReader(req.HTML))
	default:
		return nil, fmt.Errorf("request must carry one of: table, csv, html")
	}
}
