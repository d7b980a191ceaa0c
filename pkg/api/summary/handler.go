// Package summary serves stored reports and their narratives.
package summary

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"balance_insight/pkg/core/agent"
	"balance_insight/pkg/core/calc"
	"balance_insight/pkg/core/export"
	"balance_insight/pkg/core/store"
	coresummary "balance_insight/pkg/core/summary"
)

// Handler serves narrative generation and stored report endpoints.
type Handler struct {
	AgentMgr *agent.Manager
	Repo     *store.ReportRepo // nil disables the stored report routes
}

func NewHandler(agentMgr *agent.Manager, repo *store.ReportRepo) *Handler {
	return &Handler{AgentMgr: agentMgr, Repo: repo}
}

// SummaryRequest names a stored report or carries an analysis inline.
type SummaryRequest struct {
	ReportID string         `json:"report_id,omitempty"`
	Analysis *calc.Analysis `json:"analysis,omitempty"`
}

// HandleSummary generates a narrative for a stored or inline analysis.
// POST /api/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	analysis := req.Analysis
	if analysis == nil && req.ReportID != "" {
		if h.Repo == nil {
			http.Error(w, "Report storage not configured", http.StatusServiceUnavailable)
			return
		}
		id, err := uuid.Parse(req.ReportID)
		if err != nil {
			http.Error(w, "Invalid report id", http.StatusBadRequest)
			return
		}
		report, err := h.Repo.Load(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		analysis = report.Analysis
	}
	if analysis == nil {
		http.Error(w, "Request must carry report_id or analysis", http.StatusBadRequest)
		return
	}

	gen := coresummary.NewGenerator(h.AgentMgr.GetProvider("summarizer"))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"narrative": gen.Generate(r.Context(), analysis),
	})
}

type reportResponse struct {
	Report    *store.Report `json:"report"`
	Executive string        `json:"executive_summary"`
}

// HandleReport returns one stored report plus its rendered executive
// summary. GET /api/report?id=<uuid>
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid report id", http.StatusBadRequest)
		return
	}

	report, err := h.Repo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reportResponse{
		Report:    report,
		Executive: coresummary.ExecutiveSummary(report.Analysis),
	})
}

// HandleExport streams the flat CSV record for one stored report.
// GET /api/report/export?id=<uuid>
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid report id", http.StatusBadRequest)
		return
	}

	report, err := h.Repo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	now := time.Now()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.ReportFileName(now))
	if err := export.WriteReportCSV(w, export.NewReportRecord(report.Analysis, now)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleRecent lists the newest report IDs. GET /api/reports
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	ids, err := h.Repo.ListRecent(r.Context(), 20)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"report_ids": ids})
}
