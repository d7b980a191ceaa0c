package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"balance_insight/pkg/core/calc"
	"balance_insight/pkg/models"
)

// Report is one persisted analysis run.
type Report struct {
	ID        uuid.UUID              `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Format    models.FormatInfo      `json:"format"`
	Table     *models.CanonicalTable `json:"table"`
	Analysis  *calc.Analysis         `json:"analysis"`
	Narrative string                 `json:"narrative"`
}

// NewReport assigns a fresh ID and timestamp.
func NewReport(format models.FormatInfo, table *models.CanonicalTable, analysis *calc.Analysis, narrative string) *Report {
	return &Report{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Format:    format,
		Table:     table,
		Analysis:  analysis,
		Narrative: narrative,
	}
}

// ReportRepo persists analysis reports as JSONB blobs.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS balance_reports (
//	  id UUID PRIMARY KEY,
//	  report_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
type ReportRepo struct{}

// NewReportRepo creates a new repository instance.
func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

// Save upserts a report keyed by its ID.
func (r *ReportRepo) Save(ctx context.Context, report *Report) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO balance_reports (id, report_json, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			report_json = EXCLUDED.report_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := pool.Exec(ctx, query, report.ID, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Load retrieves a report by ID.
func (r *ReportRepo) Load(ctx context.Context, id uuid.UUID) (*Report, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := pool.QueryRow(ctx, `SELECT report_json FROM balance_reports WHERE id = $1`, id).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no report found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var report Report
	if err := json.Unmarshal(jsonData, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// ListRecent returns the newest report IDs, most recent first.
func (r *ReportRepo) ListRecent(ctx context.Context, limit int) ([]uuid.UUID, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx,
		`SELECT id FROM balance_reports ORDER BY updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan report id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
