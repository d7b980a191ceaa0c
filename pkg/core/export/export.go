// Package export serializes analysis results for download and archival.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"balance_insight/pkg/core/calc"
)

// ReportRecord is the flat analysis record written to delimited output.
type ReportRecord struct {
	AnalysisDate string
	CurrentRatio float64
	DebtToEquity float64
	TotalAssets  float64
	KeyInsights  string
}

// NewReportRecord flattens an analysis into a single dated record.
func NewReportRecord(analysis *calc.Analysis, now time.Time) ReportRecord {
	latest := analysis.Latest()
	return ReportRecord{
		AnalysisDate: now.Format("2006-01-02"),
		CurrentRatio: latest.Liquidity.CurrentRatio,
		DebtToEquity: latest.Leverage.DebtToEquity,
		TotalAssets:  latest.Totals.TotalAssets,
		KeyInsights:  strings.Join(analysis.Insights, "; "),
	}
}

// WriteReportCSV writes the flat record with its header row.
func WriteReportCSV(w io.Writer, record ReportRecord) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"Analysis_Date", "Current_Ratio", "Debt_to_Equity", "Total_Assets", "Key_Insights"},
		{
			record.AnalysisDate,
			formatNumber(record.CurrentRatio),
			formatNumber(record.DebtToEquity),
			formatNumber(record.TotalAssets),
			record.KeyInsights,
		},
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing report csv: %w", err)
	}
	return nil
}

// WriteRatioTableCSV writes one row per period with the headline ratios
// and totals.
func WriteRatioTableCSV(w io.Writer, analysis *calc.Analysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Year", "Current_Ratio", "Debt_to_Equity",
		"Total_Assets", "Total_Liabilities", "Total_Equity",
	}); err != nil {
		return fmt.Errorf("writing ratio table header: %w", err)
	}
	for _, r := range analysis.Ratios {
		row := []string{
			r.Period,
			formatNumber(r.Liquidity.CurrentRatio),
			formatNumber(r.Leverage.DebtToEquity),
			formatNumber(r.Totals.TotalAssets),
			formatNumber(r.Totals.TotalLiabilities),
			formatNumber(r.Totals.TotalEquity),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing ratio table row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReportFileName derives the dated download name for a report.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("balance_sheet_analysis_%s.csv", now.Format("20060102"))
}

// formatNumber renders values in plain decimal notation, full precision.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
