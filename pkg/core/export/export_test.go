package export

import (
	"strings"
	"testing"
	"time"

	"balance_insight/pkg/core/calc"
)

func testAnalysis() *calc.Analysis {
	return &calc.Analysis{
		Ratios: []calc.RatioSet{
			{
				Period:    "2022",
				Liquidity: calc.Liquidity{CurrentRatio: 2.88},
				Leverage:  calc.Leverage{DebtToEquity: 1.13},
				Totals:    calc.Totals{TotalAssets: 1850000, TotalLiabilities: 980000, TotalEquity: 870000},
			},
			{
				Period:    "2023",
				Liquidity: calc.Liquidity{CurrentRatio: 3.04},
				Leverage:  calc.Leverage{DebtToEquity: 0.83},
				Totals:    calc.Totals{TotalAssets: 2050000, TotalLiabilities: 930000, TotalEquity: 1120000},
			},
		},
		Insights: []string{"**Strong Liquidity**: fine", "**Conservative Leverage**: fine"},
	}
}

func TestWriteReportCSV(t *testing.T) {
	record := NewReportRecord(testAnalysis(), time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	var sb strings.Builder
	if err := WriteReportCSV(&sb, record); err != nil {
		t.Fatalf("WriteReportCSV: %v", err)
	}
	out := sb.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), out)
	}
	if lines[0] != "Analysis_Date,Current_Ratio,Debt_to_Equity,Total_Assets,Key_Insights" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2024-03-15,3.04,0.83,2050000,") {
		t.Errorf("record = %q", lines[1])
	}
	if !strings.Contains(lines[1], "Strong Liquidity") || !strings.Contains(lines[1], "; ") {
		t.Errorf("insights not joined in %q", lines[1])
	}
}

func TestWriteRatioTableCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteRatioTableCSV(&sb, testAnalysis()); err != nil {
		t.Fatalf("WriteRatioTableCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "2022,") || !strings.HasPrefix(lines[2], "2023,") {
		t.Errorf("period rows = %q, %q", lines[1], lines[2])
	}
}

func TestReportFileName(t *testing.T) {
	got := ReportFileName(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if got != "balance_sheet_analysis_20240315.csv" {
		t.Errorf("file name = %q", got)
	}
}
