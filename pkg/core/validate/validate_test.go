package validate

import (
	"strings"
	"testing"

	"balance_insight/pkg/models"
)

func standardRaw() *models.RawTable {
	return &models.RawTable{Columns: []models.RawColumn{
		{Name: "Account", Cells: []string{"Cash", "Accounts Payable", "Common Stock"}},
		{Name: "Category", Cells: []string{"Current Assets", "Current Liabilities", "Equity"}},
		{Name: "Amount_2023", Cells: []string{"1000", "-600", "-400"}},
	}}
}

func TestCheckStandardPasses(t *testing.T) {
	report := CheckStandard(standardRaw())
	if !report.Valid {
		t.Errorf("expected valid, got issues %v", report.Issues)
	}
}

func TestCheckStandardMissingColumns(t *testing.T) {
	raw := &models.RawTable{Columns: []models.RawColumn{
		{Name: "Stuff", Cells: []string{"Cash"}},
	}}

	report := CheckStandard(raw)

	if report.Valid {
		t.Fatal("expected invalid report")
	}
	joined := strings.Join(report.Issues, "\n")
	for _, frag := range []string{"Missing required column: Account", "Missing required column: Category", "No amount columns"} {
		if !strings.Contains(joined, frag) {
			t.Errorf("missing issue %q in %q", frag, joined)
		}
	}
}

func TestCheckStandardInvalidCategories(t *testing.T) {
	raw := standardRaw()
	raw.Column("Category").Cells[2] = "Exotic Bucket"

	report := CheckStandard(raw)

	if report.Valid {
		t.Fatal("expected invalid report")
	}
	if !strings.Contains(report.Issues[0], "Exotic Bucket") {
		t.Errorf("issues = %v", report.Issues)
	}
}

func TestCheckStandardNonNumericAmounts(t *testing.T) {
	raw := standardRaw()
	raw.Column("Amount_2023").Cells[0] = "one thousand"

	report := CheckStandard(raw)

	if report.Valid {
		t.Fatal("expected invalid report")
	}
	if !strings.Contains(strings.Join(report.Issues, "\n"), "Non-numeric data found in column: Amount_2023") {
		t.Errorf("issues = %v", report.Issues)
	}
}

func TestCheckBalanceEquation(t *testing.T) {
	// A = 1000, L = 600, E = 400: balanced exactly.
	check := CheckBalanceEquation(1000, 600, 400, 0.01)
	if !check.IsBalanced || check.Difference != 0 {
		t.Errorf("expected balanced, got %+v", check)
	}

	// A = 1000, L + E = 950: off by 50, outside tolerance.
	check = CheckBalanceEquation(1000, 600, 350, 1)
	if check.IsBalanced {
		t.Errorf("expected imbalance, got %+v", check)
	}
	if check.Difference != 50 {
		t.Errorf("difference = %f, want 50", check.Difference)
	}
}

func TestCheckBalanceOnCanonicalTable(t *testing.T) {
	table := &models.CanonicalTable{
		AmountColumns: []string{"Amount_2023"},
		Rows: []models.CanonicalRow{
			{Account: "Cash", Category: models.CurrentAssets, Amounts: map[string]float64{"Amount_2023": 1000}},
			{Account: "Accounts Payable", Category: models.CurrentLiabilities, Amounts: map[string]float64{"Amount_2023": -600}},
			{Account: "Common Stock", Category: models.Equity, Amounts: map[string]float64{"Amount_2023": -400}},
		},
	}

	check := CheckBalance(table, "Amount_2023", 0.01)
	if !check.IsBalanced {
		t.Errorf("expected balanced sheet, got %+v", check)
	}
}
