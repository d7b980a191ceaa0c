package standardize

import (
	"context"
	"reflect"
	"testing"

	"balance_insight/pkg/models"
)

func TestRunFlatList(t *testing.T) {
	raw := &models.RawTable{Columns: []models.RawColumn{
		{Name: "Item", Cells: []string{"Cash", "Accounts Payable", "Total", "Mystery Line"}},
		{Name: "Amount_2023", Cells: []string{"$850,000", "(280,000)", "570,000", "10"}},
	}}

	var p Pipeline
	res := p.Run(context.Background(), raw)
	table, info := res.Table, res.Format

	if info.FormatType != models.FormatFlatList {
		t.Errorf("format = %s, want flat_list", info.FormatType)
	}
	if info.CategoryColumn != "AI_Category" {
		t.Errorf("category column = %q, want synthesized AI_Category", info.CategoryColumn)
	}

	// Total and Unknown rows are dropped.
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	cash := table.Rows[0]
	if cash.Account != "Cash" || cash.Category != models.CurrentAssets {
		t.Errorf("row 0 = %q/%s", cash.Account, cash.Category)
	}
	if cash.Amounts["Amount_2023"] != 850000 {
		t.Errorf("cash amount = %v, want 850000", cash.Amounts["Amount_2023"])
	}
	ap := table.Rows[1]
	if ap.Category != models.CurrentLiabilities {
		t.Errorf("Accounts Payable category = %s", ap.Category)
	}
	if ap.Amounts["Amount_2023"] != -280000 {
		t.Errorf("Accounts Payable amount = %v, want -280000", ap.Amounts["Amount_2023"])
	}
}

func TestRunCategorizedStandardizesLabels(t *testing.T) {
	raw := &models.RawTable{Columns: []models.RawColumn{
		{Name: "Account", Cells: []string{"Cash", "Plant", "Bank Loan"}},
		{Name: "Type", Cells: []string{"liquid assets", "Fixed Assets", "long term debt"}},
		{Name: "FY 2022 ($)", Cells: []string{"100", "400", "(250)"}},
	}}

	var p Pipeline
	res := p.Run(context.Background(), raw)
	table, info := res.Table, res.Format

	if info.FormatType != models.FormatCategorized {
		t.Errorf("format = %s, want categorized", info.FormatType)
	}
	want := []models.Category{models.CurrentAssets, models.NonCurrentAssets, models.NonCurrentLiabilities}
	if len(table.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(table.Rows), len(want))
	}
	for i, cat := range want {
		if table.Rows[i].Category != cat {
			t.Errorf("row %d category = %s, want %s", i, table.Rows[i].Category, cat)
		}
	}
	if table.AmountColumns[0] != "Amount_2022" {
		t.Errorf("amount column = %q, want Amount_2022", table.AmountColumns[0])
	}
}

func TestRunColumnRenaming(t *testing.T) {
	raw := &models.RawTable{Columns: []models.RawColumn{
		{Name: "Account", Cells: []string{"Cash"}},
		{Name: "2022", Cells: []string{"90"}},
		{Name: "Closing Balance", Cells: []string{"100"}},
	}}

	var p Pipeline
	table := p.Run(context.Background(), raw).Table

	wantCols := []string{"Amount_2022", "Amount_Year_2"}
	if len(table.AmountColumns) != 2 || table.AmountColumns[0] != wantCols[0] || table.AmountColumns[1] != wantCols[1] {
		t.Errorf("amount columns = %v, want %v", table.AmountColumns, wantCols)
	}
	if got := table.LatestColumn(); got != "Amount_Year_2" {
		t.Errorf("latest column = %q", got)
	}
}

func TestRunDegradesWithoutAmountColumns(t *testing.T) {
	raw := &models.RawTable{Columns: []models.RawColumn{
		{Name: "Account", Cells: []string{"Cash"}},
		{Name: "Notes", Cells: []string{"petty cash only"}},
	}}

	var p Pipeline
	res := p.Run(context.Background(), raw)
	table, info := res.Table, res.Format

	if len(table.Rows) != 0 {
		t.Errorf("expected empty table, got %d rows", len(table.Rows))
	}
	if info.AccountColumn != "Account" {
		t.Errorf("account column = %q", info.AccountColumn)
	}
	// No amount columns to clean, so the input comes back as-is.
	if res.Unprojected == nil || !reflect.DeepEqual(*res.Unprojected, *raw) {
		t.Errorf("unprojected = %+v, want input unchanged", res.Unprojected)
	}
}

func TestRunUnprojectableNormalizesAmounts(t *testing.T) {
	// All-numeric columns leave no text column to serve as the account
	// column, so projection is skipped. The returned table must still
	// carry the amounts, cleaned.
	raw := &models.RawTable{Columns: []models.RawColumn{
		{Name: "2023", Cells: []string{"1500.00", "2500.50"}},
		{Name: "2022", Cells: []string{"1200.00", "2100.00"}},
	}}

	var p Pipeline
	res := p.Run(context.Background(), raw)

	if res.Format.AccountColumn != "" {
		t.Errorf("account column = %q, want none", res.Format.AccountColumn)
	}
	if len(res.Table.Rows) != 0 {
		t.Errorf("expected empty canonical table, got %d rows", len(res.Table.Rows))
	}
	if res.Unprojected == nil {
		t.Fatal("expected unprojected table")
	}
	got := res.Unprojected.Column("2023")
	if got == nil || got.Cells[0] != "1500" || got.Cells[1] != "2500.5" {
		t.Errorf("normalized cells = %+v", got)
	}
	// Input itself is untouched.
	if raw.Columns[0].Cells[0] != "1500.00" {
		t.Errorf("input mutated: %q", raw.Columns[0].Cells[0])
	}
}

func TestRunIsIdempotent(t *testing.T) {
	raw := &models.RawTable{Columns: []models.RawColumn{
		{Name: "Item", Cells: []string{"Cash", "Common Stock", "Notes Payable"}},
		{Name: "Amount_2023", Cells: []string{"$1,000", "(500)", "200"}},
	}}

	var p Pipeline
	first := p.Run(context.Background(), raw).Table

	again := first.AsRaw()
	res := p.Run(context.Background(), &again)
	second, info := res.Table, res.Format

	if info.FormatType != models.FormatCategorized {
		t.Errorf("second pass format = %s, want categorized", info.FormatType)
	}
	if len(second.Rows) != len(first.Rows) {
		t.Fatalf("second pass rows = %d, want %d", len(second.Rows), len(first.Rows))
	}
	for i := range first.Rows {
		if second.Rows[i].Account != first.Rows[i].Account ||
			second.Rows[i].Category != first.Rows[i].Category {
			t.Errorf("row %d changed: %+v vs %+v", i, second.Rows[i], first.Rows[i])
		}
		for col, v := range first.Rows[i].Amounts {
			if second.Rows[i].Amounts[col] != v {
				t.Errorf("row %d %s = %v, want %v", i, col, second.Rows[i].Amounts[col], v)
			}
		}
	}
}
