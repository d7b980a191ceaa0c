// Package validate provides advisory checks over standardized balance
// sheet data. Findings are human-readable strings, never fatal: callers
// display them and keep going.
package validate

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"balance_insight/pkg/core/calc"
	"balance_insight/pkg/models"
)

// Report lists validation findings for one table.
type Report struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// CheckStandard validates a table that claims to be in standard form:
// Account and Category columns, at least one Amount_ column, categories
// drawn from the canonical vocabulary, and numeric amount cells.
// Validation runs after projection, so Unknown and Total are not
// acceptable here.
func CheckStandard(raw *models.RawTable) Report {
	var issues []string

	for _, required := range []string{"Account", "Category"} {
		if raw.Column(required) == nil {
			issues = append(issues, fmt.Sprintf("Missing required column: %s", required))
		}
	}

	var amountColumns []string
	for _, col := range raw.Columns {
		if strings.Contains(col.Name, "Amount_") || strings.HasPrefix(strings.ToLower(col.Name), "amount") {
			amountColumns = append(amountColumns, col.Name)
		}
	}
	if len(amountColumns) == 0 {
		issues = append(issues, "No amount columns found. Expected columns like 'Amount_2023', 'Amount_2022', etc.")
	}

	if cat := raw.Column("Category"); cat != nil {
		if invalid := invalidCategories(cat.Cells); len(invalid) > 0 {
			issues = append(issues, fmt.Sprintf("Invalid categories found: %s", strings.Join(invalid, ", ")))
		}
	}

	for _, name := range amountColumns {
		col := raw.Column(name)
		for _, cell := range col.Cells {
			s := strings.TrimSpace(cell)
			if s == "" {
				continue
			}
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				issues = append(issues, fmt.Sprintf("Non-numeric data found in column: %s", name))
				break
			}
		}
	}

	return Report{Valid: len(issues) == 0, Issues: issues}
}

// invalidCategories returns the distinct labels outside the canonical
// set, sorted for stable output.
func invalidCategories(cells []string) []string {
	seen := make(map[string]bool)
	var invalid []string
	for _, cell := range cells {
		label := strings.TrimSpace(cell)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		if !models.Category(label).IsCanonical() {
			invalid = append(invalid, label)
		}
	}
	sort.Strings(invalid)
	return invalid
}

// =============================================================================
// BALANCE EQUATION
// =============================================================================

// BalanceCheck verifies Assets = Liabilities + Equity.
type BalanceCheck struct {
	TotalAssets      float64
	TotalLiabilities float64
	TotalEquity      float64
	ComputedAssets   float64 // L + E
	Difference       float64
	IsBalanced       bool
	Tolerance        float64
}

// CheckBalanceEquation validates A = L + E within tolerance.
func CheckBalanceEquation(assets, liabilities, equity, tolerance float64) *BalanceCheck {
	computed := liabilities + equity
	diff := assets - computed

	return &BalanceCheck{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		TotalEquity:      equity,
		ComputedAssets:   computed,
		Difference:       diff,
		IsBalanced:       math.Abs(diff) <= tolerance,
		Tolerance:        tolerance,
	}
}

// CheckBalance runs the balance equation against one period of a
// canonical table, using absolute category totals.
func CheckBalance(table *models.CanonicalTable, column string, tolerance float64) *BalanceCheck {
	totals := calc.RatiosFor(table, column).Totals
	return CheckBalanceEquation(totals.TotalAssets, totals.TotalLiabilities, totals.TotalEquity, tolerance)
}
