// Package detect infers the structure of an arbitrary balance-sheet
// table: which column holds account names, which holds categories, and
// which columns carry monetary values for which periods.
package detect

import (
	"strings"

	"balance_insight/pkg/models"
)

// Column-name keywords, matched case-insensitively as substrings in
// original column order. First match wins.
var (
	accountKeywords  = []string{"account", "item", "description", "line_item", "particulars"}
	categoryKeywords = []string{"category", "type", "classification", "group", "section"}
	amountKeywords   = []string{"amount", "202", "201", "200", "value", "balance", "$"}

	// Section header tokens that mark a traditional statement layout
	// (ASSETS / LIABILITIES / EQUITY rows inside the account column).
	sectionHeaders = []string{
		"assets", "liabilities", "equity",
		"stockholders equity", "shareholders equity",
	}
)

// Detect inspects a RawTable and returns its FormatInfo. Detection is a
// pure function of column names and inferred cell types: running it
// twice on the same table yields identical results.
func Detect(table *models.RawTable) models.FormatInfo {
	info := models.FormatInfo{FormatType: models.FormatUnknown}

	// Account column: explicit name match first, else first text column.
	for _, col := range table.Columns {
		if containsAny(strings.ToLower(col.Name), accountKeywords) {
			info.AccountColumn = col.Name
			break
		}
	}
	if info.AccountColumn == "" {
		for _, col := range table.Columns {
			if col.IsText() {
				info.AccountColumn = col.Name
				break
			}
		}
	}

	// Category column by name match.
	for _, col := range table.Columns {
		if containsAny(strings.ToLower(col.Name), categoryKeywords) {
			info.CategoryColumn = col.Name
			info.HasCategories = true
			break
		}
	}

	// Amount columns: numerically typed, or amount/year keywords in the
	// name. Original order preserved, duplicates excluded.
	for _, col := range table.Columns {
		if col.IsNumeric() || containsAny(strings.ToLower(col.Name), amountKeywords) {
			info.AmountColumns = appendUnique(info.AmountColumns, col.Name)
		}
	}

	switch {
	case info.HasCategories:
		info.FormatType = models.FormatCategorized
	case hasSectionHeaders(table, info.AccountColumn):
		info.FormatType = models.FormatTraditional
	default:
		info.FormatType = models.FormatFlatList
	}

	return info
}

// hasSectionHeaders scans the account column for traditional statement
// section headers.
func hasSectionHeaders(table *models.RawTable, accountColumn string) bool {
	if accountColumn == "" {
		return false
	}
	col := table.Column(accountColumn)
	if col == nil {
		return false
	}
	for _, cell := range col.Cells {
		if containsAny(strings.ToLower(cell), sectionHeaders) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func appendUnique(list []string, name string) []string {
	for _, existing := range list {
		if existing == name {
			return list
		}
	}
	return append(list, name)
}
