// Package models defines the shared data model for balance sheet
// normalization: raw tabular input, detected format metadata, and the
// canonical table consumed by the ratio engine.
package models

import (
	"strconv"
	"strings"
)

// =============================================================================
// RAW TABLE - Schema-less input boundary object
// =============================================================================

// RawColumn is a single named column of raw cell text.
type RawColumn struct {
	Name  string   `json:"name"`
	Cells []string `json:"cells"`
}

// RawTable is an ordered sequence of named columns with no schema
// guarantees. Cells are kept as raw text; typing is inferred downstream.
type RawTable struct {
	Columns []RawColumn `json:"columns"`
}

// Column returns the column with the given name, or nil.
func (t *RawTable) Column(name string) *RawColumn {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// ColumnNames returns names in original column order.
func (t *RawTable) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// RowCount returns the length of the longest column.
func (t *RawTable) RowCount() int {
	max := 0
	for _, c := range t.Columns {
		if len(c.Cells) > max {
			max = len(c.Cells)
		}
	}
	return max
}

// IsNumeric reports whether every non-blank cell parses directly as a
// number. Formatted values like "$1,234" do NOT count: a column only
// counts as numerically typed when the source data was numeric, matching
// the distinction between a numeric dtype and free text.
func (c *RawColumn) IsNumeric() bool {
	seen := false
	for _, cell := range c.Cells {
		s := strings.TrimSpace(cell)
		if s == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return false
		}
	}
	return seen
}

// IsText reports whether the column holds free text (not numerically typed).
func (c *RawColumn) IsText() bool {
	return !c.IsNumeric()
}

// =============================================================================
// FORMAT INFO - Detected structure metadata
// =============================================================================

// FormatType classifies the structural shape of the source table.
type FormatType string

const (
	FormatCategorized FormatType = "categorized"
	FormatTraditional FormatType = "traditional"
	FormatFlatList    FormatType = "flat_list"
	FormatUnknown     FormatType = "unknown"
)

// FormatInfo holds the detector's inferred metadata for one RawTable.
// It is computed once and read-only afterward; the standardization
// pipeline records a synthesized category column by deriving a new value
// via WithCategoryColumn rather than mutating shared state.
type FormatInfo struct {
	FormatType     FormatType `json:"format_type"`
	AccountColumn  string     `json:"account_column"`
	CategoryColumn string     `json:"category_column"`
	AmountColumns  []string   `json:"amount_columns"`
	HasCategories  bool       `json:"has_categories"`
}

// WithCategoryColumn returns a copy recording the synthesized category
// column. The receiver is left untouched.
func (f FormatInfo) WithCategoryColumn(name string) FormatInfo {
	out := f
	out.CategoryColumn = name
	out.AmountColumns = append([]string(nil), f.AmountColumns...)
	return out
}

// =============================================================================
// CANONICAL CATEGORIES - Closed classification vocabulary
// =============================================================================

// Category is one of the standard balance-sheet classification buckets.
type Category string

const (
	CurrentAssets         Category = "Current Assets"
	NonCurrentAssets      Category = "Non-Current Assets"
	CurrentLiabilities    Category = "Current Liabilities"
	NonCurrentLiabilities Category = "Non-Current Liabilities"
	Equity                Category = "Equity"

	// Transient outcomes used during classification only. Rows carrying
	// them are dropped before the canonical table is produced.
	CategoryTotal   Category = "Total"
	CategoryUnknown Category = "Unknown"
)

// CanonicalCategories is the closed set allowed in a canonical table.
var CanonicalCategories = []Category{
	CurrentAssets,
	NonCurrentAssets,
	CurrentLiabilities,
	NonCurrentLiabilities,
	Equity,
}

// IsCanonical reports whether c is one of the five canonical buckets.
func (c Category) IsCanonical() bool {
	for _, v := range CanonicalCategories {
		if c == v {
			return true
		}
	}
	return false
}

// =============================================================================
// CANONICAL TABLE - Pipeline output
// =============================================================================

// CanonicalRow is one normalized balance sheet line item.
type CanonicalRow struct {
	Account  string             `json:"account"`
	Category Category           `json:"category"`
	Amounts  map[string]float64 `json:"amounts"` // keyed by amount column name
}

// CanonicalTable is the normalized output of the standardization
// pipeline: rows with a canonical category and one signed amount per
// detected period. AmountColumns preserves the original relative order
// of the source amount columns under their normalized names
// (Amount_<year> or Amount_Year_<n>).
type CanonicalTable struct {
	Rows          []CanonicalRow `json:"rows"`
	AmountColumns []string       `json:"amount_columns"`
}

// PeriodLabel derives the display label for a normalized amount column:
// "Amount_2023" -> "2023", "Amount_Year_2" -> "Year_2".
func PeriodLabel(amountColumn string) string {
	return strings.TrimPrefix(amountColumn, "Amount_")
}

// LatestColumn returns the last amount column in source order. Sources
// may list the newest period first; the ratio engine orders periods by
// label, so use that for chronology.
func (t *CanonicalTable) LatestColumn() string {
	if len(t.AmountColumns) == 0 {
		return ""
	}
	return t.AmountColumns[len(t.AmountColumns)-1]
}

// AsRaw converts the canonical table back to a RawTable, with amounts
// rendered as plain numbers. Re-running the pipeline on this output is a
// no-op standardization: the canonical columns are detected as such on a
// second pass.
func (t *CanonicalTable) AsRaw() RawTable {
	raw := RawTable{}
	account := RawColumn{Name: "Account"}
	category := RawColumn{Name: "Category"}
	for _, row := range t.Rows {
		account.Cells = append(account.Cells, row.Account)
		category.Cells = append(category.Cells, string(row.Category))
	}
	raw.Columns = append(raw.Columns, account, category)
	for _, col := range t.AmountColumns {
		rc := RawColumn{Name: col}
		for _, row := range t.Rows {
			rc.Cells = append(rc.Cells, strconv.FormatFloat(row.Amounts[col], 'f', -1, 64))
		}
		raw.Columns = append(raw.Columns, rc)
	}
	return raw
}
