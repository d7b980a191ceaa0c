// Package standardize converts an arbitrary balance sheet table into
// the canonical form: detect structure, assign canonical categories,
// clean amounts, then project onto the standard columns.
package standardize

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"balance_insight/pkg/core/classify"
	"balance_insight/pkg/core/detect"
	"balance_insight/pkg/core/normalize"
	"balance_insight/pkg/models"
)

// derivedCategoryColumn names the category column synthesized when the
// source table carries none of its own.
const derivedCategoryColumn = "AI_Category"

// Pipeline runs the full standardization sequence. Assist is optional;
// when set, accounts the keyword rules leave Unknown get one model call
// before projection drops them.
type Pipeline struct {
	Assist classify.Completer
}

// Result is the outcome of one standardization run. When projection was
// possible, Table holds the canonical form and Unprojected is nil.
// Otherwise Unprojected carries the input with detected amount columns
// normalized, so the caller still gets best-effort data.
type Result struct {
	Table       models.CanonicalTable
	Format      models.FormatInfo
	Unprojected *models.RawTable
}

// Run standardizes a raw table. It never fails: tables missing an
// account column or amount columns come back unprojected, amounts
// cleaned, alongside the detected format info.
func (p *Pipeline) Run(ctx context.Context, raw *models.RawTable) Result {
	info := detect.Detect(raw)
	fmt.Printf("[Standardize] Detected format=%s account=%q categories=%v amounts=%d\n",
		info.FormatType, info.AccountColumn, info.HasCategories, len(info.AmountColumns))

	if info.AccountColumn == "" || len(info.AmountColumns) == 0 {
		fmt.Println("[Standardize] Table not standardizable, returning normalized input")
		return Result{Format: info, Unprojected: normalizeRaw(raw, info)}
	}

	accounts := raw.Column(info.AccountColumn).Cells
	categories := p.assignCategories(ctx, raw, &info, accounts)

	// Normalized amounts per source column, in detection order.
	amounts := make([][]float64, len(info.AmountColumns))
	for i, name := range info.AmountColumns {
		if col := raw.Column(name); col != nil {
			amounts[i] = normalize.Column(col.Cells)
		}
	}

	return Result{Table: project(accounts, categories, info, amounts), Format: info}
}

// normalizeRaw copies the input with every detected amount column's
// cells cleaned to plain numbers. Other columns pass through untouched.
func normalizeRaw(raw *models.RawTable, info models.FormatInfo) *models.RawTable {
	out := models.RawTable{Columns: make([]models.RawColumn, len(raw.Columns))}
	copy(out.Columns, raw.Columns)

	amount := make(map[string]bool, len(info.AmountColumns))
	for _, name := range info.AmountColumns {
		amount[name] = true
	}
	for i, col := range out.Columns {
		if !amount[col.Name] {
			continue
		}
		cells := make([]string, len(col.Cells))
		for j, v := range normalize.Column(col.Cells) {
			cells[j] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		out.Columns[i].Cells = cells
	}
	return &out
}

// assignCategories produces one canonical category per row. Existing
// category labels are standardized; without a category column each
// account name is classified by keyword rules, with the optional model
// fallback for rows that stay Unknown.
func (p *Pipeline) assignCategories(ctx context.Context, raw *models.RawTable, info *models.FormatInfo, accounts []string) []models.Category {
	categories := make([]models.Category, len(accounts))

	if info.HasCategories {
		cells := raw.Column(info.CategoryColumn).Cells
		for i := range accounts {
			if i < len(cells) {
				categories[i] = classify.StandardizeCategory(cells[i])
			} else {
				categories[i] = models.CategoryUnknown
			}
		}
		return categories
	}

	*info = info.WithCategoryColumn(derivedCategoryColumn)
	var unknowns []string
	for i, name := range accounts {
		categories[i] = classify.Account(name)
		if categories[i] == models.CategoryUnknown && strings.TrimSpace(name) != "" {
			unknowns = append(unknowns, name)
		}
	}

	if p.Assist != nil && len(unknowns) > 0 {
		resolved := classify.Assist(ctx, p.Assist, unknowns)
		for i, name := range accounts {
			if categories[i] != models.CategoryUnknown {
				continue
			}
			if cat, ok := resolved[name]; ok {
				categories[i] = cat
			}
		}
	}
	return categories
}

// project drops total and Unknown rows and renames amount columns onto
// the Amount_<year> / Amount_Year_<n> convention.
func project(accounts []string, categories []models.Category, info models.FormatInfo, amounts [][]float64) models.CanonicalTable {
	names := make([]string, len(info.AmountColumns))
	for i, col := range info.AmountColumns {
		if year := normalize.ExtractYear(col); year != 0 {
			names[i] = fmt.Sprintf("Amount_%d", year)
		} else {
			names[i] = fmt.Sprintf("Amount_Year_%d", i+1)
		}
	}

	table := models.CanonicalTable{AmountColumns: names}
	for i, account := range accounts {
		// Total and Unknown rows are transient and never reach the
		// canonical table. Other non-canonical source labels pass
		// through for the validator to flag.
		if strings.Contains(strings.ToLower(account), "total") {
			continue
		}
		if categories[i] == models.CategoryUnknown || categories[i] == models.CategoryTotal {
			continue
		}

		row := models.CanonicalRow{
			Account:  account,
			Category: categories[i],
			Amounts:  make(map[string]float64, len(names)),
		}
		for j, name := range names {
			if i < len(amounts[j]) {
				row.Amounts[name] = amounts[j][i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
