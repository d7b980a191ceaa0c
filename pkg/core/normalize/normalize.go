// Package normalize cleans heterogeneous monetary formatting into a
// single signed numeric convention. Normalization is total: any cell
// that cannot be parsed becomes 0, never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Accounting-negative notation: "(1,234)" means -1234.
	parenPattern = regexp.MustCompile(`\(.*\)`)

	yearPattern = regexp.MustCompile(`(20\d{2})`)
)

// currencySymbols are stripped from cells before parsing. Multiple
// symbols in one cell are all removed.
var currencySymbols = []string{"$", "€", "£", "₹", "¥"}

// Amount cleans one raw cell into a signed number.
// Cleaning order:
//  1. Strip thousands separators, whitespace, and currency symbols.
//  2. A cell whose original text matched "( ... )" is flagged negative.
//  3. "(" becomes "-", ")" is dropped, so "(1,234)" reads as -1234.
//  4. Unparseable remainders become 0.
//  5. Flagged cells are forced to -abs(value), which keeps the result
//     negative even when the text already carried a sign.
func Amount(raw string) float64 {
	isNegative := parenPattern.MatchString(raw)

	cleaned := strings.ReplaceAll(raw, ",", "")
	for _, sym := range currencySymbols {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	cleaned = strings.Join(strings.Fields(cleaned), "")
	cleaned = strings.ReplaceAll(cleaned, "(", "-")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	if isNegative {
		// Force -abs regardless of how the inner text was signed. The
		// parenthesis substitution alone can produce a double sign
		// ("(-1,234)" -> "--1234"), so signs are dropped before parsing.
		cleaned = strings.ReplaceAll(cleaned, "-", "")
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return -value
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// Column applies Amount to every cell.
func Column(cells []string) []float64 {
	out := make([]float64, len(cells))
	for i, cell := range cells {
		out[i] = Amount(cell)
	}
	return out
}

// ExtractYear pulls a 4-digit year beginning with 20 out of a column
// name ("FY 2023 ($)" -> 2023). Returns 0 when no year is present.
func ExtractYear(columnName string) int {
	match := yearPattern.FindString(columnName)
	if match == "" {
		return 0
	}
	year, _ := strconv.Atoi(match)
	return year
}
