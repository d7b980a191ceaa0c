// Package classify assigns balance sheet line items to the five
// canonical categories using ordered keyword rules, and standardizes
// free-form category labels onto the same vocabulary.
package classify

import (
	"strings"

	"balance_insight/pkg/models"
)

// =============================================================================
// KEYWORD RULE TABLES
// =============================================================================

// Keyword lists are matched case-insensitively as substrings. Rule order
// matters: equity wins over liabilities (so "Bond Payable Reserve" is
// not misread), liabilities win over assets, and "total" is only checked
// after every class has had its chance.
var (
	assetKeywords = []string{
		"cash", "bank", "receivable", "inventory", "stock", "prepaid", "deposits",
		"property", "equipment", "building", "land", "machinery", "vehicle",
		"investment", "securities", "bonds", "goodwill", "patent", "trademark",
		"intangible", "asset", "deferred tax asset", "notes receivable",
	}

	liabilityKeywords = []string{
		"payable", "debt", "loan", "borrowing", "mortgage", "bond payable",
		"accrued", "provision", "reserve", "liability", "obligation",
		"deferred tax liability", "notes payable", "overdraft", "credit line",
	}

	equityKeywords = []string{
		"equity", "capital", "stock", "share", "retained earnings", "reserves",
		"surplus", "accumulated", "paid-in", "additional paid", "treasury stock",
		"comprehensive income", "revaluation", "translation adjustment",
	}

	currentKeywords = []string{
		"current", "short-term", "short term", "within one year", "< 1 year",
		"less than one year", "due within", "maturing within",
	}

	nonCurrentKeywords = []string{
		"non-current", "non current", "long-term", "long term", "fixed",
		"property plant equipment", "ppe", "goodwill", "intangible",
	}

	// Tie-breakers when neither an explicit current nor non-current
	// marker is present in the account name.
	currentLiabilityHints = []string{"payable", "accrued", "short"}
	currentAssetHints     = []string{"cash", "receivable", "inventory", "prepaid"}
)

// =============================================================================
// ACCOUNT CLASSIFICATION
// =============================================================================

// Account classifies a single account name. Blank names and names
// matching no rule come back Unknown; rows whose name mentions "total"
// without matching any class come back Total. Both are transient and
// dropped by the standardization pipeline.
func Account(name string) models.Category {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return models.CategoryUnknown
	}

	if containsAny(lower, equityKeywords) {
		return models.Equity
	}

	if containsAny(lower, liabilityKeywords) {
		switch {
		case containsAny(lower, currentKeywords):
			return models.CurrentLiabilities
		case containsAny(lower, nonCurrentKeywords):
			return models.NonCurrentLiabilities
		case containsAny(lower, currentLiabilityHints):
			return models.CurrentLiabilities
		default:
			return models.NonCurrentLiabilities
		}
	}

	if containsAny(lower, assetKeywords) {
		switch {
		case containsAny(lower, currentKeywords):
			return models.CurrentAssets
		case containsAny(lower, nonCurrentKeywords):
			return models.NonCurrentAssets
		case containsAny(lower, currentAssetHints):
			return models.CurrentAssets
		default:
			return models.NonCurrentAssets
		}
	}

	if strings.Contains(lower, "total") {
		return models.CategoryTotal
	}

	return models.CategoryUnknown
}

// =============================================================================
// CATEGORY STANDARDIZATION
// =============================================================================

// categorySynonyms maps lowercased source labels to canonical buckets.
var categorySynonyms = map[string]models.Category{
	"current assets":    models.CurrentAssets,
	"current asset":     models.CurrentAssets,
	"short term assets": models.CurrentAssets,
	"short-term assets": models.CurrentAssets,
	"liquid assets":     models.CurrentAssets,

	"non current assets": models.NonCurrentAssets,
	"non-current assets": models.NonCurrentAssets,
	"long term assets":   models.NonCurrentAssets,
	"long-term assets":   models.NonCurrentAssets,
	"fixed assets":       models.NonCurrentAssets,
	"capital assets":     models.NonCurrentAssets,

	"current liabilities":    models.CurrentLiabilities,
	"current liability":      models.CurrentLiabilities,
	"short term liabilities": models.CurrentLiabilities,
	"short-term liabilities": models.CurrentLiabilities,

	"non current liabilities": models.NonCurrentLiabilities,
	"non-current liabilities": models.NonCurrentLiabilities,
	"long term liabilities":   models.NonCurrentLiabilities,
	"long-term liabilities":   models.NonCurrentLiabilities,
	"long term debt":          models.NonCurrentLiabilities,

	"equity":              models.Equity,
	"stockholders equity": models.Equity,
	"shareholders equity": models.Equity,
	"stockholder equity":  models.Equity,
	"shareholder equity":  models.Equity,
	"owners equity":       models.Equity,
	"capital":             models.Equity,
}

// StandardizeCategory maps a free-form category label onto the canonical
// vocabulary. Blank labels become Unknown; unrecognized labels pass
// through unchanged so the validator can flag them downstream.
func StandardizeCategory(label string) models.Category {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return models.CategoryUnknown
	}
	if canonical, ok := categorySynonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return models.Category(trimmed)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
