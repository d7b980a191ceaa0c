package calc

import (
	"math"
	"sort"

	"balance_insight/pkg/models"
)

// =============================================================================
// RATIO COMPUTATION
// =============================================================================

// sectionSums holds per-category absolute sums for one amount column.
type sectionSums struct {
	currentAssets         float64
	nonCurrentAssets      float64
	currentLiabilities    float64
	nonCurrentLiabilities float64
	equity                float64
}

// sumSections groups rows by category and takes absolute sums, so sign
// conventions in the source (liabilities negative or positive) do not
// change the ratios.
func sumSections(table *models.CanonicalTable, column string) sectionSums {
	raw := make(map[models.Category]float64)
	for _, row := range table.Rows {
		raw[row.Category] += row.Amounts[column]
	}
	return sectionSums{
		currentAssets:         math.Abs(raw[models.CurrentAssets]),
		nonCurrentAssets:      math.Abs(raw[models.NonCurrentAssets]),
		currentLiabilities:    math.Abs(raw[models.CurrentLiabilities]),
		nonCurrentLiabilities: math.Abs(raw[models.NonCurrentLiabilities]),
		equity:                math.Abs(raw[models.Equity]),
	}
}

// safeDiv avoids division blowups on empty sections. A zero denominator
// yields 0, which reads as "not computable" downstream.
func safeDiv(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// Quick and cash ratios are estimated from current assets because the
// canonical table does not break out inventory or cash line items.
const (
	quickAssetFraction = 0.8
	cashAssetFraction  = 0.3
)

// RatiosFor computes the full RatioSet for one amount column.
func RatiosFor(table *models.CanonicalTable, column string) RatioSet {
	s := sumSections(table, column)

	totalAssets := s.currentAssets + s.nonCurrentAssets
	totalLiabilities := s.currentLiabilities + s.nonCurrentLiabilities

	return RatioSet{
		Period: models.PeriodLabel(column),
		Liquidity: Liquidity{
			CurrentRatio: safeDiv(s.currentAssets, s.currentLiabilities),
			QuickRatio:   safeDiv(s.currentAssets*quickAssetFraction, s.currentLiabilities),
			CashRatio:    safeDiv(s.currentAssets*cashAssetFraction, s.currentLiabilities),
		},
		Leverage: Leverage{
			DebtToEquity: safeDiv(totalLiabilities, s.equity),
			DebtRatio:    safeDiv(totalLiabilities, totalAssets),
			EquityRatio:  safeDiv(s.equity, totalAssets),
		},
		AssetComposition: AssetComposition{
			CurrentAssetsPct:    safeDiv(s.currentAssets, totalAssets) * 100,
			NonCurrentAssetsPct: safeDiv(s.nonCurrentAssets, totalAssets) * 100,
		},
		Totals: Totals{
			TotalAssets:      totalAssets,
			TotalLiabilities: totalLiabilities,
			TotalEquity:      s.equity,
		},
	}
}

// ComputeTrends diffs the two most recent periods. The asset growth
// percentage is only computed when the previous total is positive.
func ComputeTrends(previous, current RatioSet) Trends {
	t := Trends{
		CurrentRatioChange: current.Liquidity.CurrentRatio - previous.Liquidity.CurrentRatio,
		DebtToEquityChange: current.Leverage.DebtToEquity - previous.Leverage.DebtToEquity,
	}
	if previous.Totals.TotalAssets > 0 {
		t.TotalAssetsChangePct = (current.Totals.TotalAssets - previous.Totals.TotalAssets) /
			previous.Totals.TotalAssets * 100
	}
	return t
}

// Analyze runs the whole engine over a canonical table: per-period
// ratios in column order, trends when at least two periods exist, then
// risk, benchmarks, insights, and recommendations off the latest period.
func Analyze(table *models.CanonicalTable) *Analysis {
	a := &Analysis{}
	for _, column := range table.AmountColumns {
		a.Ratios = append(a.Ratios, RatiosFor(table, column))
	}
	// Period labels sort oldest first ("2022" < "2023", "Year_1" <
	// "Year_2"), so the latest period always ends up last even when the
	// source listed the newest column first.
	sort.SliceStable(a.Ratios, func(i, j int) bool {
		return a.Ratios[i].Period < a.Ratios[j].Period
	})
	if len(a.Ratios) >= 2 {
		t := ComputeTrends(a.Ratios[len(a.Ratios)-2], a.Ratios[len(a.Ratios)-1])
		a.Trends = &t
	}

	latest := a.Latest()
	a.Risk = AssessRisk(latest)
	a.Benchmarks = Benchmark(latest)
	a.Insights = Insights(latest, a.Trends)
	a.Recommendations = Recommendations(latest, a.Risk)
	return a
}
