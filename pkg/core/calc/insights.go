package calc

import "fmt"

// =============================================================================
// INSIGHTS & RECOMMENDATIONS
// =============================================================================

// Insights renders deterministic observations for the latest period.
// Trend observations are added only when two periods were available.
func Insights(latest RatioSet, trends *Trends) []string {
	var insights []string

	cr := latest.Liquidity.CurrentRatio
	if cr > 2 {
		insights = append(insights, fmt.Sprintf(
			"**Strong Liquidity**: Current ratio of %.2f indicates excellent ability to meet short-term obligations.", cr))
	} else if cr > 1 {
		insights = append(insights, fmt.Sprintf(
			"**Adequate Liquidity**: Current ratio of %.2f shows reasonable liquidity position.", cr))
	} else {
		insights = append(insights, fmt.Sprintf(
			"**Liquidity Concern**: Current ratio of %.2f suggests potential difficulty meeting short-term obligations.", cr))
	}

	dte := latest.Leverage.DebtToEquity
	if dte < 0.5 {
		insights = append(insights, fmt.Sprintf(
			"**Conservative Leverage**: Debt-to-equity ratio of %.2f indicates low financial risk.", dte))
	} else if dte < 1 {
		insights = append(insights, fmt.Sprintf(
			"**Moderate Leverage**: Debt-to-equity ratio of %.2f shows balanced capital structure.", dte))
	} else {
		insights = append(insights, fmt.Sprintf(
			"**High Leverage**: Debt-to-equity ratio of %.2f suggests high financial risk.", dte))
	}

	caPct := latest.AssetComposition.CurrentAssetsPct
	if caPct > 60 {
		insights = append(insights, fmt.Sprintf(
			"**Asset Structure**: %.1f%% of assets are current, indicating high liquidity focus.", caPct))
	} else if caPct < 30 {
		insights = append(insights, fmt.Sprintf(
			"**Asset Structure**: %.1f%% of assets are current, showing emphasis on long-term investments.", caPct))
	}

	if trends != nil {
		if trends.CurrentRatioChange > 0.1 {
			insights = append(insights, "**Improving Liquidity**: Current ratio has improved significantly year-over-year.")
		} else if trends.CurrentRatioChange < -0.1 {
			insights = append(insights, "**Declining Liquidity**: Current ratio has deteriorated year-over-year.")
		}

		if trends.TotalAssetsChangePct > 10 {
			insights = append(insights, fmt.Sprintf(
				"**Strong Growth**: Total assets increased by %.1f%% indicating business expansion.", trends.TotalAssetsChangePct))
		} else if trends.TotalAssetsChangePct < -5 {
			insights = append(insights, fmt.Sprintf(
				"**Asset Decline**: Total assets decreased by %.1f%% requiring attention.", -trends.TotalAssetsChangePct))
		}
	}

	return insights
}

// Recommendations renders actionable guidance from the latest ratios and
// the risk assessment.
func Recommendations(latest RatioSet, risk RiskAssessment) []string {
	var recs []string

	cr := latest.Liquidity.CurrentRatio
	if cr < 1 {
		recs = append(recs, "**Critical**: Improve liquidity immediately by increasing current assets or reducing short-term liabilities")
	} else if cr < 1.5 {
		recs = append(recs, "**Important**: Consider building cash reserves or extending payment terms with suppliers")
	} else if cr > 3 {
		recs = append(recs, "**Optimization**: High liquidity - consider investing excess cash in growth opportunities")
	}

	dte := latest.Leverage.DebtToEquity
	if dte > 2 {
		recs = append(recs, "**Critical**: High leverage poses significant financial risk - consider debt reduction strategies")
	} else if dte > 1 {
		recs = append(recs, "**Monitor**: Moderate leverage - monitor debt service capabilities closely")
	} else if dte < 0.3 {
		recs = append(recs, "**Growth**: Conservative leverage - potential to use more debt for profitable growth")
	}

	caRatio := latest.AssetComposition.CurrentAssetsPct / 100
	if caRatio > 0.7 {
		recs = append(recs, "**Strategy**: High current assets ratio - evaluate long-term investment opportunities")
	} else if caRatio < 0.3 {
		recs = append(recs, "**Balance**: Low current assets - ensure adequate working capital for operations")
	}

	switch risk.OverallRisk {
	case RiskHigh:
		recs = append(recs, "**Priority**: High overall risk detected - implement comprehensive financial restructuring plan")
	case RiskMedium:
		recs = append(recs, "**Action**: Moderate risk - develop contingency plans and monitor key metrics closely")
	}

	return recs
}
