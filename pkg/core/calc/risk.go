package calc

// =============================================================================
// RISK SCORING & BENCHMARKS
// =============================================================================

// Industry reference bands. Current ratio grades upward (higher is
// better), debt-to-equity grades downward.
var (
	currentRatioBands = struct{ excellent, good, acceptable float64 }{2.0, 1.5, 1.0}
	debtToEquityBands = struct{ excellent, good, acceptable float64 }{0.3, 0.5, 1.0}
)

// AssessRisk scores one period on a 0-100 scale, higher meaning riskier.
// Liquidity contributes up to 30 points, solvency up to 25.
func AssessRisk(r RatioSet) RiskAssessment {
	out := RiskAssessment{
		LiquidityRisk:   RiskLow,
		SolvencyRisk:    RiskLow,
		OperationalRisk: RiskLow,
		OverallRisk:     RiskLow,
	}

	score := 0

	cr := r.Liquidity.CurrentRatio
	if cr < 1 {
		out.LiquidityRisk = RiskHigh
		score += 30
	} else if cr < 1.5 {
		out.LiquidityRisk = RiskMedium
		score += 15
	}

	dte := r.Leverage.DebtToEquity
	if dte > 2 {
		out.SolvencyRisk = RiskHigh
		score += 25
	} else if dte > 1 {
		out.SolvencyRisk = RiskMedium
		score += 12
	}

	if score > 100 {
		score = 100
	}
	out.RiskScore = score

	if score > 50 {
		out.OverallRisk = RiskHigh
	} else if score > 25 {
		out.OverallRisk = RiskMedium
	}
	return out
}

// Benchmark grades the period's headline ratios against the reference
// bands.
func Benchmark(r RatioSet) BenchmarkReport {
	report := BenchmarkReport{}

	cr := r.Liquidity.CurrentRatio
	switch {
	case cr >= currentRatioBands.excellent:
		report.CurrentRatio = BenchmarkResult{Status: "Excellent", Color: "green"}
	case cr >= currentRatioBands.good:
		report.CurrentRatio = BenchmarkResult{Status: "Good", Color: "yellow"}
	case cr >= currentRatioBands.acceptable:
		report.CurrentRatio = BenchmarkResult{Status: "Acceptable", Color: "orange"}
	default:
		report.CurrentRatio = BenchmarkResult{Status: "Below Standard", Color: "red"}
	}

	dte := r.Leverage.DebtToEquity
	switch {
	case dte <= debtToEquityBands.excellent:
		report.DebtToEquity = BenchmarkResult{Status: "Excellent", Color: "green"}
	case dte <= debtToEquityBands.good:
		report.DebtToEquity = BenchmarkResult{Status: "Good", Color: "yellow"}
	case dte <= debtToEquityBands.acceptable:
		report.DebtToEquity = BenchmarkResult{Status: "Acceptable", Color: "orange"}
	default:
		report.DebtToEquity = BenchmarkResult{Status: "Above Recommended", Color: "red"}
	}

	return report
}
