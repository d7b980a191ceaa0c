package calc

// =============================================================================
// RATIO & RISK ENGINE TYPES
// =============================================================================

// Totals are category sums for one period. Liability and equity amounts
// are summed as absolute values, so totals are always non-negative.
type Totals struct {
	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	TotalEquity      float64 `json:"total_equity"`
}

// Liquidity ratios measure short-term payment capacity.
type Liquidity struct {
	CurrentRatio float64 `json:"current_ratio"`
	QuickRatio   float64 `json:"quick_ratio"`
	CashRatio    float64 `json:"cash_ratio"`
}

// Leverage ratios measure the capital structure.
type Leverage struct {
	DebtToEquity float64 `json:"debt_to_equity"`
	DebtRatio    float64 `json:"debt_ratio"`
	EquityRatio  float64 `json:"equity_ratio"`
}

// AssetComposition splits total assets between current and non-current,
// expressed in percent.
type AssetComposition struct {
	CurrentAssetsPct    float64 `json:"current_assets_pct"`
	NonCurrentAssetsPct float64 `json:"non_current_assets_pct"`
}

// RatioSet carries every computed metric for one period.
type RatioSet struct {
	Period           string           `json:"period"`
	Liquidity        Liquidity        `json:"liquidity_ratios"`
	Leverage         Leverage         `json:"leverage_ratios"`
	AssetComposition AssetComposition `json:"asset_composition"`
	Totals           Totals           `json:"totals"`
}

// Trends are simple deltas between the two most recent periods.
type Trends struct {
	CurrentRatioChange   float64 `json:"current_ratio_change"`
	DebtToEquityChange   float64 `json:"debt_to_equity_change"`
	TotalAssetsChangePct float64 `json:"total_assets_change_pct"`
}

// RiskLevel is the qualitative outcome of a risk check.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// RiskAssessment is the bounded 0-100 score plus per-dimension levels.
type RiskAssessment struct {
	LiquidityRisk   RiskLevel `json:"liquidity_risk"`
	SolvencyRisk    RiskLevel `json:"solvency_risk"`
	OperationalRisk RiskLevel `json:"operational_risk"`
	OverallRisk     RiskLevel `json:"overall_risk"`
	RiskScore       int       `json:"risk_score"`
}

// BenchmarkResult grades one ratio against industry reference bands.
type BenchmarkResult struct {
	Status string `json:"status"`
	Color  string `json:"color"`
}

// BenchmarkReport covers the benchmarked ratios.
type BenchmarkReport struct {
	CurrentRatio BenchmarkResult `json:"current_ratio"`
	DebtToEquity BenchmarkResult `json:"debt_to_equity"`
}

// Analysis bundles everything the engine produces for one table.
type Analysis struct {
	Ratios          []RatioSet      `json:"ratios"` // one per period, oldest first
	Trends          *Trends         `json:"trends,omitempty"`
	Risk            RiskAssessment  `json:"risk"`
	Benchmarks      BenchmarkReport `json:"benchmarks"`
	Insights        []string        `json:"insights"`
	Recommendations []string        `json:"recommendations"`
}

// Latest returns the RatioSet for the most recent period, or a zero set.
func (a *Analysis) Latest() RatioSet {
	if len(a.Ratios) == 0 {
		return RatioSet{}
	}
	return a.Ratios[len(a.Ratios)-1]
}
