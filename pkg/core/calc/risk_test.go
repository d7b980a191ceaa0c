package calc

import (
	"strings"
	"testing"
)

func ratioSet(cr, dte float64) RatioSet {
	return RatioSet{
		Liquidity: Liquidity{CurrentRatio: cr},
		Leverage:  Leverage{DebtToEquity: dte},
	}
}

func TestAssessRisk(t *testing.T) {
	cases := []struct {
		cr, dte   float64
		score     int
		liquidity RiskLevel
		solvency  RiskLevel
		overall   RiskLevel
	}{
		// cr < 1 => +30, dte > 2 => +25, score 55 => High
		{0.8, 2.5, 55, RiskHigh, RiskHigh, RiskHigh},
		// cr < 1.5 => +15, dte > 1 => +12, score 27 => Medium
		{1.2, 1.5, 27, RiskMedium, RiskMedium, RiskMedium},
		// healthy sheet scores 0
		{3.0, 0.2, 0, RiskLow, RiskLow, RiskLow},
		// boundary: cr exactly 1.5 and dte exactly 1 add nothing
		{1.5, 1.0, 0, RiskLow, RiskLow, RiskLow},
		// liquidity alone: score 30 => Medium overall
		{0.5, 0.5, 30, RiskHigh, RiskLow, RiskMedium},
	}

	for _, c := range cases {
		got := AssessRisk(ratioSet(c.cr, c.dte))
		if got.RiskScore != c.score {
			t.Errorf("cr=%v dte=%v score = %d, want %d", c.cr, c.dte, got.RiskScore, c.score)
		}
		if got.LiquidityRisk != c.liquidity || got.SolvencyRisk != c.solvency || got.OverallRisk != c.overall {
			t.Errorf("cr=%v dte=%v levels = %s/%s/%s, want %s/%s/%s",
				c.cr, c.dte, got.LiquidityRisk, got.SolvencyRisk, got.OverallRisk,
				c.liquidity, c.solvency, c.overall)
		}
		if got.RiskScore < 0 || got.RiskScore > 100 {
			t.Errorf("score %d out of bounds", got.RiskScore)
		}
	}
}

func TestBenchmark(t *testing.T) {
	cases := []struct {
		cr, dte   float64
		crStatus  string
		dteStatus string
	}{
		{2.0, 0.3, "Excellent", "Excellent"},
		{1.8, 0.5, "Good", "Good"},
		{1.0, 1.0, "Acceptable", "Acceptable"},
		{0.9, 1.1, "Below Standard", "Above Recommended"},
	}

	for _, c := range cases {
		got := Benchmark(ratioSet(c.cr, c.dte))
		if got.CurrentRatio.Status != c.crStatus {
			t.Errorf("cr=%v status = %q, want %q", c.cr, got.CurrentRatio.Status, c.crStatus)
		}
		if got.DebtToEquity.Status != c.dteStatus {
			t.Errorf("dte=%v status = %q, want %q", c.dte, got.DebtToEquity.Status, c.dteStatus)
		}
	}
}

func TestInsightsThresholds(t *testing.T) {
	r := ratioSet(3.0, 0.2)
	r.AssetComposition.CurrentAssetsPct = 75

	insights := Insights(r, nil)

	wantFragments := []string{"Strong Liquidity", "Conservative Leverage", "Asset Structure"}
	for _, frag := range wantFragments {
		found := false
		for _, in := range insights {
			if strings.Contains(in, frag) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing insight %q in %v", frag, insights)
		}
	}
}

func TestInsightsTrendSignals(t *testing.T) {
	r := ratioSet(1.5, 0.7)
	trends := &Trends{CurrentRatioChange: 0.2, TotalAssetsChangePct: 12}

	insights := Insights(r, trends)

	joined := strings.Join(insights, "\n")
	if !strings.Contains(joined, "Improving Liquidity") {
		t.Errorf("expected improving liquidity signal, got %v", insights)
	}
	if !strings.Contains(joined, "Strong Growth") {
		t.Errorf("expected growth signal, got %v", insights)
	}

	trends = &Trends{CurrentRatioChange: -0.2, TotalAssetsChangePct: -8}
	joined = strings.Join(Insights(r, trends), "\n")
	if !strings.Contains(joined, "Declining Liquidity") || !strings.Contains(joined, "Asset Decline") {
		t.Errorf("expected decline signals, got %q", joined)
	}

	// Small moves stay quiet.
	trends = &Trends{CurrentRatioChange: 0.05, TotalAssetsChangePct: 3}
	joined = strings.Join(Insights(r, trends), "\n")
	if strings.Contains(joined, "Improving") || strings.Contains(joined, "Growth") {
		t.Errorf("unexpected trend signal for small moves: %q", joined)
	}
}

func TestRecommendations(t *testing.T) {
	// Distressed sheet triggers both critical recommendations plus the
	// restructuring one (risk score 55 => High).
	r := ratioSet(0.8, 2.5)
	recs := Recommendations(r, AssessRisk(r))

	joined := strings.Join(recs, "\n")
	for _, frag := range []string{"Improve liquidity immediately", "debt reduction", "restructuring"} {
		if !strings.Contains(joined, frag) {
			t.Errorf("missing recommendation %q in %q", frag, joined)
		}
	}

	// Conservative sheet gets growth-oriented guidance instead.
	r = ratioSet(3.5, 0.1)
	joined = strings.Join(Recommendations(r, AssessRisk(r)), "\n")
	if !strings.Contains(joined, "investing excess cash") || !strings.Contains(joined, "more debt for profitable growth") {
		t.Errorf("missing conservative guidance in %q", joined)
	}
}
