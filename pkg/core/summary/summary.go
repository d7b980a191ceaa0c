// Package summary turns an analysis into narrative text: a
// model-generated executive summary with a deterministic fallback.
package summary

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"balance_insight/pkg/core/calc"
	"balance_insight/pkg/core/llm"
	"balance_insight/pkg/core/prompt"
	"balance_insight/pkg/core/utils"
)

// defaultTimeout bounds the narrative call. The pipeline never waits
// longer than this for a model.
const defaultTimeout = 30 * time.Second

// Generator produces narrative summaries through an LLM provider.
type Generator struct {
	Provider llm.Provider
	Timeout  time.Duration
}

// NewGenerator wires a generator with the default timeout.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{Provider: provider, Timeout: defaultTimeout}
}

// Generate returns narrative text for the latest period. It always
// returns displayable text: on provider error, timeout, or missing
// provider the deterministic executive summary is returned instead, so
// a model outage never halts the pipeline.
func (g *Generator) Generate(ctx context.Context, analysis *calc.Analysis) string {
	fallback := ExecutiveSummary(analysis)
	if g == nil || g.Provider == nil || len(analysis.Ratios) == 0 {
		return fallback
	}

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	userPrompt, err := buildPrompt(analysis)
	if err != nil {
		fmt.Printf("[Summary] Prompt rendering failed, using fallback: %v\n", err)
		return fallback
	}

	text, err := g.Provider.GenerateResponse(ctx, userPrompt, "", nil)
	if err != nil {
		fmt.Printf("[Summary] Narrative generation failed, using fallback: %v\n", err)
		return fallback
	}

	cleaned := utils.CleanMarkdown(text)
	if cleaned == "" || !utils.ValidateMarkdown(cleaned) {
		fmt.Println("[Summary] Narrative came back empty, using fallback")
		return fallback
	}
	return cleaned
}

// buildPrompt renders the executive summary request with the six key
// figures and the top insights.
func buildPrompt(analysis *calc.Analysis) (string, error) {
	latest := analysis.Latest()

	topInsights := analysis.Insights
	if len(topInsights) > 3 {
		topInsights = topInsights[:3]
	}

	pt := prompt.MustGetSummaryPrompt()
	ctx := prompt.NewContext().
		Set("Year", latest.Period).
		Set("CurrentRatio", fmt.Sprintf("%.2f", latest.Liquidity.CurrentRatio)).
		Set("DebtToEquity", fmt.Sprintf("%.2f", latest.Leverage.DebtToEquity)).
		Set("TotalAssets", FormatCurrency(latest.Totals.TotalAssets)).
		Set("CurrentAssetsPct", fmt.Sprintf("%.1f%%", latest.AssetComposition.CurrentAssetsPct)).
		Set("NonCurrentAssetsPct", fmt.Sprintf("%.1f%%", latest.AssetComposition.NonCurrentAssetsPct)).
		Set("KeyInsights", strings.Join(topInsights, "; "))

	return prompt.RenderUserPrompt(pt, ctx)
}

// ExecutiveSummary renders the deterministic markdown report. Also used
// directly by the export path.
func ExecutiveSummary(analysis *calc.Analysis) string {
	if len(analysis.Ratios) == 0 {
		return "Insufficient data for executive summary generation."
	}
	latest := analysis.Latest()

	parts := []string{
		fmt.Sprintf("# Executive Summary - Financial Year %s", latest.Period),
		"",
		"## Financial Position Overview",
		fmt.Sprintf("- **Liquidity Position**: Current Ratio of %.2f", latest.Liquidity.CurrentRatio),
		fmt.Sprintf("- **Leverage Position**: Debt-to-Equity Ratio of %.2f", latest.Leverage.DebtToEquity),
		fmt.Sprintf("- **Total Assets**: %s", FormatCurrency(latest.Totals.TotalAssets)),
		"",
		"## Key Insights",
	}

	insights := analysis.Insights
	if len(insights) > 5 {
		insights = insights[:5]
	}
	for i, insight := range insights {
		// Strip the bold lead-in so the numbered list reads cleanly.
		clean := insight
		if idx := strings.LastIndex(insight, "**"); idx >= 0 {
			clean = strings.TrimSpace(strings.TrimPrefix(insight[idx:], "**"))
			clean = strings.TrimPrefix(clean, ": ")
		}
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, clean))
	}

	if analysis.Trends != nil {
		parts = append(parts,
			"",
			"## Year-over-Year Trends",
			fmt.Sprintf("- Current Ratio Change: %+.2f", analysis.Trends.CurrentRatioChange),
			fmt.Sprintf("- Total Assets Growth: %+.1f%%", analysis.Trends.TotalAssetsChangePct),
		)
	}

	return strings.Join(parts, "\n")
}

// FormatCurrency renders a dollar figure with thousands separators and
// no decimals ("$1,234,568").
func FormatCurrency(value float64) string {
	negative := value < 0
	digits := strconv.FormatFloat(value, 'f', 0, 64)
	digits = strings.TrimPrefix(digits, "-")

	var sb strings.Builder
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(ch)
	}
	if negative {
		return "-$" + sb.String()
	}
	return "$" + sb.String()
}
