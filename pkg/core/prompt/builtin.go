package prompt

// Built-in templates ship in code so the registry works without a
// prompt directory on disk. LoadFromDirectory can override them by ID.

// SummaryExecutiveID renders the executive summary request sent to the
// narrative provider. Figure variables arrive pre-formatted as strings.
const SummaryExecutiveID = "summary.executive"

// ClassifyAccountsID asks the model to bucket account names that the
// keyword rules could not place.
const ClassifyAccountsID = "classify.accounts"

var builtins = []*PromptTemplate{
	{
		ID:       SummaryExecutiveID,
		Name:     "Executive Summary",
		Category: "summary",
		Description: "Narrative summary of one period's balance sheet analysis " +
			"for an executive audience.",
		UserPromptTmpl: `You are a financial analyst. Summarize the following balance sheet analysis in clear, professional language for an executive audience:
Year: {{.Year}}
Current Ratio: {{.CurrentRatio}}
Debt-to-Equity Ratio: {{.DebtToEquity}}
Total Assets: {{.TotalAssets}}
Current Assets %: {{.CurrentAssetsPct}}
Non-Current Assets %: {{.NonCurrentAssetsPct}}
Key Insights: {{.KeyInsights}}`,
		Variables: []PromptVariable{
			{Name: "Year", Type: "string", Required: true},
			{Name: "CurrentRatio", Type: "string", Required: true},
			{Name: "DebtToEquity", Type: "string", Required: true},
			{Name: "TotalAssets", Type: "string", Required: true},
			{Name: "CurrentAssetsPct", Type: "string", Required: true},
			{Name: "NonCurrentAssetsPct", Type: "string", Required: true},
			{Name: "KeyInsights", Type: "string", Required: false},
		},
		Version: "1",
	},
	{
		ID:       ClassifyAccountsID,
		Name:     "Account Classification Assist",
		Category: "classify",
		Description: "Constrained-choice classification of account names " +
			"into the canonical category vocabulary.",
		SystemPrompt: "You are a balance sheet classification engine.\n" +
			"You respond ONLY with a JSON object and no other text.",
		Version: "1",
	},
}

// RegisterBuiltins installs the built-in templates into the global
// registry. Safe to call more than once.
func RegisterBuiltins() {
	r := Get()
	for _, pt := range builtins {
		r.Register(pt)
	}
}

// MustGetSummaryPrompt returns the executive summary template, loading
// builtins on demand.
func MustGetSummaryPrompt() *PromptTemplate {
	r := Get()
	pt, err := r.GetPrompt(SummaryExecutiveID)
	if err != nil {
		RegisterBuiltins()
		pt, _ = r.GetPrompt(SummaryExecutiveID)
	}
	return pt
}
