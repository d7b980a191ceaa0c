package classify

import (
	"context"
	"fmt"
	"strings"

	"balance_insight/pkg/core/prompt"
	"balance_insight/pkg/core/utils"
	"balance_insight/pkg/models"
)

// Completer is the minimal text-generation surface the assist classifier
// needs. Satisfied by llm.Provider.
type Completer interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	AdaptInstructions(rawInstructions string) string
}

// assistSystemPrompt resolves the system prompt from the registry so
// deployments can override it from a prompt directory. Built-ins are
// loaded on demand without clobbering a disk override.
func assistSystemPrompt() string {
	system, err := prompt.Get().GetSystemPrompt(prompt.ClassifyAccountsID)
	if err != nil {
		prompt.RegisterBuiltins()
		system, err = prompt.Get().GetSystemPrompt(prompt.ClassifyAccountsID)
	}
	if err != nil {
		return "You respond ONLY with a JSON object and no other text."
	}
	return system
}

// Assist asks a language model to classify account names that the
// keyword rules could not place. It never overrides a deterministic
// classification: callers pass only names that came back Unknown.
//
// The model must choose from the closed canonical vocabulary; any answer
// outside it is discarded and the account stays Unknown. Errors degrade
// to an empty result so the pipeline keeps working without a model.
func Assist(ctx context.Context, provider Completer, unknowns []string) map[string]models.Category {
	resolved := make(map[string]models.Category)
	if provider == nil || len(unknowns) == 0 {
		return resolved
	}

	var sb strings.Builder
	sb.WriteString("Classify each balance sheet account into exactly one of these categories:\n")
	for _, cat := range models.CanonicalCategories {
		fmt.Fprintf(&sb, "- %s\n", cat)
	}
	sb.WriteString("\nAccounts:\n")
	for _, name := range unknowns {
		fmt.Fprintf(&sb, "- %s\n", name)
	}
	sb.WriteString("\nRespond with a JSON object mapping each account name to its category.")

	system := provider.AdaptInstructions(assistSystemPrompt())
	raw, err := provider.GenerateResponse(ctx, sb.String(), system, nil)
	if err != nil {
		fmt.Printf("[Classifier] Assist call failed, accounts stay Unknown: %v\n", err)
		return resolved
	}

	var answers map[string]string
	if _, err := utils.SmartParse(raw, &answers); err != nil {
		fmt.Printf("[Classifier] Assist response unparseable, accounts stay Unknown: %v\n", err)
		return resolved
	}

	for name, label := range answers {
		cat := StandardizeCategory(label)
		if cat.IsCanonical() {
			resolved[name] = cat
		}
	}
	return resolved
}
