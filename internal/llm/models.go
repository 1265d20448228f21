package llm

import (
	"strings"
)

// Model describes a chat model the CLI knows defaults and prices for.
type Model struct {
	ID          string   // Canonical model ID (e.g., "gpt-4o")
	ProviderID  string   // Internal provider ID (e.g., "openai")
	Aliases     []string // Dated or alternative IDs
	InputPer1M  float64  // $ per 1M input tokens
	OutputPer1M float64  // $ per 1M output tokens
	IsDefault   bool     // Default model for its provider
}

// ModelRegistry lists the models with known defaults and pricing.
// Unknown models still work; they simply have no cost estimate.
// Prices last updated: 2025-12
var ModelRegistry = []Model{
	// OpenAI
	{ID: "gpt-4o", ProviderID: ProviderOpenAI, Aliases: []string{"gpt-4o-2024-08-06"}, InputPer1M: 2.50, OutputPer1M: 10.00, IsDefault: true},
	{ID: "gpt-4o-mini", ProviderID: ProviderOpenAI, Aliases: []string{"gpt-4o-mini-2024-07-18"}, InputPer1M: 0.15, OutputPer1M: 0.60},
	{ID: "gpt-4.1-mini", ProviderID: ProviderOpenAI, Aliases: []string{"gpt-4.1-mini-2025-04-14"}, InputPer1M: 0.15, OutputPer1M: 0.60},
	{ID: "gpt-4-turbo", ProviderID: ProviderOpenAI, Aliases: []string{"gpt-4-turbo-preview"}, InputPer1M: 10.00, OutputPer1M: 30.00},

	// Anthropic
	{ID: "claude-3-5-sonnet-latest", ProviderID: ProviderAnthropic, Aliases: []string{"claude-3-5-sonnet-20241022"}, InputPer1M: 3.00, OutputPer1M: 15.00, IsDefault: true},
	{ID: "claude-3-5-haiku-latest", ProviderID: ProviderAnthropic, Aliases: []string{"claude-3-5-haiku-20241022"}, InputPer1M: 0.80, OutputPer1M: 4.00},
	{ID: "claude-3-opus-latest", ProviderID: ProviderAnthropic, Aliases: []string{"claude-3-opus-20240229"}, InputPer1M: 15.00, OutputPer1M: 75.00},

	// Google
	{ID: "gemini-2.0-flash", ProviderID: ProviderGemini, InputPer1M: 0.10, OutputPer1M: 0.40, IsDefault: true},
	{ID: "gemini-1.5-pro", ProviderID: ProviderGemini, InputPer1M: 1.25, OutputPer1M: 5.00},

	// Ollama (local)
	{ID: "llama3.2", ProviderID: ProviderOllama, IsDefault: true},
	{ID: "mistral", ProviderID: ProviderOllama},
}

// modelIndex is built at init time for fast lookups
var modelIndex map[string]*Model

func init() {
	buildModelIndex()
}

func buildModelIndex() {
	modelIndex = make(map[string]*Model)
	for i := range ModelRegistry {
		m := &ModelRegistry[i]
		modelIndex[m.ID] = m
		for _, alias := range m.Aliases {
			modelIndex[alias] = m
		}
	}
}

// GetModel returns the model definition for a given model ID or alias.
// Returns nil if the model is not found.
func GetModel(modelID string) *Model {
	return modelIndex[modelID]
}

// GetDefaultModelID returns the default model ID for a provider.
func GetDefaultModelID(providerID string) string {
	for i := range ModelRegistry {
		if m := &ModelRegistry[i]; m.ProviderID == providerID && m.IsDefault {
			return m.ID
		}
	}
	return ""
}

// InferProvider attempts to determine the provider from a model name.
// Returns the provider ID and true if inference succeeded.
func InferProvider(modelID string) (string, bool) {
	if m := GetModel(modelID); m != nil {
		return m.ProviderID, true
	}

	switch {
	case strings.HasPrefix(modelID, "gpt-"), strings.HasPrefix(modelID, "o1-"), strings.HasPrefix(modelID, "o3-"):
		return ProviderOpenAI, true
	case strings.HasPrefix(modelID, "claude-"):
		return ProviderAnthropic, true
	case strings.HasPrefix(modelID, "gemini-"):
		return ProviderGemini, true
	case strings.HasPrefix(modelID, "llama"), strings.HasPrefix(modelID, "mistral"), strings.HasPrefix(modelID, "phi"):
		return ProviderOllama, true
	}

	return "", false
}

// CalculateCost calculates cost in USD for token usage.
func CalculateCost(modelID string, inputTokens, outputTokens int) float64 {
	m := GetModel(modelID)
	if m == nil {
		return 0
	}
	inputCost := float64(inputTokens) / 1_000_000 * m.InputPer1M
	outputCost := float64(outputTokens) / 1_000_000 * m.OutputPer1M
	return inputCost + outputCost
}
