package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/josephgoksu/selfdiscover/internal/llm"
	"github.com/spf13/viper"
)

// LoadLLMConfig loads LLM configuration from Viper and Environment variables.
// It handles precedence: Explicit Viper Config > Environment Variables > Defaults.
// An empty llm.provider is inferred from llm.model, then falls back to DefaultProvider.
func LoadLLMConfig() (llm.Config, error) {
	// 1. Provider
	model := strings.TrimSpace(viper.GetString("llm.model"))
	provider := strings.TrimSpace(viper.GetString("llm.provider"))
	if provider == "" && model != "" {
		if inferred, ok := llm.InferProviderFromModel(model); ok {
			provider = inferred
		}
	}
	if provider == "" {
		provider = llm.DefaultProvider
	}

	llmProvider, err := llm.ValidateProvider(provider)
	if err != nil {
		return llm.Config{}, fmt.Errorf("invalid provider: %w", err)
	}

	// 2. Model
	if model == "" {
		model = llm.DefaultModelForProvider(string(llmProvider))
	}

	// 3. Generation settings
	temperature := viper.GetFloat64("llm.temperature")
	if temperature < 0 || temperature > 2 {
		return llm.Config{}, fmt.Errorf("llm.temperature must be between 0 and 2, got %v", temperature)
	}
	maxTokens := viper.GetInt("llm.maxTokens")
	if maxTokens < 1 {
		return llm.Config{}, fmt.Errorf("llm.maxTokens must be at least 1, got %d", maxTokens)
	}

	// 4. Base URL (Ollama or Custom)
	baseURL := strings.TrimSpace(viper.GetString("llm.baseURL"))
	if baseURL == "" && llmProvider == llm.ProviderOllama {
		baseURL = llm.DefaultOllamaURL
	}

	return llm.Config{
		Provider:    llmProvider,
		Model:       model,
		APIKey:      ResolveAPIKey(llmProvider),
		BaseURL:     baseURL,
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
	}, nil
}

// ResolveAPIKey returns the best API key for the given provider using
// per-provider config keys, then provider-specific env vars.
func ResolveAPIKey(provider llm.Provider) string {
	if viper.IsSet(fmt.Sprintf("llm.apiKeys.%s", provider)) {
		if key := strings.TrimSpace(viper.GetString(fmt.Sprintf("llm.apiKeys.%s", provider))); key != "" {
			return key
		}
	}
	return providerEnvKey(provider)
}

// APIKeyEnvVar names the environment variable a provider's key is read from.
func APIKeyEnvVar(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case llm.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case llm.ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

func providerEnvKey(provider llm.Provider) string {
	envVar := APIKeyEnvVar(provider)
	if envVar == "" {
		return ""
	}
	key := strings.TrimSpace(os.Getenv(envVar))
	if key == "" && provider == llm.ProviderGemini {
		key = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
	}
	return key
}
