// Package llm provides a unified interface for LLM providers using CloudWeGo Eino.
package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

// Provider identifies the LLM provider to use.
type Provider string

// ErrMissingAPIKey is returned when a hosted provider is selected without a credential.
var ErrMissingAPIKey = errors.New("API key is required")

// Config holds configuration for creating an LLM client.
type Config struct {
	Provider    Provider
	Model       string
	APIKey      string  // Required for hosted providers
	BaseURL     string  // Ollama server or OpenAI-compatible endpoint
	Temperature float32 // Applied to every call
	MaxTokens   int     // Applied to every call
}

// NewChatModel creates a ChatModel instance based on the provider configuration.
// It returns an Eino BaseChatModel that can be used for Generate() or Stream() calls.
func NewChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, missingKey(cfg.Provider, "OPENAI_API_KEY")
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:   cfg.Model,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
		})

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		// Ollama ignores model.WithMaxTokens; the limit travels as num_predict.
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   cfg.Model,
			Options: &ollama.Options{
				Temperature: cfg.Temperature,
				NumPredict:  cfg.MaxTokens,
			},
		})

	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, missingKey(cfg.Provider, "ANTHROPIC_API_KEY")
		}
		return claude.NewChatModel(ctx, &claude.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		})

	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, missingKey(cfg.Provider, "GEMINI_API_KEY")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, errors.Wrap(err, "create gemini client")
		}
		return gemini.NewChatModel(ctx, &gemini.Config{
			Client: client,
			Model:  cfg.Model,
		})

	default:
		return nil, errors.Newf("unsupported LLM provider: %s (supported: openai, ollama, anthropic, gemini)", cfg.Provider)
	}
}

func missingKey(provider Provider, envVar string) error {
	return errors.WithHintf(
		errors.Wrapf(ErrMissingAPIKey, "%s", provider),
		"set %s in the environment or in a local .env file", envVar,
	)
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (Provider, error) {
	switch Provider(p) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderOllama:
		return ProviderOllama, nil
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderGemini:
		return ProviderGemini, nil
	default:
		return "", errors.Newf("unsupported provider: %s", p)
	}
}
