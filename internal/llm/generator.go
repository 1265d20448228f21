package llm

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/cockroachdb/errors"
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("empty model response")

// Generator turns one prompt into one completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Usage accumulates token counts reported by the provider.
type Usage struct {
	Calls            int
	PromptTokens     int
	CompletionTokens int
}

// Cost estimates the USD cost of the usage for the given model.
// Returns 0 for models without registry pricing.
func (u Usage) Cost(modelID string) float64 {
	return CalculateCost(modelID, u.PromptTokens, u.CompletionTokens)
}

// ChatGenerator adapts an Eino chat model to Generator.
// Each call sends the prompt as a single user message; the generation
// settings are fixed when the generator is built.
type ChatGenerator struct {
	chatModel model.BaseChatModel
	modelID   string
	opts      []model.Option
	usage     Usage
}

// NewChatGenerator creates the provider chat model described by cfg and wraps it.
func NewChatGenerator(ctx context.Context, cfg Config) (*ChatGenerator, error) {
	chatModel, err := NewChatModel(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create model")
	}
	return NewChatGeneratorFromModel(chatModel, cfg), nil
}

// NewChatGeneratorFromModel wraps an existing chat model.
func NewChatGeneratorFromModel(chatModel model.BaseChatModel, cfg Config) *ChatGenerator {
	opts := []model.Option{model.WithTemperature(cfg.Temperature)}
	if cfg.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(cfg.MaxTokens))
	}
	if cfg.Model != "" {
		opts = append(opts, model.WithModel(cfg.Model))
	}
	return &ChatGenerator{
		chatModel: chatModel,
		modelID:   cfg.Model,
		opts:      opts,
	}
}

// Generate sends prompt to the model and returns the response text.
func (g *ChatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)}, g.opts...)
	if err != nil {
		return "", errors.Wrap(err, "llm generate")
	}
	g.usage.Calls++
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		g.usage.PromptTokens += resp.ResponseMeta.Usage.PromptTokens
		g.usage.CompletionTokens += resp.ResponseMeta.Usage.CompletionTokens
	}
	if strings.TrimSpace(resp.Content) == "" {
		return "", errors.Wrapf(ErrEmptyResponse, "model %s", g.modelID)
	}
	return resp.Content, nil
}

// Usage returns the token usage accumulated so far.
func (g *ChatGenerator) Usage() Usage { return g.usage }

// Model returns the model ID requests are sent to.
func (g *ChatGenerator) Model() string { return g.modelID }
