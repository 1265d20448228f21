package llm

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChatModel records the messages and options of each Generate call.
type fakeChatModel struct {
	reply    *schema.Message
	err      error
	messages [][]*schema.Message
	options  []*model.Options
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.messages = append(f.messages, input)
	f.options = append(f.options, model.GetCommonOptions(nil, opts...))
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func TestChatGenerator_SendsPromptAsSingleUserMessage(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("answer", nil)}
	gen := NewChatGeneratorFromModel(fake, Config{Model: "gpt-4o", Temperature: 0.1, MaxTokens: 2048})

	out, err := gen.Generate(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "answer", out)

	require.Len(t, fake.messages, 1)
	require.Len(t, fake.messages[0], 1)
	assert.Equal(t, schema.User, fake.messages[0][0].Role)
	assert.Equal(t, "the prompt", fake.messages[0][0].Content)
}

func TestChatGenerator_FixedOptions(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("ok", nil)}
	gen := NewChatGeneratorFromModel(fake, Config{Model: "gpt-4o", Temperature: 0.1, MaxTokens: 2048})

	for i := 0; i < 2; i++ {
		_, err := gen.Generate(context.Background(), "p")
		require.NoError(t, err)
	}

	require.Len(t, fake.options, 2)
	for _, opts := range fake.options {
		require.NotNil(t, opts.Temperature)
		assert.InDelta(t, 0.1, *opts.Temperature, 1e-6)
		require.NotNil(t, opts.MaxTokens)
		assert.Equal(t, 2048, *opts.MaxTokens)
		require.NotNil(t, opts.Model)
		assert.Equal(t, "gpt-4o", *opts.Model)
	}
}

func TestChatGenerator_AccumulatesUsage(t *testing.T) {
	reply := schema.AssistantMessage("ok", nil)
	reply.ResponseMeta = &schema.ResponseMeta{
		Usage: &schema.TokenUsage{PromptTokens: 100, CompletionTokens: 40, TotalTokens: 140},
	}
	fake := &fakeChatModel{reply: reply}
	gen := NewChatGeneratorFromModel(fake, Config{Model: "gpt-4o"})

	for i := 0; i < 3; i++ {
		_, err := gen.Generate(context.Background(), "p")
		require.NoError(t, err)
	}

	usage := gen.Usage()
	assert.Equal(t, 3, usage.Calls)
	assert.Equal(t, 300, usage.PromptTokens)
	assert.Equal(t, 120, usage.CompletionTokens)
	assert.Greater(t, usage.Cost(gen.Model()), 0.0)
}

func TestChatGenerator_EmptyResponse(t *testing.T) {
	fake := &fakeChatModel{reply: schema.AssistantMessage("  \n", nil)}
	gen := NewChatGeneratorFromModel(fake, Config{Model: "gpt-4o"})

	_, err := gen.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestChatGenerator_TransportErrorPropagates(t *testing.T) {
	cause := errors.New("429 too many requests")
	fake := &fakeChatModel{err: cause}
	gen := NewChatGeneratorFromModel(fake, Config{Model: "gpt-4o"})

	_, err := gen.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Len(t, fake.messages, 1, "no retry on failure")
	assert.Equal(t, 0, gen.Usage().Calls)
}
