package translator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// MockModel is a concurrency-safe mock for llms.Model. When respond is
// set it derives the reply from the incoming messages, otherwise the
// fixed response/err pair is used.
type MockModel struct {
	mu        sync.Mutex
	response  string
	err       error
	respond   func(messages []llms.MessageContent) (string, error)
	lastOpts  llms.CallOptions
	callCount int
}

func (m *MockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	m.mu.Lock()
	m.callCount++
	m.lastOpts = opts
	response, err := m.response, m.err
	respond := m.respond
	m.mu.Unlock()

	if respond != nil {
		response, err = respond(messages)
	}
	if err != nil {
		return nil, err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: response},
		},
	}, nil
}

func (m *MockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", nil
}

func (m *MockModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func (m *MockModel) options() llms.CallOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastOpts
}

// humanText extracts the text of the first human message, i.e. the
// source text of the translation prompt.
func humanText(messages []llms.MessageContent) string {
	for _, msg := range messages {
		if msg.Role != schema.ChatMessageTypeHuman {
			continue
		}
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				return text.Text
			}
		}
	}
	return ""
}

func TestTranslate(t *testing.T) {
	model := &MockModel{response: "Bonjour, le monde!"}
	svc := NewLLMService(model, WithProviderName("groq"))

	out, err := svc.Translate(context.Background(), "Hello, world!", "French")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour, le monde!", out)
	assert.Equal(t, 1, model.calls())
}

func TestTranslate_WrapsProviderError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	model := &MockModel{err: cause}
	svc := NewLLMService(model, WithProviderName("groq"))

	_, err := svc.Translate(context.Background(), "Hello", "French")
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "groq", perr.Provider)
	assert.ErrorIs(t, err, cause)
}

func TestTranslate_SingleAttempt(t *testing.T) {
	model := &MockModel{err: errors.New("boom")}
	svc := NewLLMService(model)

	_, err := svc.Translate(context.Background(), "Hello", "French")
	require.Error(t, err)

	// No retries: exactly one provider call per Translate.
	assert.Equal(t, 1, model.calls())
}

func TestTranslate_PassesGenerationParameters(t *testing.T) {
	model := &MockModel{response: "ok"}
	svc := NewLLMService(model, WithTemperature(0.2), WithMaxTokens(128))

	_, err := svc.Translate(context.Background(), "Hello", "Spanish")
	require.NoError(t, err)

	opts := model.options()
	assert.Equal(t, 0.2, opts.Temperature)
	assert.Equal(t, 128, opts.MaxTokens)
}

func TestProvider_DefaultName(t *testing.T) {
	svc := NewLLMService(&MockModel{response: "ok"})
	assert.Equal(t, "llm", svc.Provider())
}
