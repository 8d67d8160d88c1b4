// Package translator implements the translation service: a thin LLM
// layer that turns model failures into typed errors, and a service
// layer that validates requests and assembles responses.
package translator

import (
	"context"

	"github.com/tmc/langchaingo/llms"

	"github.com/smallnest/lingo/internal/chain"
	"github.com/smallnest/lingo/internal/log"
)

// LLMService owns a configured chat model and the translation chain
// built around it.
type LLMService struct {
	chain    *chain.Chain
	provider string
	logger   log.Logger
}

// LLMOption configures an LLMService.
type LLMOption func(*llmOptions)

type llmOptions struct {
	provider    string
	temperature float64
	maxTokens   int
	logger      log.Logger
}

// WithProviderName tags errors with the backend name.
func WithProviderName(name string) LLMOption {
	return func(o *llmOptions) {
		o.provider = name
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) LLMOption {
	return func(o *llmOptions) {
		o.temperature = temperature
	}
}

// WithMaxTokens caps completion length.
func WithMaxTokens(maxTokens int) LLMOption {
	return func(o *llmOptions) {
		o.maxTokens = maxTokens
	}
}

// WithLLMLogger sets the logger.
func WithLLMLogger(logger log.Logger) LLMOption {
	return func(o *llmOptions) {
		o.logger = logger
	}
}

// NewLLMService builds the LLM layer around an already constructed
// model.
func NewLLMService(model llms.Model, opts ...LLMOption) *LLMService {
	options := &llmOptions{
		provider:    "llm",
		temperature: chain.DefaultTemperature,
		maxTokens:   chain.DefaultMaxTokens,
		logger:      &log.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(options)
	}

	return &LLMService{
		chain: chain.New(model,
			chain.WithTemperature(options.temperature),
			chain.WithMaxTokens(options.maxTokens),
		),
		provider: options.provider,
		logger:   options.logger,
	}
}

// Translate runs one translation through the model. A single attempt
// is made; any failure comes back as a *ProviderError.
func (s *LLMService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	s.logger.Debug("translating %d characters to %q via %s", len(text), targetLanguage, s.provider)

	out, err := s.chain.Invoke(ctx, text, targetLanguage)
	if err != nil {
		return "", &ProviderError{Provider: s.provider, Err: err}
	}
	return out, nil
}

// Provider returns the backend name used in error tagging.
func (s *LLMService) Provider() string {
	return s.provider
}
