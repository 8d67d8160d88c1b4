// Package chain composes the fixed translation prompt and runs it
// through a chat model: prompt rendering, model invocation and output
// extraction form one pipeline with no branching.
package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/smallnest/lingo/internal/language"
)

// systemTemplate is the single instruction sent for every translation.
// The target language is the only variable part.
const systemTemplate = "Translate the following text to %s:"

// Default generation parameters, matching the service configuration
// defaults.
const (
	DefaultTemperature = 0.5
	DefaultMaxTokens   = 1000
)

// ErrEmptyResponse is returned when the model produces no choices, or
// a completion with no text once surrounding whitespace is stripped.
var ErrEmptyResponse = errors.New("model returned an empty completion")

// Chain binds a chat model to the translation prompt.
type Chain struct {
	model       llms.Model
	temperature float64
	maxTokens   int
}

// Option configures a Chain.
type Option func(*Chain)

// WithTemperature sets the sampling temperature for every run.
func WithTemperature(temperature float64) Option {
	return func(c *Chain) {
		c.temperature = temperature
	}
}

// WithMaxTokens caps the completion length for every run.
func WithMaxTokens(maxTokens int) Option {
	return func(c *Chain) {
		c.maxTokens = maxTokens
	}
}

// New builds a translation chain around model.
func New(model llms.Model, opts ...Option) *Chain {
	c := &Chain{
		model:       model,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prompt renders the two-message prompt for one translation. The
// system message carries the instruction with the normalized target
// language, the human message carries the source text byte for byte.
func Prompt(text, targetLanguage string) []llms.MessageContent {
	return []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem,
			fmt.Sprintf(systemTemplate, language.DisplayName(targetLanguage))),
		llms.TextParts(schema.ChatMessageTypeHuman, text),
	}
}

// Invoke sends one translation through the model and extracts the
// first choice's text, trimmed of surrounding whitespace. An empty
// completion is an error, not an empty translation. Errors come back
// unwrapped so callers can classify them.
func (c *Chain) Invoke(ctx context.Context, text, targetLanguage string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, Prompt(text, targetLanguage),
		llms.WithTemperature(c.temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	translated := strings.TrimSpace(resp.Choices[0].Content)
	if translated == "" {
		return "", ErrEmptyResponse
	}
	return translated, nil
}
