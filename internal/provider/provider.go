// Package provider constructs the llms.Model selected by the server
// configuration.
package provider

import (
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/smallnest/lingo/internal/config"
	"github.com/smallnest/lingo/llms/groq"
)

// New builds the configured chat model. The model's HTTP client is
// bounded by cfg.ProviderTimeout so a hung provider cannot stall
// requests indefinitely.
func New(cfg *config.Config) (llms.Model, error) {
	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}

	switch cfg.Provider {
	case config.ProviderGroq:
		opts := []groq.Option{
			groq.WithAPIKey(cfg.APIKey),
			groq.WithModel(groq.ModelName(cfg.Model)),
			groq.WithHTTPClient(httpClient),
		}
		if cfg.ProviderBaseURL != "" {
			opts = append(opts, groq.WithBaseURL(cfg.ProviderBaseURL))
		}
		return groq.New(opts...)

	case config.ProviderOpenAI:
		opts := []openai.Option{
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
			openai.WithHTTPClient(httpClient),
		}
		if cfg.ProviderBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ProviderBaseURL))
		}
		return openai.New(opts...)

	case config.ProviderOllama:
		return ollama.New(
			ollama.WithModel(cfg.Model),
			ollama.WithServerURL(cfg.OllamaHost),
			ollama.WithHTTPClient(httpClient),
		)

	default:
		return nil, &config.ConfigurationError{
			Problems: []string{fmt.Sprintf("unknown provider %q (supported: %s, %s, %s)",
				cfg.Provider, config.ProviderGroq, config.ProviderOpenAI, config.ProviderOllama)},
		}
	}
}
