package groq

import (
	"net/http"
	"os"

	"github.com/tmc/langchaingo/callbacks"
)

// ModelName identifies a model hosted on Groq.
type ModelName string

const (
	// Google Gemma models
	ModelGemma29BIt ModelName = "gemma2-9b-it"

	// Meta Llama models
	ModelLlama318BInstant    ModelName = "llama-3.1-8b-instant"
	ModelLlama3370BVersatile ModelName = "llama-3.3-70b-versatile"
	ModelLlama38B8192        ModelName = "llama3-8b-8192"
	ModelLlama370B8192       ModelName = "llama3-70b-8192"

	// Mistral models
	ModelMixtral8x7B32768 ModelName = "mixtral-8x7b-32768"

	// OpenAI open-weight models
	ModelGPTOSS20B  ModelName = "openai/gpt-oss-20b"
	ModelGPTOSS120B ModelName = "openai/gpt-oss-120b"
)

type options struct {
	apiKey           string
	modelName        ModelName
	baseURL          string
	httpClient       *http.Client
	callbacksHandler callbacks.Handler
}

// Option is a function that configures the Groq LLM client.
type Option func(*options)

// WithAPIKey sets the Groq API key. Defaults to the GROQ_API_KEY
// environment variable.
func WithAPIKey(apiKey string) Option {
	return func(opts *options) {
		opts.apiKey = apiKey
	}
}

// WithModel sets the model to use.
func WithModel(model ModelName) Option {
	return func(opts *options) {
		opts.modelName = model
	}
}

// WithBaseURL overrides the API endpoint. Useful for proxies and for
// tests.
func WithBaseURL(baseURL string) Option {
	return func(opts *options) {
		opts.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client, typically to control
// timeouts.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *options) {
		opts.httpClient = client
	}
}

// WithCallbacksHandler sets the callbacks handler invoked around each
// generation.
func WithCallbacksHandler(handler callbacks.Handler) Option {
	return func(opts *options) {
		opts.callbacksHandler = handler
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
