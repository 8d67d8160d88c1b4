// Lingo - LLM Translation Service in Go
//
// Lingo exposes an LLM translation chain over HTTP. A request names the
// text and the target language; the service builds a translation prompt,
// runs it through the configured chat model and returns the translation
// together with the untouched original text and an RFC 3339 UTC
// timestamp.
//
// # Quick Start
//
// Install the binaries:
//
//	go install github.com/smallnest/lingo/cmd/lingo-server@latest
//	go install github.com/smallnest/lingo/cmd/lingo-client@latest
//
// Start the server (requires a Groq API key):
//
//	export GROQ_API_KEY=gsk_...
//	lingo-server
//
// Translate:
//
//	curl -X POST http://127.0.0.1:8000/translate \
//	  -H 'Content-Type: application/json' \
//	  -d '{"text": "Hello, world!", "target_language": "French"}'
//
// Or use the bundled client:
//
//	lingo-client translate --language French "Hello, world!"
//	lingo-client suite
//
// # Endpoints
//
//   - GET  /health         Health check
//   - POST /translate      Translate text to a target language
//   - POST /chain/invoke   Alias for /translate
//
// Validation failures return 400 with every offending field listed;
// provider failures return 502. The service never retries the provider
// and keeps no state between requests.
//
// # Package Structure
//
// cmd/lingo-server
// The HTTP service binary. Flags, LINGO_ environment variables and
// defaults are layered through viper.
//
// cmd/lingo-client
// Terminal client with health, translate, suite and interactive
// commands.
//
// internal/chain
// The translation chain: prompt construction and model invocation on
// top of langchaingo's llms.Model interface.
//
// internal/translator
// Service orchestration: validation, the single provider attempt and
// the error taxonomy (ValidationError, ProviderError, TranslationError).
//
// internal/server
// HTTP transport: routing, request IDs, CORS and JSON encoding.
//
// internal/provider
// Provider construction for groq, openai and ollama backends.
//
// llms/groq
// A langchaingo llms.Model implementation for the Groq OpenAI
// compatible API.
//
// pkg/client
// A Go client for the service with transport-level retries.
//
// # Configuration
//
// The server reads configuration from flags and LINGO_ prefixed
// environment variables:
//
//   - LINGO_HOST / LINGO_PORT: listen address (default 127.0.0.1:8000)
//   - LINGO_PROVIDER: groq, openai or ollama (default groq)
//   - LINGO_MODEL: model name, provider default when empty
//   - LINGO_TEMPERATURE / LINGO_MAX_TOKENS: generation parameters
//   - LINGO_PROVIDER_TIMEOUT: upstream call timeout (default 30s)
//   - LINGO_LOG_LEVEL: debug, info, warn, error or none
//
// Credentials come only from the provider's conventional variable:
// GROQ_API_KEY or OPENAI_API_KEY. The server refuses to start without
// the one its provider needs.
package lingo // import "github.com/smallnest/lingo"
