package translator

import "fmt"

// ProviderError wraps any failure talking to the LLM provider:
// transport errors, HTTP error statuses, malformed payloads. The
// service layer converts it into a TranslationError before it reaches
// a transport.
type ProviderError struct {
	// Provider names the backend, e.g. "groq".
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// TranslationError is the service-level failure. It maps to HTTP 502
// at the server boundary and always wraps the underlying cause.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed: %v", e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
