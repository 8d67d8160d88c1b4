// Package domain defines the request and response models shared by the
// lingo translation server and its client.
package domain

import (
	"strings"
	"time"
)

// Status reports service liveness in health responses.
type Status string

const (
	// StatusHealthy means the service is accepting requests.
	StatusHealthy Status = "healthy"
	// StatusUnhealthy means the service cannot serve requests.
	StatusUnhealthy Status = "unhealthy"
)

// TranslationRequest is the body of POST /translate.
type TranslationRequest struct {
	// Text is the source text, preserved byte for byte through the
	// pipeline. It is never trimmed or normalized.
	Text string `json:"text"`
	// TargetLanguage names the language to translate into, for
	// example "French" or "fr".
	TargetLanguage string `json:"target_language"`
}

// Validate checks that both fields are present and non-blank. It
// reports every failing field at once rather than stopping at the
// first one.
func (r TranslationRequest) Validate() error {
	var fields []string
	if strings.TrimSpace(r.Text) == "" {
		fields = append(fields, "text")
	}
	if strings.TrimSpace(r.TargetLanguage) == "" {
		fields = append(fields, "target_language")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// TranslationResponse is the body of a successful POST /translate.
type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
	OriginalText   string `json:"original_text"`
	TargetLanguage string `json:"target_language"`
	// Timestamp is the completion time in RFC 3339 UTC.
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    Status `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse builds a health response stamped with the current
// time.
func NewHealthResponse(status Status) HealthResponse {
	return HealthResponse{
		Status:    status,
		Timestamp: Timestamp(time.Now()),
	}
}

// Timestamp renders t in the RFC 3339 UTC form used by every response
// in the API.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
