// Package client is a Go client for the lingo translation server.
//
// The client retries only transport failures (connection refused, DNS,
// resets). Once any HTTP response arrives, whatever its status, the
// result is final: the server makes exactly one provider attempt per
// request, so replaying delivered requests would just repeat the work.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Defaults mirroring the server's client contract.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetries    = 3
	DefaultRetryDelay = time.Second
)

// Logger is the leveled logging interface the client accepts. Any
// logger with Printf-style level methods satisfies it.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(format string, v ...any) {}
func (noopLogger) Info(format string, v ...any)  {}
func (noopLogger) Warn(format string, v ...any)  {}
func (noopLogger) Error(format string, v ...any) {}

// TranslationRequest is the body of POST /translate.
type TranslationRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

// TranslationResponse is a successful translation result.
type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
	OriginalText   string `json:"original_text"`
	TargetLanguage string `json:"target_language"`
	Timestamp      string `json:"timestamp"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// APIError is returned when the server answers with a non-200 status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to a lingo translation server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
	logger     Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each HTTP attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetries sets how many times a request is attempted when the
// transport fails. Must be at least 1.
func WithRetries(retries int) Option {
	return func(c *Client) {
		if retries > 0 {
			c.retries = retries
		}
	}
}

// WithRetryDelay sets the pause between transport retries.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// WithClientLogger sets the logger.
func WithClientLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the server at baseURL, for example
// "http://127.0.0.1:8000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
		logger:     noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server address the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health checks service liveness via GET /health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Translate sends text to POST /translate.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (*TranslationResponse, error) {
	req := TranslationRequest{Text: text, TargetLanguage: targetLanguage}

	var resp TranslationResponse
	if err := c.do(ctx, http.MethodPost, "/translate", &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChainInvoke sends text to the POST /chain/invoke alias. The
// semantics are identical to Translate.
func (c *Client) ChainInvoke(ctx context.Context, text, targetLanguage string) (*TranslationResponse, error) {
	req := TranslationRequest{Text: text, TargetLanguage: targetLanguage}

	var resp TranslationResponse
	if err := c.do(ctx, http.MethodPost, "/chain/invoke", &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do runs one logical request with transport-level retries.
func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			c.logger.Warn("connection to %s failed (attempt %d/%d), retrying in %s",
				c.baseURL, attempt-1, c.retries, c.retryDelay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				// Caller gave up, no point in another attempt.
				return lastErr
			}
			continue
		}

		// A response arrived: the request is not retried, whatever
		// the status.
		return c.handleResponse(resp, respBody)
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.retries, lastErr)
}

func (c *Client) handleResponse(resp *http.Response, respBody any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
			apiErr.Message = body.Error
		} else if msg := strings.TrimSpace(string(data)); msg != "" {
			apiErr.Message = msg
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if respBody != nil {
		if err := json.Unmarshal(data, respBody); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
