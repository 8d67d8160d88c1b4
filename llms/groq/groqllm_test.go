package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// TestNew tests client creation with various options.
func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "no api key",
			opts:    []Option{},
			wantErr: true,
		},
		{
			name: "with api key",
			opts: []Option{
				WithAPIKey("test-key"),
			},
			wantErr: false,
		},
		{
			name: "with api key and model",
			opts: []Option{
				WithAPIKey("test-key"),
				WithModel(ModelLlama318BInstant),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GROQ_API_KEY", "")

			llm, err := New(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && llm == nil {
				t.Error("New() returned nil client")
			}
		})
	}
}

// TestNew_APIKeyFromEnv tests the GROQ_API_KEY fallback.
func TestNew_APIKeyFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "env-key")

	llm, err := New()
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	if llm == nil {
		t.Fatal("New() returned nil client")
	}
}

// completionRequest mirrors the fields of the outbound payload the
// tests care about.
type completionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

func newTestServer(t *testing.T, content string, capture *completionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}

		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			t.Errorf("Expected Authorization header to start with 'Bearer ', got: %s", auth)
		}

		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("Failed to decode request body: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		resp := `{"id":"test","object":"chat.completion","created":123456,"model":"gemma2-9b-it",` +
			`"choices":[{"index":0,"message":{"role":"assistant","content":` + jsonString(content) + `},"finish_reason":"stop"}],` +
			`"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`
		w.Write([]byte(resp))
	}))
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// TestGenerateContent tests a full request/response round trip against
// a fake endpoint.
func TestGenerateContent(t *testing.T) {
	var captured completionRequest
	server := newTestServer(t, "Bonjour, le monde!", &captured)
	defer server.Close()

	llm, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, "Translate the following text to French:"),
		llms.TextParts(schema.ChatMessageTypeHuman, "Hello, world!"),
	}

	resp, err := llm.GenerateContent(context.Background(), messages,
		llms.WithTemperature(0.5), llms.WithMaxTokens(1000))
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}

	if len(resp.Choices) != 1 {
		t.Fatalf("Expected 1 choice, got %d", len(resp.Choices))
	}
	if resp.Choices[0].Content != "Bonjour, le monde!" {
		t.Errorf("Unexpected content: %q", resp.Choices[0].Content)
	}
	if resp.Choices[0].StopReason != "stop" {
		t.Errorf("Unexpected stop reason: %q", resp.Choices[0].StopReason)
	}
	if got := resp.Choices[0].GenerationInfo["total_tokens"]; got != 15 {
		t.Errorf("Unexpected total_tokens: %v", got)
	}

	// Verify the outbound payload
	if captured.Model != string(ModelGemma29BIt) {
		t.Errorf("Unexpected model: %q", captured.Model)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" {
		t.Errorf("Expected system role, got %q", captured.Messages[0].Role)
	}
	if captured.Messages[1].Role != "user" {
		t.Errorf("Expected user role, got %q", captured.Messages[1].Role)
	}
	if captured.Messages[1].Content != "Hello, world!" {
		t.Errorf("Unexpected user content: %q", captured.Messages[1].Content)
	}
	if captured.Temperature != 0.5 {
		t.Errorf("Unexpected temperature: %v", captured.Temperature)
	}
	if captured.MaxTokens != 1000 {
		t.Errorf("Unexpected max_tokens: %d", captured.MaxTokens)
	}
}

// TestGenerateContent_ModelOverride tests per-call model selection.
func TestGenerateContent_ModelOverride(t *testing.T) {
	var captured completionRequest
	server := newTestServer(t, "ok", &captured)
	defer server.Close()

	llm, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL), WithModel(""))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = llm.GenerateContent(context.Background(),
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, "hi")},
		llms.WithModel(string(ModelLlama3370BVersatile)))
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}

	if captured.Model != string(ModelLlama3370BVersatile) {
		t.Errorf("Unexpected model: %q", captured.Model)
	}
}

// TestGenerateContent_APIError tests that provider errors are
// propagated.
func TestGenerateContent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer server.Close()

	llm, err := New(WithAPIKey("bad-key"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = llm.GenerateContent(context.Background(),
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, "hi")})
	if err == nil {
		t.Fatal("Expected error for 401 response, got nil")
	}
	if !strings.Contains(err.Error(), "Invalid API Key") {
		t.Errorf("Expected provider message in error, got: %v", err)
	}
}

// TestGenerateContent_EmptyChoices tests the empty response guard.
func TestGenerateContent_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"test","object":"chat.completion","created":123456,"choices":[]}`))
	}))
	defer server.Close()

	llm, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = llm.GenerateContent(context.Background(),
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, "hi")})
	if err != ErrEmptyResponse {
		t.Errorf("Expected ErrEmptyResponse, got: %v", err)
	}
}

// TestCall tests the single-prompt convenience path.
func TestCall(t *testing.T) {
	server := newTestServer(t, "Hola", nil)
	defer server.Close()

	llm, err := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	out, err := llm.Call(context.Background(), "Translate hello to Spanish")
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if out != "Hola" {
		t.Errorf("Unexpected output: %q", out)
	}
}

// TestGenerateContent_RealAPI tests generation against the real Groq
// API. Skipped if GROQ_API_KEY is not set.
func TestGenerateContent_RealAPI(t *testing.T) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		t.Skip("GROQ_API_KEY not set")
	}

	llm, err := New(WithAPIKey(apiKey))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	resp, err := llm.GenerateContent(context.Background(), []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, "Say hello in French, one word only."),
	}, llms.WithMaxTokens(20))
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		t.Fatal("Empty response from API")
	}
	t.Logf("Response: %s", resp.Choices[0].Content)
}
