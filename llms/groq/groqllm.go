// Package groq provides a langchaingo llms.Model implementation backed
// by the Groq inference API. Groq speaks the OpenAI chat completion
// wire format, so the client is built on sashabaranov/go-openai pointed
// at the Groq endpoint.
package groq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/llms"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

var (
	ErrEmptyResponse = errors.New("no response")
	ErrNotSetAuth    = errors.New("API key not set")
)

// LLM is a client for models hosted on Groq.
type LLM struct {
	client           *openai.Client
	model            ModelName
	CallbacksHandler callbacks.Handler
}

var _ llms.Model = (*LLM)(nil)

// New returns a new Groq LLM client.
//
// Authentication options:
// 1. WithAPIKey(apiKey) - pass API key directly
// 2. Set GROQ_API_KEY environment variable
//
// Example:
//
//	llm, err := groq.New(
//		groq.WithAPIKey("your-api-key"),
//		groq.WithModel(groq.ModelGemma29BIt),
//	)
func New(opts ...Option) (*LLM, error) {
	options := &options{
		apiKey:    getEnvOrDefault("GROQ_API_KEY", ""),
		modelName: ModelGemma29BIt,
		baseURL:   getEnvOrDefault("GROQ_BASE_URL", defaultBaseURL),
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.apiKey == "" {
		return nil, fmt.Errorf(`%w
You can pass auth info by using groq.New(groq.WithAPIKey("{API Key}"))
or
export GROQ_API_KEY={API Key}
doc: https://console.groq.com/docs/quickstart`, ErrNotSetAuth)
	}

	cfg := openai.DefaultConfig(options.apiKey)
	cfg.BaseURL = strings.TrimSuffix(options.baseURL, "/")
	if options.httpClient != nil {
		cfg.HTTPClient = options.httpClient
	}

	return &LLM{
		client:           openai.NewClientWithConfig(cfg),
		model:            options.modelName,
		CallbacksHandler: options.callbacksHandler,
	}, nil
}

// Call generates a response from the LLM for the given prompt.
func (o *LLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, o, prompt, options...)
}

// GenerateContent implements the Model interface.
func (o *LLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if o.CallbacksHandler != nil {
		o.CallbacksHandler.HandleLLMGenerateContentStart(ctx, messages)
	}

	opts := &llms.CallOptions{}
	for _, opt := range options {
		opt(opts)
	}

	// Convert messages to the OpenAI chat format Groq expects
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := string(msg.Role)
		switch role {
		case "", "human", "generic":
			role = openai.ChatMessageRoleUser
		case "ai":
			role = openai.ChatMessageRoleAssistant
		case "system":
			role = openai.ChatMessageRoleSystem
		case "tool":
			role = openai.ChatMessageRoleTool
		}

		var content strings.Builder
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				content.WriteString(text.Text)
			}
		}

		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: content.String(),
		})
	}

	req := openai.ChatCompletionRequest{
		Model:       o.getModelString(*opts),
		Messages:    chatMessages,
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
		Stop:        opts.StopWords,
	}

	if opts.StreamingFunc != nil {
		return o.generateStreaming(ctx, req, opts.StreamingFunc)
	}

	result, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if o.CallbacksHandler != nil {
			o.CallbacksHandler.HandleLLMError(ctx, err)
		}
		return nil, err
	}

	if len(result.Choices) == 0 {
		err = ErrEmptyResponse
		if o.CallbacksHandler != nil {
			o.CallbacksHandler.HandleLLMError(ctx, err)
		}
		return nil, err
	}

	choice := result.Choices[0]
	resp := &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{
				Content:    choice.Message.Content,
				StopReason: string(choice.FinishReason),
			},
		},
	}

	// Add usage information to GenerationInfo
	if result.Usage.TotalTokens > 0 {
		resp.Choices[0].GenerationInfo = map[string]any{
			"prompt_tokens":     result.Usage.PromptTokens,
			"completion_tokens": result.Usage.CompletionTokens,
			"total_tokens":      result.Usage.TotalTokens,
		}
	} else {
		resp.Choices[0].GenerationInfo = make(map[string]any)
	}

	if o.CallbacksHandler != nil {
		o.CallbacksHandler.HandleLLMGenerateContentEnd(ctx, resp)
	}

	return resp, nil
}

func (o *LLM) generateStreaming(ctx context.Context, req openai.ChatCompletionRequest, fn func(ctx context.Context, chunk []byte) error) (*llms.ContentResponse, error) {
	req.Stream = true

	stream, err := o.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		if o.CallbacksHandler != nil {
			o.CallbacksHandler.HandleLLMError(ctx, err)
		}
		return nil, err
	}
	defer stream.Close()

	var fullContent strings.Builder
	var finishReason string

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if o.CallbacksHandler != nil {
				o.CallbacksHandler.HandleLLMError(ctx, err)
			}
			return nil, err
		}

		if len(chunk.Choices) == 0 {
			continue
		}

		delta := chunk.Choices[0].Delta.Content
		if delta != "" {
			fullContent.WriteString(delta)
			if err := fn(ctx, []byte(delta)); err != nil {
				return nil, fmt.Errorf("streaming function error: %w", err)
			}
		}
		if chunk.Choices[0].FinishReason != "" {
			finishReason = string(chunk.Choices[0].FinishReason)
		}
	}

	resp := &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{
				Content:    fullContent.String(),
				StopReason: finishReason,
			},
		},
	}

	if o.CallbacksHandler != nil {
		o.CallbacksHandler.HandleLLMGenerateContentEnd(ctx, resp)
	}

	return resp, nil
}

func (o *LLM) getModelString(opts llms.CallOptions) string {
	model := o.model

	if model == "" {
		model = ModelName(opts.Model)
	}

	return string(model)
}
