package ai

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// GroqBaseURL is Groq's OpenAI-compatible API root.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// OpenAIProvider implements TextProvider against any OpenAI-compatible
// chat-completion endpoint (Groq, OpenAI).
type OpenAIProvider struct {
	name   string
	client *openai.Client
	model  string
	opts   ProviderOptions
}

// NewOpenAIProvider creates a chat-completion provider. An empty baseURL keeps
// the go-openai default (api.openai.com).
func NewOpenAIProvider(name, apiKey, baseURL, model string, opts ProviderOptions) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAIProvider{
		name:   name,
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		opts:   opts,
	}
}

// NewGroqProvider creates an OpenAIProvider pointed at Groq unless baseURL
// overrides it.
func NewGroqProvider(apiKey, baseURL, model string, opts ProviderOptions) *OpenAIProvider {
	if baseURL == "" {
		baseURL = GroqBaseURL
	}
	return NewOpenAIProvider("groq", apiKey, baseURL, model, opts)
}

// Complete sends the prompt as a single user message and returns the reply.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    []openai.ChatCompletionMessage{createUserMsg(prompt)},
		Temperature: Temperature,
		N:           1,
	}

	return completeWithRetry(ctx, p.name, p.opts, func(ctx context.Context) (string, error) {
		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", classifyOpenAIError(p.name, err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return "", &ModelError{Provider: p.name, Err: errors.New("API returned an empty message")}
		}
		return resp.Choices[0].Message.Content, nil
	})
}

// createUserMsg creates a chat completion message with the provided user prompt.
func createUserMsg(userPrompt string) openai.ChatCompletionMessage {
	return openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userPrompt,
	}
}

// classifyOpenAIError attaches the HTTP status, when there is one, so the
// retry loop can tell transient failures from permanent ones.
func classifyOpenAIError(provider string, err error) *ModelError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ModelError{Provider: provider, StatusCode: apiErr.HTTPStatusCode, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &ModelError{Provider: provider, StatusCode: reqErr.HTTPStatusCode, Err: err}
	}
	return &ModelError{Provider: provider, Err: err}
}
