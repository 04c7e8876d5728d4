package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 4096

// AnthropicProvider implements TextProvider using Claude.
type AnthropicProvider struct {
	client anthropic.Client
	model  anthropic.Model
	opts   ProviderOptions
}

// NewAnthropicProvider creates a new AnthropicProvider. The SDK's own retries
// are disabled; completeWithRetry owns the policy.
func NewAnthropicProvider(apiKey, baseURL, model string, opts ProviderOptions) *AnthropicProvider {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	return &AnthropicProvider{
		client: anthropic.NewClient(reqOpts...),
		model:  anthropic.Model(model),
		opts:   opts,
	}
}

// Complete sends the prompt as a single user turn and returns the text blocks
// of the reply.
func (p *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       p.model,
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(Temperature),
		Messages: []anthropic.MessageParam{
			newUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	return completeWithRetry(ctx, "anthropic", p.opts, func(ctx context.Context) (string, error) {
		resp, err := p.client.Messages.New(ctx, params)
		if err != nil {
			return "", classifyAnthropicError(err)
		}
		return extractTextContent(resp)
	})
}

// newUserMessage creates a user message param with the given content blocks.
func newUserMessage(blocks ...anthropic.ContentBlockParamUnion) anthropic.MessageParam {
	return anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleUser,
		Content: blocks,
	}
}

func classifyAnthropicError(err error) *ModelError {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &ModelError{Provider: "anthropic", StatusCode: apiErr.StatusCode, Err: err}
	}
	return &ModelError{Provider: "anthropic", Err: err}
}

// extractTextContent returns the concatenated text blocks from a Claude response.
func extractTextContent(msg *anthropic.Message) (string, error) {
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &ModelError{Provider: "anthropic", Err: errors.New("no text content in Claude response")}
	}
	return sb.String(), nil
}
