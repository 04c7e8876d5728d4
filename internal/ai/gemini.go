package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiProvider implements TextProvider using the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
	opts   ProviderOptions
}

// NewGeminiProvider creates a Gemini client for the given model name. An
// empty baseURL keeps the SDK's default endpoint. The underlying REST client
// may retry 503s on its own before completeWithRetry sees the error.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL, model string, opts ProviderOptions) (*GeminiProvider, error) {
	clientOpts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(strings.TrimRight(baseURL, "/")))
	}
	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	m := client.GenerativeModel(model)
	m.SetTemperature(Temperature)
	m.SetCandidateCount(1)
	return &GeminiProvider{client: client, model: m, opts: opts}, nil
}

// Complete sends the prompt and returns the first candidate's text parts.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return completeWithRetry(ctx, "gemini", p.opts, func(ctx context.Context) (string, error) {
		resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", classifyGeminiError(err)
		}
		return extractGeminiText(resp)
	})
}

// Close releases the underlying client connection.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func classifyGeminiError(err error) *ModelError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &ModelError{Provider: "gemini", StatusCode: apiErr.Code, Err: err}
	}
	return &ModelError{Provider: "gemini", Err: err}
}

func extractGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &ModelError{Provider: "gemini", Err: errors.New("empty response from Gemini")}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &ModelError{Provider: "gemini", Err: errors.New("no text content in Gemini response")}
	}
	return sb.String(), nil
}
