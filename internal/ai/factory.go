package ai

import (
	"context"
	"fmt"

	"github.com/windoze95/recipegen/internal/config"
)

// NewTextProvider builds the TextProvider selected by MODEL_PROVIDER.
func NewTextProvider(ctx context.Context, cfg *config.Config) (TextProvider, error) {
	env := cfg.EnvVars
	opts := ProviderOptions{
		Timeout:    env.ModelTimeout,
		MaxRetries: env.ModelMaxRetries,
	}

	switch env.ModelProvider {
	case config.ProviderGroq, "":
		return NewGroqProvider(env.ModelAPIKey, env.ModelBaseURL, env.Model, opts), nil
	case config.ProviderOpenAI:
		return NewOpenAIProvider(config.ProviderOpenAI, env.ModelAPIKey, env.ModelBaseURL, env.Model, opts), nil
	case config.ProviderAnthropic:
		return NewAnthropicProvider(env.ModelAPIKey, env.ModelBaseURL, env.Model, opts), nil
	case config.ProviderGemini:
		p, err := NewGeminiProvider(ctx, env.ModelAPIKey, env.ModelBaseURL, env.Model, opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported model provider %q", env.ModelProvider)
	}
}

// NewImageSearcher builds the scraping ImageSearcher from config.
func NewImageSearcher(cfg *config.Config) *ScrapeImageSearcher {
	env := cfg.EnvVars
	return NewScrapeImageSearcher(env.ImageSearchURL, env.ImageSearchUserAgent, env.ImageSearchTimeout)
}
