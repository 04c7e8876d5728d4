package ai

import (
	"context"
	"errors"
	"time"

	"github.com/windoze95/recipegen/internal/logger"
	"go.uber.org/zap"
)

// defaultRetryWait is the base backoff between attempts; attempt n waits n times this.
const defaultRetryWait = 2 * time.Second

// ProviderOptions controls the timeout and retry behaviour shared by every
// TextProvider.
type ProviderOptions struct {
	// Timeout bounds a single attempt. Zero means no per-attempt timeout.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts after a transient failure.
	MaxRetries int
	// RetryWait is the base backoff. Zero uses defaultRetryWait.
	RetryWait time.Duration
}

func (o ProviderOptions) wait(attempt int) time.Duration {
	base := o.RetryWait
	if base <= 0 {
		base = defaultRetryWait
	}
	return base * time.Duration(attempt)
}

// completeWithRetry runs call until it succeeds, fails permanently or the
// retry budget is spent. Errors returned by call are normalised to *ModelError.
func completeWithRetry(ctx context.Context, provider string, opts ProviderOptions, call func(ctx context.Context) (string, error)) (string, error) {
	var lastErr *ModelError

	for i := 0; i <= opts.MaxRetries; i++ {
		text, err := attempt(ctx, opts.Timeout, call)
		if err == nil {
			return text, nil
		}

		lastErr = toModelError(provider, err)
		if !lastErr.Transient() || i == opts.MaxRetries {
			break
		}

		logger.Get().Warn("model API error, retrying",
			zap.String("provider", provider),
			zap.Error(err),
			zap.Int("attempt", i+1),
		)

		select {
		case <-ctx.Done():
			return "", &ModelError{Provider: provider, Err: ctx.Err()}
		case <-time.After(opts.wait(i + 1)):
		}
	}

	return "", lastErr
}

func attempt(ctx context.Context, timeout time.Duration, call func(ctx context.Context) (string, error)) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return call(ctx)
}

func toModelError(provider string, err error) *ModelError {
	var modelErr *ModelError
	if errors.As(err, &modelErr) {
		return modelErr
	}
	return &ModelError{Provider: provider, Err: err}
}
