package ai

import (
	"context"
	"fmt"
)

// TextProvider sends a fully rendered prompt to a chat-completion model and
// returns the raw completion text.
type TextProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ImageSearcher looks up image URLs for a query. Implementations never fail
// outward: any problem yields an empty slice.
type ImageSearcher interface {
	Search(ctx context.Context, query string) []string
}

// Temperature is the sampling temperature used for every recipe completion.
// Recipes are meant to vary between runs.
const Temperature = 0.7

// ModelError is returned by a TextProvider when the remote call could not be
// completed: transport failure, authentication failure, non-2xx status or an
// empty completion.
type ModelError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ModelError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// Transient reports whether the failure is worth retrying.
func (e *ModelError) Transient() bool {
	switch e.StatusCode {
	case 429, 500, 502, 503:
		return true
	}
	return false
}
