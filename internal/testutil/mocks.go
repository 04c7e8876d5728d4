package testutil

import (
	"context"
	"fmt"
	"sync"
)

// --- MockTextProvider ---

// MockTextProvider is a mock implementation of ai.TextProvider.
type MockTextProvider struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	Prompts []string
}

func (m *MockTextProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt)
	}
	return "", fmt.Errorf("Complete not configured")
}

// Calls returns how many times Complete was invoked.
func (m *MockTextProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

// --- MockImageSearcher ---

// MockImageSearcher is a mock implementation of ai.ImageSearcher.
type MockImageSearcher struct {
	SearchFunc func(ctx context.Context, query string) []string

	mu      sync.Mutex
	Queries []string
}

func (m *MockImageSearcher) Search(ctx context.Context, query string) []string {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	m.mu.Unlock()

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []string{}
}

// Calls returns how many times Search was invoked.
func (m *MockImageSearcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}
