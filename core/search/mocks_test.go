package search

import (
	"context"
	"sync"

	"mediasearch-app-api/core/domain"
	"mediasearch-app-api/core/providers"
)

// mockProvider is a mock implementation of the providers.Provider interface
type mockProvider struct {
	name       string
	searchFunc func(ctx context.Context, query string, opts providers.SearchOptions) ([]domain.SearchResult, error)

	mu    sync.Mutex
	calls int
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Search(ctx context.Context, query string, opts providers.SearchOptions) ([]domain.SearchResult, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, opts)
	}
	return nil, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockLogger records warning events for assertions
type mockLogger struct {
	mu         sync.Mutex
	warnFields []map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnFields = append(m.warnFields, fields)
}

func (m *mockLogger) warnings() []map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.warnFields
}

// result builds a minimal normalized result for a provider
func result(id string, source string, contentType domain.ContentType) domain.SearchResult {
	return domain.SearchResult{
		ID:     id,
		Title:  "Result " + id,
		Type:   contentType,
		Source: source,
		URL:    "https://example.org/" + id,
	}
}
