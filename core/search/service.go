// ABOUTME: Search service fans a query out to the routed provider adapters
// ABOUTME: Aggregates results in fixed precedence order with per-provider failure isolation

package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mediasearch-app-api/core/domain"
	"mediasearch-app-api/core/interfaces"
)

// defaultProviderTimeout bounds each outbound provider call so one slow
// catalog cannot stall the whole request.
const defaultProviderTimeout = 5 * time.Second

// SearchService aggregates results from the configured content providers.
type SearchService struct {
	deps      interfaces.Dependencies
	providers Providers
	timeout   time.Duration
}

// NewSearchService creates a new search service instance. A non-positive
// timeout falls back to the default per-provider timeout.
func NewSearchService(deps interfaces.Dependencies, p Providers, timeout time.Duration) *SearchService {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &SearchService{
		deps:      deps,
		providers: p,
		timeout:   timeout,
	}
}

// outcome is the result-or-error of one provider invocation.
type outcome struct {
	results []domain.SearchResult
	err     error
}

// Search fans the query out to the adapters selected for the filter and
// concatenates their results in provider precedence order. Provider failures
// are logged and absorbed; the returned slice is never nil and the method
// never returns an error for aggregation-path conditions.
func (s *SearchService) Search(ctx context.Context, query string, filter domain.TypeFilter) []domain.SearchResult {
	// An empty query short-circuits before any adapter runs
	if query == "" {
		return []domain.SearchResult{}
	}

	invocations := route(s.providers, filter)
	outcomes := make([]outcome, len(invocations))

	var wg sync.WaitGroup
	for i, inv := range invocations {
		wg.Add(1)
		go func(idx int, inv invocation) {
			defer wg.Done()
			// A panicking adapter must not take down its siblings
			defer func() {
				if r := recover(); r != nil {
					outcomes[idx] = outcome{err: fmt.Errorf("provider panicked: %v", r)}
				}
			}()

			callCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			results, err := inv.provider.Search(callCtx, query, inv.opts)
			outcomes[idx] = outcome{results: results, err: err}
		}(i, inv)
	}
	wg.Wait()

	// Outcomes are indexed by invocation position, so concatenation order is
	// fixed by provider precedence regardless of completion timing
	merged := make([]domain.SearchResult, 0)
	for i, out := range outcomes {
		if out.err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("Provider search failed", map[string]interface{}{
					"provider": invocations[i].provider.Name(),
					"query":    query,
					"error":    out.err.Error(),
				})
			}
			continue
		}
		merged = append(merged, out.results...)
	}

	return merged
}
