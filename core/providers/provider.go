// ABOUTME: Shared provider contract for the external content catalog adapters
// ABOUTME: Each adapter translates one catalog's query/response protocol into the normalized schema

package providers

import (
	"context"

	"mediasearch-app-api/core/domain"
)

// SearchOptions carries per-request refinements derived by the type router.
type SearchOptions struct {
	// MediaType is the Internet Archive media-type clause value
	// ("movies", "texts" or "data"); empty means an unfiltered search.
	// Only the archive adapter consults it.
	MediaType string

	// Filter is the caller's original content-type filter. The archive
	// adapter needs it to classify items with no format marker.
	Filter domain.TypeFilter
}

// Provider is implemented by every external catalog adapter. Search issues
// exactly one outbound request and projects the provider-specific response
// into zero or more normalized results. Adapters that require a credential
// return an empty result set without a network call when the credential is
// not provisioned.
type Provider interface {
	// Name returns the human-readable provider label used as the result
	// source and in log events.
	Name() string

	// Search queries the provider. Transport errors, non-2xx responses and
	// malformed bodies are returned as errors; the aggregator absorbs them.
	Search(ctx context.Context, query string, opts SearchOptions) ([]domain.SearchResult, error)
}
