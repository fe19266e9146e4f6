// ABOUTME: Search handler exposing the federated media search endpoint
// ABOUTME: Fans a query out across providers and returns merged, normalized results

package handlers

import (
	"context"
	"net/http"

	"mediasearch-app-api/api/dto/mappers"
	"mediasearch-app-api/api/dto/responses"
	"mediasearch-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// SearchService defines the search operations the handler depends on
type SearchService interface {
	Search(ctx context.Context, query string, filter domain.TypeFilter) []domain.SearchResult
}

// SearchHandler handles media search requests
type SearchHandler struct {
	searchService SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchMedia",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search across media catalogs",
		Description: "Searches Open Library, Project Gutenberg, Pixabay, Unsplash, and the Internet Archive and returns merged results",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the query parameters for a search request
type SearchInput struct {
	Query string `query:"q" doc:"Search query; an empty query returns no results"`
	Type  string `query:"type" doc:"Content type filter: all, book, video, image, pdf, or dataset. Unrecognized values fall back to all"`
}

// SearchOutput defines the response for a search request
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the GET /search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	filter := domain.ParseTypeFilter(input.Type)

	results := h.searchService.Search(ctx, input.Query, filter)

	output := &SearchOutput{}
	output.Body.Results = mappers.ToSearchResultResponses(results)
	return output, nil
}
