// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"mediasearch-app-api/api/dto/responses"
	"mediasearch-app-api/core/domain"
)

// ToSearchResultResponse converts a domain SearchResult to its response DTO
func ToSearchResultResponse(result *domain.SearchResult) *responses.SearchResultResponse {
	if result == nil {
		return nil
	}

	return &responses.SearchResultResponse{
		ID:          result.ID,
		Title:       result.Title,
		Type:        string(result.Type),
		Source:      result.Source,
		URL:         result.URL,
		Preview:     result.Preview,
		Description: result.Description,
		Author:      result.Author,
	}
}

// ToSearchResultResponses converts multiple domain SearchResults to DTOs.
// Always returns a non-nil slice so empty result sets serialize as [].
func ToSearchResultResponses(results []domain.SearchResult) []responses.SearchResultResponse {
	out := make([]responses.SearchResultResponse, 0, len(results))

	for i := range results {
		if response := ToSearchResultResponse(&results[i]); response != nil {
			out = append(out, *response)
		}
	}

	return out
}
