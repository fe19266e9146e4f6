// ABOUTME: Response DTOs for search-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// SearchResultResponse represents a single normalized search result
type SearchResultResponse struct {
	ID          string `json:"id" doc:"Provider-prefixed result identifier"`
	Title       string `json:"title" doc:"Result title"`
	Type        string `json:"type" doc:"Content type: book, video, image, pdf, or dataset"`
	Source      string `json:"source" doc:"Human-readable provider name"`
	URL         string `json:"url" doc:"Link to the item on the provider's site"`
	Preview     string `json:"preview,omitempty" doc:"Preview image URL"`
	Description string `json:"description,omitempty" doc:"Short description of the result"`
	Author      string `json:"author,omitempty" doc:"Author or creator"`
}

// SearchResponse represents the response for a search query
type SearchResponse struct {
	Results []SearchResultResponse `json:"results" doc:"Merged results in provider precedence order"`
}
