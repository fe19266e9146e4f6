// ABOUTME: OpenLibrary adapter searches the openlibrary.org book catalog
// ABOUTME: Normalizes work records into book or pdf results

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"mediasearch-app-api/core/domain"
	coreerrors "mediasearch-app-api/core/errors"
	"mediasearch-app-api/core/interfaces"
)

const (
	openLibrarySearchURL = "https://openlibrary.org/search.json"
	openLibraryFields    = "title,author_name,cover_i,key,first_publish_year,format"

	// openLibraryMaxResults caps emitted results below the requested limit
	openLibraryMaxResults = 8
	openLibraryFetchLimit = 10
)

// OpenLibrary searches the OpenLibrary book catalog.
type OpenLibrary struct {
	deps interfaces.Dependencies
}

// NewOpenLibrary creates a new OpenLibrary adapter.
func NewOpenLibrary(deps interfaces.Dependencies) *OpenLibrary {
	return &OpenLibrary{deps: deps}
}

// Name returns the provider label.
func (p *OpenLibrary) Name() string {
	return "OpenLibrary"
}

// openLibraryResponse is the subset of the search response we consume.
type openLibraryResponse struct {
	Docs []openLibraryDoc `json:"docs"`
}

type openLibraryDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	CoverID          int64    `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
	Format           []string `json:"format"`
}

// Search queries the OpenLibrary search endpoint and normalizes the docs.
func (p *OpenLibrary) Search(ctx context.Context, query string, _ SearchOptions) ([]domain.SearchResult, error) {
	searchURL := fmt.Sprintf("%s?q=%s&limit=%d&fields=%s",
		openLibrarySearchURL, url.QueryEscape(query), openLibraryFetchLimit, openLibraryFields)

	resp, err := p.deps.HTTPClient.Get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("openlibrary request failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			API:        p.Name(),
			StatusCode: resp.StatusCode(),
			Message:    "search request rejected",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("openlibrary response read failed: %w", err)
	}

	var payload openLibraryResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("openlibrary response parse failed: %w", err)
	}

	results := make([]domain.SearchResult, 0, openLibraryMaxResults)
	for _, doc := range payload.Docs {
		if len(results) == openLibraryMaxResults {
			break
		}
		results = append(results, p.normalize(doc))
	}

	return results, nil
}

// normalize projects one work record into the shared result schema.
func (p *OpenLibrary) normalize(doc openLibraryDoc) domain.SearchResult {
	// Work keys arrive as "/works/OL123W"; the bare id becomes the suffix
	id := strings.TrimPrefix(doc.Key, "/works/")

	contentType := domain.ContentTypeBook
	for _, format := range doc.Format {
		if format == "pdf" {
			contentType = domain.ContentTypePDF
			break
		}
	}

	title := doc.Title
	if title == "" {
		title = "Untitled"
	}

	published := "Unknown"
	if doc.FirstPublishYear != 0 {
		published = fmt.Sprintf("%d", doc.FirstPublishYear)
	}

	result := domain.SearchResult{
		ID:          "ol-" + id,
		Title:       title,
		Type:        contentType,
		Source:      p.Name(),
		URL:         "https://openlibrary.org" + doc.Key,
		Description: "First published: " + published,
	}

	if doc.CoverID != 0 {
		result.Preview = fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", doc.CoverID)
	}

	if len(doc.AuthorName) > 0 {
		result.Author = doc.AuthorName[0]
	}

	return result
}
