// ABOUTME: Project Gutenberg adapter searches public-domain books via the Gutendex API
// ABOUTME: Every result is classified as pdf since the catalog serves downloadable texts

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"mediasearch-app-api/core/domain"
	coreerrors "mediasearch-app-api/core/errors"
	"mediasearch-app-api/core/interfaces"
)

const (
	gutendexSearchURL   = "https://gutendex.com/books"
	gutenbergMaxResults = 5
)

// Gutenberg searches Project Gutenberg through the Gutendex API.
type Gutenberg struct {
	deps interfaces.Dependencies
}

// NewGutenberg creates a new Project Gutenberg adapter.
func NewGutenberg(deps interfaces.Dependencies) *Gutenberg {
	return &Gutenberg{deps: deps}
}

// Name returns the provider label.
func (p *Gutenberg) Name() string {
	return "Project Gutenberg"
}

type gutendexResponse struct {
	Results []gutendexBook `json:"results"`
}

type gutendexBook struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Authors       []gutendexAuthor  `json:"authors"`
	Formats       map[string]string `json:"formats"`
	DownloadCount int               `json:"download_count"`
}

type gutendexAuthor struct {
	Name string `json:"name"`
}

// Search queries Gutendex and normalizes the returned books.
func (p *Gutenberg) Search(ctx context.Context, query string, _ SearchOptions) ([]domain.SearchResult, error) {
	searchURL := fmt.Sprintf("%s?search=%s&limit=%d",
		gutendexSearchURL, url.QueryEscape(query), gutenbergMaxResults)

	resp, err := p.deps.HTTPClient.Get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("gutendex request failed: %w", err)
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
		return nil, fmt.Errorf("gutendex response read failed: %w", err)
	}

	var payload gutendexResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("gutendex response parse failed: %w", err)
	}

	results := make([]domain.SearchResult, 0, gutenbergMaxResults)
	for _, book := range payload.Results {
		if len(results) == gutenbergMaxResults {
			break
		}
		results = append(results, p.normalize(book))
	}

	return results, nil
}

func (p *Gutenberg) normalize(book gutendexBook) domain.SearchResult {
	title := book.Title
	if title == "" {
		title = "Untitled"
	}

	// Cover image lives under one of two image mime-type keys
	cover := book.Formats["image/jpeg"]
	if cover == "" {
		cover = book.Formats["image/png"]
	}

	result := domain.SearchResult{
		ID:          fmt.Sprintf("pg-%d", book.ID),
		Title:       title,
		Type:        domain.ContentTypePDF,
		Source:      p.Name(),
		URL:         fmt.Sprintf("https://www.gutenberg.org/ebooks/%d", book.ID),
		Preview:     cover,
		Description: fmt.Sprintf("Public domain book with %d downloads", book.DownloadCount),
	}

	if len(book.Authors) > 0 {
		result.Author = book.Authors[0].Name
	}

	return result
}
