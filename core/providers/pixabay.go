// ABOUTME: Pixabay adapter searches the stock photo catalog with an API key
// ABOUTME: Skips the network call entirely when no key is provisioned

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
	pixabaySearchURL  = "https://pixabay.com/api/"
	pixabayMaxResults = 5
)

// Pixabay searches the Pixabay stock photo catalog. The adapter requires a
// provisioned API key; without one it contributes nothing.
type Pixabay struct {
	deps   interfaces.Dependencies
	apiKey string
}

// NewPixabay creates a new Pixabay adapter with the given API key.
// An empty key disables the adapter rather than failing.
func NewPixabay(deps interfaces.Dependencies, apiKey string) *Pixabay {
	return &Pixabay{deps: deps, apiKey: apiKey}
}

// Name returns the provider label.
func (p *Pixabay) Name() string {
	return "Pixabay"
}

type pixabayResponse struct {
	Hits []pixabayHit `json:"hits"`
}

type pixabayHit struct {
	ID           int64  `json:"id"`
	Tags         string `json:"tags"`
	PageURL      string `json:"pageURL"`
	WebFormatURL string `json:"webformatURL"`
	Likes        int    `json:"likes"`
}

// Search queries the Pixabay API and normalizes the photo hits.
func (p *Pixabay) Search(ctx context.Context, query string, _ SearchOptions) ([]domain.SearchResult, error) {
	if p.apiKey == "" {
		// Deliberate skip, not a failure
		if p.deps.Logger != nil {
			p.deps.Logger.Info("Pixabay API key not set, skipping search", map[string]interface{}{
				"provider": p.Name(),
			})
		}
		return nil, nil
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", query)
	params.Set("image_type", "photo")
	params.Set("per_page", fmt.Sprintf("%d", pixabayMaxResults))
	params.Set("safesearch", "true")

	resp, err := p.deps.HTTPClient.Get(ctx, pixabaySearchURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("pixabay request failed: %w", err)
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
		return nil, fmt.Errorf("pixabay response read failed: %w", err)
	}

	var payload pixabayResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("pixabay response parse failed: %w", err)
	}

	results := make([]domain.SearchResult, 0, pixabayMaxResults)
	for _, hit := range payload.Hits {
		if len(results) == pixabayMaxResults {
			break
		}

		title := hit.Tags
		if title == "" {
			title = "Image"
		}

		results = append(results, domain.SearchResult{
			ID:          fmt.Sprintf("pix-%d", hit.ID),
			Title:       title,
			Type:        domain.ContentTypeImage,
			Source:      p.Name(),
			URL:         hit.PageURL,
			Preview:     hit.WebFormatURL,
			Description: fmt.Sprintf("High quality image - %d likes", hit.Likes),
		})
	}

	return results, nil
}
