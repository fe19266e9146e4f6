// ABOUTME: Unsplash adapter searches the stock photo catalog using a Client-ID credential header
// ABOUTME: Skips the network call entirely when no access key is provisioned

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
	unsplashSearchURL  = "https://api.unsplash.com/search/photos"
	unsplashMaxResults = 5
)

// Unsplash searches the Unsplash stock photo catalog. The adapter requires a
// provisioned access key; without one it contributes nothing.
type Unsplash struct {
	deps      interfaces.Dependencies
	accessKey string
}

// NewUnsplash creates a new Unsplash adapter with the given access key.
// An empty key disables the adapter rather than failing.
func NewUnsplash(deps interfaces.Dependencies, accessKey string) *Unsplash {
	return &Unsplash{deps: deps, accessKey: accessKey}
}

// Name returns the provider label.
func (p *Unsplash) Name() string {
	return "Unsplash"
}

type unsplashResponse struct {
	Results []unsplashPhoto `json:"results"`
}

type unsplashPhoto struct {
	ID             string        `json:"id"`
	AltDescription string        `json:"alt_description"`
	Description    string        `json:"description"`
	Likes          int           `json:"likes"`
	URLs           unsplashURLs  `json:"urls"`
	Links          unsplashLinks `json:"links"`
	User           unsplashUser  `json:"user"`
}

type unsplashURLs struct {
	Regular string `json:"regular"`
}

type unsplashLinks struct {
	HTML string `json:"html"`
}

type unsplashUser struct {
	Name string `json:"name"`
}

// Search queries the Unsplash API and normalizes the photo results.
func (p *Unsplash) Search(ctx context.Context, query string, _ SearchOptions) ([]domain.SearchResult, error) {
	if p.accessKey == "" {
		// Deliberate skip, not a failure
		if p.deps.Logger != nil {
			p.deps.Logger.Info("Unsplash access key not set, skipping search", map[string]interface{}{
				"provider": p.Name(),
			})
		}
		return nil, nil
	}

	searchURL := fmt.Sprintf("%s?query=%s&per_page=%d",
		unsplashSearchURL, url.QueryEscape(query), unsplashMaxResults)

	headers := map[string]string{
		"Authorization": "Client-ID " + p.accessKey,
	}

	resp, err := p.deps.HTTPClient.GetWithHeaders(ctx, searchURL, headers)
	if err != nil {
		return nil, fmt.Errorf("unsplash request failed: %w", err)
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
		return nil, fmt.Errorf("unsplash response read failed: %w", err)
	}

	var payload unsplashResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("unsplash response parse failed: %w", err)
	}

	results := make([]domain.SearchResult, 0, unsplashMaxResults)
	for _, photo := range payload.Results {
		if len(results) == unsplashMaxResults {
			break
		}

		// Photos often ship without a caption; fall back through the two
		// descriptive fields before the generic default
		title := photo.AltDescription
		if title == "" {
			title = photo.Description
		}
		if title == "" {
			title = "Unsplash Photo"
		}

		results = append(results, domain.SearchResult{
			ID:          "uns-" + photo.ID,
			Title:       title,
			Type:        domain.ContentTypeImage,
			Source:      p.Name(),
			URL:         photo.Links.HTML,
			Preview:     photo.URLs.Regular,
			Description: fmt.Sprintf("By %s - %d likes", photo.User.Name, photo.Likes),
		})
	}

	return results, nil
}
