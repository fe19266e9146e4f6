package providers

import (
	"context"
	"strings"
	"testing"

	"mediasearch-app-api/core/domain"
	"mediasearch-app-api/core/interfaces"
)

func TestPixabay_Search_MissingKeySkips(t *testing.T) {
	mockClient := &mockHTTPClient{}
	logger := &mockLogger{}

	p := NewPixabay(interfaces.Dependencies{HTTPClient: mockClient, Logger: logger}, "")
	results, err := p.Search(context.Background(), "mountains", SearchOptions{})

	if err != nil {
		t.Errorf("missing key should not be an error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search returned %d results, want 0 for missing key", len(results))
	}
	if len(mockClient.calls) != 0 {
		t.Error("no network call should be attempted without a key")
	}
	if len(logger.infoMessages) != 1 {
		t.Error("credential skip should be logged at info level")
	}
}

func TestPixabay_Search_Normalizes(t *testing.T) {
	apiResponse := `{
		"hits": [
			{
				"id": 195893,
				"tags": "mountains, alps, snow",
				"pageURL": "https://pixabay.com/photos/mountains-195893/",
				"webformatURL": "https://pixabay.com/get/web.jpg",
				"likes": 310
			},
			{
				"id": 195894,
				"pageURL": "https://pixabay.com/photos/195894/",
				"webformatURL": "https://pixabay.com/get/web2.jpg",
				"likes": 4
			}
		]
	}`

	mockClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if !strings.Contains(url, "pixabay.com/api") {
				t.Errorf("unexpected request URL %v", url)
			}
			if !strings.Contains(url, "key=test-key") {
				t.Error("request URL should carry the API key")
			}
			if !strings.Contains(url, "image_type=photo") {
				t.Error("request URL should constrain to photos")
			}
			if !strings.Contains(url, "safesearch=true") {
				t.Error("request URL should enable safe search")
			}
			return &mockResponse{statusCode: 200, body: apiResponse}, nil
		},
	}

	p := NewPixabay(interfaces.Dependencies{HTTPClient: mockClient}, "test-key")
	results, err := p.Search(context.Background(), "mountains", SearchOptions{})

	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search returned %d results, want 2", len(results))
	}

	first := results[0]
	if first.ID != "pix-195893" {
		t.Errorf("ID = %v, want pix-195893", first.ID)
	}
	if first.Type != domain.ContentTypeImage {
		t.Errorf("Type = %v, want image", first.Type)
	}
	if first.Title != "mountains, alps, snow" {
		t.Errorf("Title = %v", first.Title)
	}
	if first.Description != "High quality image - 310 likes" {
		t.Errorf("Description = %v", first.Description)
	}
	if first.URL != "https://pixabay.com/photos/mountains-195893/" {
		t.Errorf("URL = %v", first.URL)
	}

	if results[1].Title != "Image" {
		t.Errorf("Title = %v, want generic fallback without tags", results[1].Title)
	}
}

func TestPixabay_Search_Non200(t *testing.T) {
	mockClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 429, body: ""}, nil
		},
	}

	p := NewPixabay(interfaces.Dependencies{HTTPClient: mockClient}, "test-key")
	_, err := p.Search(context.Background(), "mountains", SearchOptions{})

	if err == nil {
		t.Error("Search should return error for non-200 response")
	}
}
