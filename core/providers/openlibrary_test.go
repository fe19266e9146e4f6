package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mediasearch-app-api/core/domain"
	coreerrors "mediasearch-app-api/core/errors"
	"mediasearch-app-api/core/interfaces"
)

func TestOpenLibrary_Name(t *testing.T) {
	p := NewOpenLibrary(interfaces.Dependencies{})

	if p.Name() != "OpenLibrary" {
		t.Errorf("Name() = %v, want OpenLibrary", p.Name())
	}
}

func TestOpenLibrary_Search_Normalizes(t *testing.T) {
	apiResponse := `{
		"docs": [
			{
				"key": "/works/OL123W",
				"title": "Dune",
				"author_name": ["Frank Herbert", "Someone Else"],
				"cover_i": 456,
				"first_publish_year": 1965,
				"format": ["hardcover", "pdf"]
			},
			{
				"key": "/works/OL456W",
				"title": "Dune Messiah",
				"author_name": ["Frank Herbert"]
			}
		]
	}`

	mockClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if !strings.Contains(url, "openlibrary.org/search.json") {
				t.Errorf("unexpected request URL %v", url)
			}
			if !strings.Contains(url, "q=dune") {
				t.Error("request URL should carry the query")
			}
			if !strings.Contains(url, "limit=10") {
				t.Error("request URL should carry the result limit")
			}
			if !strings.Contains(url, "fields=") {
				t.Error("request URL should carry the field list")
			}
			return &mockResponse{statusCode: 200, body: apiResponse}, nil
		},
	}

	p := NewOpenLibrary(interfaces.Dependencies{HTTPClient: mockClient})
	results, err := p.Search(context.Background(), "dune", SearchOptions{})

	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search returned %d results, want 2", len(results))
	}

	first := results[0]
	if first.ID != "ol-OL123W" {
		t.Errorf("ID = %v, want ol-OL123W", first.ID)
	}
	if first.Type != domain.ContentTypePDF {
		t.Errorf("Type = %v, want pdf when format list contains pdf", first.Type)
	}
	if first.URL != "https://openlibrary.org/works/OL123W" {
		t.Errorf("URL = %v", first.URL)
	}
	if first.Preview != "https://covers.openlibrary.org/b/id/456-M.jpg" {
		t.Errorf("Preview = %v", first.Preview)
	}
	if first.Description != "First published: 1965" {
		t.Errorf("Description = %v", first.Description)
	}
	if first.Author != "Frank Herbert" {
		t.Errorf("Author = %v, want first credited author", first.Author)
	}
	if first.Source != "OpenLibrary" {
		t.Errorf("Source = %v", first.Source)
	}

	second := results[1]
	if second.Type != domain.ContentTypeBook {
		t.Errorf("Type = %v, want book without pdf format", second.Type)
	}
	if second.Preview != "" {
		t.Errorf("Preview = %v, want empty without cover id", second.Preview)
	}
	if second.Description != "First published: Unknown" {
		t.Errorf("Description = %v, want Unknown year", second.Description)
	}
}

func TestOpenLibrary_Search_TitleFallback(t *testing.T) {
	apiResponse := `{"docs": [{"key": "/works/OL1W"}]}`

	mockClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: apiResponse}, nil
		},
	}

	p := NewOpenLibrary(interfaces.Dependencies{HTTPClient: mockClient})
	results, err := p.Search(context.Background(), "x", SearchOptions{})

	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if results[0].Title != "Untitled" {
		t.Errorf("Title = %v, want Untitled", results[0].Title)
	}
}

func TestOpenLibrary_Search_CapsResults(t *testing.T) {
	var docs []string
	for i := 0; i < 10; i++ {
		docs = append(docs, `{"key": "/works/OL1W", "title": "Book"}`)
	}
	apiResponse := `{"docs": [` + strings.Join(docs, ",") + `]}`

	mockClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: apiResponse}, nil
		},
	}

	p := NewOpenLibrary(interfaces.Dependencies{HTTPClient: mockClient})
	results, err := p.Search(context.Background(), "book", SearchOptions{})

	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 8 {
		t.Errorf("Search returned %d results, want cap of 8", len(results))
	}
}

func TestOpenLibrary_Search_Non200(t *testing.T) {
	mockClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 503, body: "unavailable"}, nil
		},
	}

	p := NewOpenLibrary(interfaces.Dependencies{HTTPClient: mockClient})
	_, err := p.Search(context.Background(), "dune", SearchOptions{})

	if err == nil {
		t.Fatal("Search should return error for non-200 response")
	}
	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("error should be ExternalAPIError, got %T", err)
	}
}

func TestOpenLibrary_Search_MalformedBody(t *testing.T) {
	mockClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "<html>not json</html>"}, nil
		},
	}

	p := NewOpenLibrary(interfaces.Dependencies{HTTPClient: mockClient})
	_, err := p.Search(context.Background(), "dune", SearchOptions{})

	if err == nil {
		t.Error("Search should return error for malformed body")
	}
}

func TestOpenLibrary_Search_TransportError(t *testing.T) {
	mockClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}

	p := NewOpenLibrary(interfaces.Dependencies{HTTPClient: mockClient})
	_, err := p.Search(context.Background(), "dune", SearchOptions{})

	if err == nil {
		t.Error("Search should return error when the request fails")
	}
}
