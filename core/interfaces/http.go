package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for outbound HTTP requests to the external
// content catalogs. The abstraction keeps provider adapters testable and
// allows switching between client implementations.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Returns a Response interface or an error if the request fails.
	Get(ctx context.Context, url string) (Response, error)

	// GetWithHeaders performs an HTTP GET request with additional request
	// headers, used by providers that authenticate via a credential header.
	GetWithHeaders(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses. Implementations wrap
// their own response types while exposing a consistent surface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
