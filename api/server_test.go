package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	if api == nil {
		t.Error("NewAPI returned nil API")
	}
	if router == nil {
		t.Error("NewAPI returned nil router")
	}
}

func TestNewAPI_HasCorrectTitle(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	if info.Title != "Media Search API" {
		t.Errorf("API title = %s, want Media Search API", info.Title)
	}
}

func TestNewAPI_HasCorrectVersion(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	if info.Version != "1.0.0" {
		t.Errorf("API version = %s, want 1.0.0", info.Version)
	}
}

func TestNewAPI_ServesOpenAPISpec(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /openapi.json status = %d, want 200", rec.Code)
	}
}

func TestNewAPIWithMiddleware_RateLimits(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{
		RateLimit:  1,
		RateWindow: time.Minute,
	})

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	req.RemoteAddr = "1.2.3.4:1234"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", rec.Code)
	}
}

func TestMountUploadDir_ServesStoredFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "abc-123.txt"), []byte("stored content"), 0o644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}

	_, router := NewAPI()
	MountUploadDir(router, dir)

	req := httptest.NewRequest(http.MethodGet, "/uploads/abc-123.txt", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /uploads/abc-123.txt status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "stored content" {
		t.Errorf("body = %q, want stored content", rec.Body.String())
	}
}

func TestMountUploadDir_MissingFile404s(t *testing.T) {
	_, router := NewAPI()
	MountUploadDir(router, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/uploads/nope.pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestNewAPIWithMiddleware_SetsCORSHeaders(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodOptions, "/openapi.json", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Access-Control-Allow-Origin header not set on preflight response")
	}
}
