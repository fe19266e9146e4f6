// ABOUTME: Internet Archive adapter searches the archive.org multi-format catalog
// ABOUTME: Resolves content type from format markers and synthesizes preview URLs

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
	archiveSearchURL  = "https://archive.org/advancedsearch.php"
	archiveFields     = "identifier,format,title,creator,year"
	archiveMaxResults = 5
)

// InternetArchive searches the archive.org catalog. Its items span several
// media types, so the router supplies a media-type sub-filter and the
// adapter resolves each item's content type from format markers.
type InternetArchive struct {
	deps interfaces.Dependencies
}

// NewInternetArchive creates a new Internet Archive adapter.
func NewInternetArchive(deps interfaces.Dependencies) *InternetArchive {
	return &InternetArchive{deps: deps}
}

// Name returns the provider label.
func (p *InternetArchive) Name() string {
	return "Internet Archive"
}

type archiveResponse struct {
	Response archiveResponseBody `json:"response"`
}

type archiveResponseBody struct {
	Docs []archiveDoc `json:"docs"`
}

type archiveDoc struct {
	Identifier string       `json:"identifier"`
	Title      string       `json:"title"`
	Format     stringOrList `json:"format"`
	Creator    stringOrList `json:"creator"`
	Year       flexibleYear `json:"year"`
}

// stringOrList accepts a JSON value that may be a single string or an array
// of strings. Archive metadata fields use both shapes.
type stringOrList []string

func (s *stringOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = stringOrList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = stringOrList(list)
	return nil
}

func (s stringOrList) contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

func (s stringOrList) first() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// flexibleYear accepts a year encoded as either a JSON number or a string.
type flexibleYear string

func (y *flexibleYear) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*y = flexibleYear(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*y = flexibleYear(n.String())
	return nil
}

// Search queries the advanced-search endpoint. The media-type sub-filter from
// the router is appended to the query as a boolean clause.
func (p *InternetArchive) Search(ctx context.Context, query string, opts SearchOptions) ([]domain.SearchResult, error) {
	q := query
	if opts.MediaType != "" {
		q += " AND mediatype:(" + opts.MediaType + ")"
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("fl[]", archiveFields)
	params.Set("rows", fmt.Sprintf("%d", archiveMaxResults))
	params.Set("output", "json")

	resp, err := p.deps.HTTPClient.Get(ctx, archiveSearchURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("archive request failed: %w", err)
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
		return nil, fmt.Errorf("archive response read failed: %w", err)
	}

	var payload archiveResponse
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("archive response parse failed: %w", err)
	}

	results := make([]domain.SearchResult, 0, archiveMaxResults)
	for _, doc := range payload.Response.Docs {
		if len(results) == archiveMaxResults {
			break
		}
		results = append(results, p.normalize(doc, opts.Filter))
	}

	return results, nil
}

// normalize projects one archive item into the shared schema. The content
// type resolution is ordered: a video format marker wins over a PDF marker,
// which wins over the caller's dataset filter, which wins over the book
// default.
func (p *InternetArchive) normalize(doc archiveDoc, filter domain.TypeFilter) domain.SearchResult {
	contentType := domain.ContentTypeBook
	switch {
	case doc.Format.contains("MPEG4"):
		contentType = domain.ContentTypeVideo
	case doc.Format.contains("PDF"):
		contentType = domain.ContentTypePDF
	case filter == domain.FilterDataset:
		contentType = domain.ContentTypeDataset
	}

	title := doc.Title
	if title == "" {
		title = doc.Identifier
	}

	year := string(doc.Year)
	if year == "" {
		year = "Unknown"
	}

	return domain.SearchResult{
		ID:     "ia-" + doc.Identifier,
		Title:  title,
		Type:   contentType,
		Source: p.Name(),
		URL:    "https://archive.org/details/" + doc.Identifier,
		// The catalog does not return thumbnails; this template resolves
		// for most items but is not guaranteed to
		Preview:     "https://archive.org/services/img/" + doc.Identifier,
		Description: "Year: " + year,
		Author:      doc.Creator.first(),
	}
}
