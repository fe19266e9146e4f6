// ABOUTME: Search result domain model shared by all provider adapters
// ABOUTME: Every external catalog item is normalized into this single schema

package domain

// ContentType classifies a normalized search result.
type ContentType string

const (
	ContentTypeBook    ContentType = "book"
	ContentTypeVideo   ContentType = "video"
	ContentTypeImage   ContentType = "image"
	ContentTypePDF     ContentType = "pdf"
	ContentTypeDataset ContentType = "dataset"
)

// SearchResult represents one item returned from an external content catalog,
// normalized into the shared result schema. Results live only for the duration
// of a single search request; nothing is persisted.
type SearchResult struct {
	// ID is globally unique via a provider prefix, e.g. "ol-OL123W"
	ID string

	// Title is never empty; adapters fall back to a provider default
	Title string

	// Type is the normalized content classification
	Type ContentType

	// Source is the human-readable provider label
	Source string

	// URL is the canonical link to the content on the provider's site,
	// never a locally hosted copy
	URL string

	// Preview is an optional thumbnail or cover image URL
	Preview string

	// Description is optional provider-specific context
	Description string

	// Author is the first credited author or creator, if any
	Author string
}
