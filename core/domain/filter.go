// ABOUTME: Type filter domain model used to route searches to provider subsets
// ABOUTME: Unrecognized filter values degrade to the permissive "all" default

package domain

// TypeFilter is the caller's requested content-type filter. It is purely a
// routing key and is never stored.
type TypeFilter string

const (
	FilterAll     TypeFilter = "all"
	FilterBook    TypeFilter = "book"
	FilterVideo   TypeFilter = "video"
	FilterImage   TypeFilter = "image"
	FilterPDF     TypeFilter = "pdf"
	FilterDataset TypeFilter = "dataset"
)

// ParseTypeFilter maps a raw filter value to a TypeFilter. Empty or
// unrecognized values fall back to FilterAll rather than raising an error.
func ParseTypeFilter(raw string) TypeFilter {
	switch TypeFilter(raw) {
	case FilterBook, FilterVideo, FilterImage, FilterPDF, FilterDataset:
		return TypeFilter(raw)
	default:
		return FilterAll
	}
}
