// ABOUTME: Type router maps the caller's content-type filter to a provider subset
// ABOUTME: The returned order defines the precedence of concatenated results

package search

import (
	"mediasearch-app-api/core/domain"
	"mediasearch-app-api/core/providers"
)

// Providers holds the configured adapters. Field order mirrors provider
// precedence: OpenLibrary, Project Gutenberg, Pixabay, Unsplash,
// Internet Archive.
type Providers struct {
	OpenLibrary providers.Provider
	Gutenberg   providers.Provider
	Pixabay     providers.Provider
	Unsplash    providers.Provider
	Archive     providers.Provider
}

// invocation pairs a provider with the options derived for one request.
type invocation struct {
	provider providers.Provider
	opts     providers.SearchOptions
}

// route selects the adapters to invoke for a filter, in precedence order.
// ParseTypeFilter already degrades unrecognized values to FilterAll, so the
// default branch only ever sees the permissive filter.
func route(p Providers, filter domain.TypeFilter) []invocation {
	opts := providers.SearchOptions{Filter: filter}
	archiveOpts := providers.SearchOptions{Filter: filter, MediaType: archiveMediaType(filter)}

	switch filter {
	case domain.FilterBook, domain.FilterPDF:
		return []invocation{
			{p.OpenLibrary, opts},
			{p.Gutenberg, opts},
			{p.Archive, archiveOpts},
		}
	case domain.FilterVideo, domain.FilterDataset:
		return []invocation{
			{p.Archive, archiveOpts},
		}
	case domain.FilterImage:
		// The archive adapter is deliberately not consulted for images
		return []invocation{
			{p.Pixabay, opts},
			{p.Unsplash, opts},
		}
	default:
		return []invocation{
			{p.OpenLibrary, opts},
			{p.Gutenberg, opts},
			{p.Pixabay, opts},
			{p.Unsplash, opts},
			{p.Archive, archiveOpts},
		}
	}
}

// archiveMediaType derives the Internet Archive media-type sub-filter from
// the caller's filter. The permissive filter searches the archive unfiltered.
func archiveMediaType(filter domain.TypeFilter) string {
	switch filter {
	case domain.FilterVideo:
		return "movies"
	case domain.FilterBook, domain.FilterPDF:
		return "texts"
	case domain.FilterDataset:
		return "data"
	default:
		return ""
	}
}
