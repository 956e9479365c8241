package oembed

import (
	"net/url"

	"github.com/fberrez/bookmarks/internal/domain"
	"github.com/fberrez/bookmarks/internal/errors"
)

// Adapter maps a bookmark type to its provider's oembed endpoint and shapes
// the provider response into an enriched bookmark. Implementations are pure:
// no I/O, no state.
type Adapter interface {
	// MetadataURL builds the provider request URL for a bookmarked target
	// URL. The target is percent-encoded into the endpoint's query string.
	MetadataURL(target string) string

	// Enrich merges a stored bookmark with its oembed document.
	Enrich(b *domain.Bookmark, raw *Response) *domain.EnrichedBookmark
}

// Endpoints holds the per-provider oembed endpoint base URLs.
type Endpoints struct {
	Photo string
	Video string
}

// Registry resolves bookmark types to their adapters.
// The type set is closed: anything outside of it fails with an
// unsupported-type error, there is no dynamic dispatch on raw strings.
type Registry struct {
	adapters map[domain.Type]Adapter
}

// NewRegistry creates a registry for the configured provider endpoints.
func NewRegistry(endpoints Endpoints) *Registry {
	return &Registry{
		adapters: map[domain.Type]Adapter{
			domain.TypePhotoHost: &photoAdapter{endpoint: endpoints.Photo},
			domain.TypeVideoHost: &videoAdapter{endpoint: endpoints.Video},
		},
	}
}

// Lookup returns the adapter for the given type.
func (r *Registry) Lookup(t domain.Type) (Adapter, error) {
	adapter, ok := r.adapters[t]
	if !ok {
		return nil, errors.UnsupportedTypef("type not implemented, got '%s', expected '%v'", t, domain.Types())
	}
	return adapter, nil
}

// enrich builds the unified enriched shape shared by both providers.
func enrich(b *domain.Bookmark, raw *Response) *domain.EnrichedBookmark {
	return &domain.EnrichedBookmark{
		ID:        b.ID,
		URL:       b.URL,
		Type:      b.Type,
		Keywords:  b.Keywords,
		CreatedAt: b.CreatedAt,
		Title:     raw.Title,
		Author:    raw.AuthorName,
		Height:    raw.Height,
		Width:     raw.Width,
	}
}

// photoAdapter targets the photo host's oembed endpoint, which requires an
// explicit JSON format flag.
type photoAdapter struct {
	endpoint string
}

func (a *photoAdapter) MetadataURL(target string) string {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("url", target)
	return a.endpoint + "?" + params.Encode()
}

func (a *photoAdapter) Enrich(b *domain.Bookmark, raw *Response) *domain.EnrichedBookmark {
	return enrich(b, raw)
}

// videoAdapter targets the video host's oembed endpoint, which is JSON by
// default and additionally reports a duration.
type videoAdapter struct {
	endpoint string
}

func (a *videoAdapter) MetadataURL(target string) string {
	params := url.Values{}
	params.Set("url", target)
	return a.endpoint + "?" + params.Encode()
}

func (a *videoAdapter) Enrich(b *domain.Bookmark, raw *Response) *domain.EnrichedBookmark {
	e := enrich(b, raw)
	e.Duration = raw.Duration
	return e
}
