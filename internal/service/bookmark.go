// Package service provides the business logic layer for managing and
// enriching bookmarks.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fberrez/bookmarks/internal/domain"
	"github.com/fberrez/bookmarks/internal/errors"
	"github.com/fberrez/bookmarks/internal/id"
	"github.com/fberrez/bookmarks/internal/metadata/oembed"
	"github.com/fberrez/bookmarks/internal/store"
)

// BookmarkPage is a page of enriched bookmarks with its pagination markers.
// Total reflects the whole collection, not the returned page; Count, First
// and Last describe the page itself.
type BookmarkPage struct {
	Bookmarks []*domain.EnrichedBookmark `json:"bookmarks"`
	Count     int                        `json:"count"`
	Total     int                        `json:"total"`
	First     int                        `json:"first"`
	Last      int                        `json:"last"`
}

// BookmarkService orchestrates bookmark CRUD and metadata enrichment.
type BookmarkService struct {
	store    *store.Store
	metadata *oembed.Client
	logger   *slog.Logger
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(store *store.Store, metadata *oembed.Client, logger *slog.Logger) *BookmarkService {
	return &BookmarkService{
		store:    store,
		metadata: metadata,
		logger:   logger,
	}
}

// Create validates the URL against its provider and persists the bookmark.
// The provider must answer the metadata request successfully; a URL the
// provider does not know is a validation error, not a server error.
func (s *BookmarkService) Create(ctx context.Context, rawURL string, t domain.Type, keywords []string) (*domain.Bookmark, error) {
	if err := s.metadata.CheckURL(ctx, t, rawURL); err != nil {
		var domainErr *errors.Error
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, errors.Wrapf(err, errors.CodeValidation, "url not valid")
	}

	bookmarkID, err := id.NewBookmark()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "generating bookmark id")
	}

	b := &domain.Bookmark{
		ID:       bookmarkID,
		URL:      rawURL,
		Type:     t,
		Keywords: domain.NormalizeKeywords(keywords),
	}

	if err := s.store.CreateBookmark(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("bookmark created", "id", b.ID, "type", b.Type)
	return b, nil
}

// Get returns a single bookmark enriched with live provider metadata.
// A fetch failure aborts the read entirely; there is no partial result.
func (s *BookmarkService) Get(ctx context.Context, bookmarkID string) (*domain.EnrichedBookmark, error) {
	if !id.IsValidBookmark(bookmarkID) {
		return nil, errors.Validationf("invalid bookmark id '%s'", bookmarkID)
	}

	b, err := s.store.GetBookmark(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}

	raw, err := s.metadata.Fetch(ctx, b.Type, b.URL)
	if err != nil {
		return nil, s.requestFailed(err)
	}

	return s.metadata.Enrich(b, raw)
}

// List returns a page of bookmarks, each enriched with live provider
// metadata. Fetches run concurrently; results are joined back by slot
// index so the store's order survives out-of-order completion. The batch
// is all-or-nothing: a single fetch failure fails the whole call and the
// other results are discarded.
func (s *BookmarkService) List(ctx context.Context, params store.Params) (*BookmarkPage, error) {
	params.Normalize()
	skip := params.Skip()

	bookmarks, err := s.store.ListBookmarks(ctx, skip, params.Limit)
	if err != nil {
		return nil, err
	}

	// Total reflects the whole collection, never the requested window.
	total, err := s.store.CountBookmarks(ctx)
	if err != nil {
		return nil, err
	}

	if total == 0 || len(bookmarks) == 0 {
		return &BookmarkPage{
			Bookmarks: []*domain.EnrichedBookmark{},
			Count:     0,
			Total:     total,
			First:     0,
			Last:      0,
		}, nil
	}

	type fetchResult struct {
		raw *oembed.Response
		err error
	}

	// One slot per bookmark. Each fetch reports into its own slot, so no
	// failure can abort or reorder the others.
	results := make([]fetchResult, len(bookmarks))

	var wg sync.WaitGroup
	for i, b := range bookmarks {
		wg.Go(func() {
			raw, err := s.metadata.Fetch(ctx, b.Type, b.URL)
			results[i] = fetchResult{raw: raw, err: err}
		})
	}
	wg.Wait()

	// First failure in store order fails the batch.
	for i, r := range results {
		if r.err != nil {
			s.logger.Warn("batch enrichment failed",
				"id", bookmarks[i].ID,
				"url", bookmarks[i].URL,
				"error", r.err,
			)
			return nil, s.requestFailed(r.err)
		}
	}

	enriched := make([]*domain.EnrichedBookmark, len(bookmarks))
	for i, b := range bookmarks {
		e, err := s.metadata.Enrich(b, results[i].raw)
		if err != nil {
			return nil, err
		}
		enriched[i] = e
	}

	first, last := store.Markers(skip, len(enriched))
	return &BookmarkPage{
		Bookmarks: enriched,
		Count:     len(enriched),
		Total:     total,
		First:     first,
		Last:      last,
	}, nil
}

// UpdateKeywords replaces the keywords of an existing bookmark. Keywords are
// the only mutable field.
func (s *BookmarkService) UpdateKeywords(ctx context.Context, bookmarkID string, keywords []string) (*domain.Bookmark, error) {
	if !id.IsValidBookmark(bookmarkID) {
		return nil, errors.Validationf("invalid bookmark id '%s'", bookmarkID)
	}

	b, err := s.store.GetBookmark(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}

	b.Keywords = domain.NormalizeKeywords(keywords)
	if err := s.store.UpdateBookmark(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// Delete removes a bookmark. Deleting an absent bookmark is not an error.
func (s *BookmarkService) Delete(ctx context.Context, bookmarkID string) error {
	if !id.IsValidBookmark(bookmarkID) {
		return errors.Validationf("invalid bookmark id '%s'", bookmarkID)
	}
	return s.store.DeleteBookmark(ctx, bookmarkID)
}

// requestFailed maps an enrichment fetch failure to the domain error
// surfaced to clients. On the read path the bookmark was already validated
// at creation, so a provider failure is an upstream error.
func (s *BookmarkService) requestFailed(err error) error {
	return errors.Wrap(err, errors.CodeRequestFailed, err.Error())
}
