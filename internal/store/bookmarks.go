package store

import (
	"context"
	"time"

	"github.com/fberrez/bookmarks/internal/domain"
)

// bookmarkPrefix is the key prefix for bookmark records.
const bookmarkPrefix = "bookmark:"

// initBookmarks sets up the bookmark entity with a unique URL index.
// The index is what enforces the global URL uniqueness invariant: a create
// with an already-bookmarked URL fails with ErrAlreadyExists.
func (s *Store) initBookmarks() {
	s.Bookmarks = NewEntity[domain.Bookmark](s, bookmarkPrefix).
		WithIndex("url", func(b *domain.Bookmark) []string {
			return []string{b.URL}
		})
}

// CreateBookmark persists a new bookmark, stamping CreatedAt/UpdatedAt.
func (s *Store) CreateBookmark(ctx context.Context, b *domain.Bookmark) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.Bookmarks.Create(ctx, b.ID, b); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Debug("bookmark created", "id", b.ID, "url", b.URL, "type", b.Type)
	}
	return nil
}

// GetBookmark retrieves a bookmark by ID.
func (s *Store) GetBookmark(ctx context.Context, id string) (*domain.Bookmark, error) {
	return s.Bookmarks.Get(ctx, id)
}

// UpdateBookmark replaces an existing bookmark, refreshing UpdatedAt.
func (s *Store) UpdateBookmark(ctx context.Context, b *domain.Bookmark) error {
	b.UpdatedAt = time.Now().UTC()
	return s.Bookmarks.Update(ctx, b.ID, b)
}

// DeleteBookmark removes a bookmark by ID. Deleting an absent bookmark is
// not an error.
func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	return s.Bookmarks.Delete(ctx, id)
}

// ListBookmarks returns up to limit bookmarks starting at skip, in stable
// key order.
func (s *Store) ListBookmarks(ctx context.Context, skip, limit int) ([]*domain.Bookmark, error) {
	return s.Bookmarks.ListPage(ctx, skip, limit)
}

// CountBookmarks returns the total number of stored bookmarks, regardless
// of pagination.
func (s *Store) CountBookmarks(ctx context.Context) (int, error) {
	return s.Bookmarks.Count(ctx)
}
