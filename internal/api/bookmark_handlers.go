package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fberrez/bookmarks/internal/domain"
	"github.com/fberrez/bookmarks/internal/http/response"
	"github.com/fberrez/bookmarks/internal/store"
)

// CreateBookmarkRequest is the request body for creating a bookmark.
// Keywords are a comma-joined list ("sunset,beach").
type CreateBookmarkRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Type     string `json:"type" validate:"required,bookmark_type"`
	Keywords string `json:"keywords"`
}

// UpdateBookmarkRequest is the request body for updating a bookmark.
// Keywords are the only mutable field.
type UpdateBookmarkRequest struct {
	Keywords string `json:"keywords" validate:"required"`
}

// listQuery carries the pagination query parameters.
type listQuery struct {
	Limit int `json:"limit" validate:"gte=1,lte=50"`
	Page  int `json:"page" validate:"gte=1"`
}

// handleCreateBookmark validates the URL against its provider and persists
// the bookmark.
func (s *Server) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req CreateBookmarkRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	// The validator already checked the type; parsing cannot fail here.
	t, _ := domain.ParseType(req.Type)

	b, err := s.bookmarks.Create(r.Context(), req.URL, t, domain.SplitKeywords(req.Keywords))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, b, s.logger)
}

// handleGetBookmark returns a single bookmark enriched with live provider
// metadata.
func (s *Server) handleGetBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := s.bookmarks.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, b, s.logger)
}

// handleListBookmarks returns a paginated page of enriched bookmarks.
func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseListQuery(r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	page, err := s.bookmarks.List(r.Context(), params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, page, s.logger)
}

// handleUpdateBookmark replaces the keywords of an existing bookmark.
func (s *Server) handleUpdateBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateBookmarkRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	b, err := s.bookmarks.UpdateKeywords(r.Context(), id, domain.SplitKeywords(req.Keywords))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, b, s.logger)
}

// handleDeleteBookmark removes a bookmark. Deleting an absent bookmark
// still returns 204.
func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.bookmarks.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// parseListQuery parses pagination parameters from the query string.
// Absent parameters fall back to their defaults; present but out-of-range
// values are validation errors rather than being silently clamped.
func (s *Server) parseListQuery(r *http.Request) (store.Params, error) {
	q := listQuery{
		Limit: store.DefaultLimit,
		Page:  store.DefaultPage,
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			q.Limit = -1 // force a validation error below
		} else {
			q.Limit = limit
		}
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			q.Page = -1
		} else {
			q.Page = page
		}
	}

	if err := s.validator.Validate(q); err != nil {
		return store.Params{}, err
	}

	return store.Params{Limit: q.Limit, Page: q.Page}, nil
}
