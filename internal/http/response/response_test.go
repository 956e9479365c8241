package response

import (
	"encoding/json/v2"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fberrez/bookmarks/internal/errors"
	"github.com/fberrez/bookmarks/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	data := map[string]string{"message": "test"}
	JSON(w, http.StatusOK, data, discardLogger())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Error)
}

func TestJSON_NilLogger(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]string{"message": "test"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()

	Created(w, map[string]string{"id": "bm-new"}, discardLogger())

	assert.Equal(t, http.StatusCreated, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotNil(t, result.Data)
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()

	NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError_Generic(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusInternalServerError, "something went wrong", discardLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	assert.Equal(t, "something went wrong", result.Error)
}

func TestErrorWithDetails(t *testing.T) {
	w := httptest.NewRecorder()

	details := map[string]string{"url": "must be a valid URL"}
	ErrorWithDetails(w, http.StatusBadRequest, "validation failed", details, discardLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "validation failed", result.Error)

	detailsMap, ok := result.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "must be a valid URL", detailsMap["url"])
}

func TestHandleError_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "validation",
			err:        errors.Validation("invalid bookmark id"),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid bookmark id",
		},
		{
			name:       "not found",
			err:        errors.NotFound("bookmark not found"),
			wantStatus: http.StatusNotFound,
			wantError:  "bookmark not found",
		},
		{
			name:       "conflict",
			err:        errors.AlreadyExists("url already bookmarked"),
			wantStatus: http.StatusConflict,
			wantError:  "url already bookmarked",
		},
		{
			name:       "unsupported type",
			err:        errors.UnsupportedTypef("type not implemented, got '%s'", "audio-host"),
			wantStatus: http.StatusBadRequest,
			wantError:  "type not implemented, got 'audio-host'",
		},
		{
			name:       "provider failure",
			err:        errors.RequestFailed("request: unexpected status 500, url 'https://x' (photo-host)"),
			wantStatus: http.StatusBadGateway,
			wantError:  "request: unexpected status 500, url 'https://x' (photo-host)",
		},
		{
			name:       "wrapped domain error",
			err:        fmt.Errorf("handling request: %w", errors.NotFound("bookmark not found")),
			wantStatus: http.StatusNotFound,
			wantError:  "bookmark not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			HandleError(w, tt.err, discardLogger())

			assert.Equal(t, tt.wantStatus, w.Code)

			var result Envelope
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.wantError, result.Error)
		})
	}
}

func TestHandleError_StoreErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"already exists", store.ErrAlreadyExists, http.StatusConflict},
		{"invalid input", store.ErrInvalidInput, http.StatusBadRequest},
		{"wrapped", fmt.Errorf("creating bookmark: %w", store.ErrAlreadyExists), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			HandleError(w, tt.err, discardLogger())

			assert.Equal(t, tt.wantStatus, w.Code)

			var result Envelope
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.NotEmpty(t, result.Error)
		})
	}
}

func TestHandleError_Unknown(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, fmt.Errorf("badger iterator broke"), discardLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	// Internal failures are never leaked to clients.
	assert.Equal(t, "internal server error", result.Error)
}

func TestStatusCodeBoundary(t *testing.T) {
	tests := []struct {
		status          int
		expectedSuccess bool
	}{
		{200, true},
		{201, true},
		{399, true},
		{400, false},
		{404, false},
		{502, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			w := httptest.NewRecorder()

			JSON(w, tt.status, nil, discardLogger())

			var result Envelope
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSuccess, result.Success)
		})
	}
}
