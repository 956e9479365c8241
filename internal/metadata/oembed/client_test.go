package oembed

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fberrez/bookmarks/internal/domain"
	"github.com/fberrez/bookmarks/internal/errors"
)

func newTestClient(photoURL, videoURL string) *Client {
	registry := NewRegistry(Endpoints{Photo: photoURL, Video: videoURL})
	return NewClient(registry, Config{}, slog.New(slog.DiscardHandler))
}

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "https://photos.example/p/1", r.URL.Query().Get("url"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"photo","title":"Running Late","author_name":"marc.barrot","height":682,"width":1024}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	resp, err := c.Fetch(context.Background(), domain.TypePhotoHost, "https://photos.example/p/1")
	require.NoError(t, err)
	assert.Equal(t, "Running Late", resp.Title)
	assert.Equal(t, "marc.barrot", resp.AuthorName)
	assert.Equal(t, 682, resp.Height)
	assert.Equal(t, 1024, resp.Width)
}

func TestClient_Fetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	_, err := c.Fetch(context.Background(), domain.TypeVideoHost, "https://videos.example/404")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, domain.TypeVideoHost, fetchErr.Type)
	assert.Equal(t, "https://videos.example/404", fetchErr.URL)
	assert.Contains(t, fetchErr.Error(), "unexpected status 404")
}

func TestClient_Fetch_TransportFailure(t *testing.T) {
	// A closed server produces a connection error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	_, err := c.Fetch(context.Background(), domain.TypePhotoHost, "https://photos.example/p/1")
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	_, err := c.Fetch(context.Background(), domain.TypePhotoHost, "https://photos.example/p/1")
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestClient_Fetch_UnsupportedType(t *testing.T) {
	c := newTestClient("http://unused.example", "http://unused.example")

	_, err := c.Fetch(context.Background(), domain.Type("gopher"), "gopher://example")
	assert.ErrorIs(t, err, errors.ErrUnsupportedType)
}

func TestClient_Fetch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, domain.TypePhotoHost, "https://photos.example/p/1")
	assert.Error(t, err)
}

func TestClient_CheckURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("url") == "https://photos.example/p/valid" {
			w.Write([]byte(`{"type":"photo","title":"ok"}`))
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	ctx := context.Background()

	assert.NoError(t, c.CheckURL(ctx, domain.TypePhotoHost, "https://photos.example/p/valid"))
	assert.Error(t, c.CheckURL(ctx, domain.TypePhotoHost, "https://photos.example/p/invalid"))
}
