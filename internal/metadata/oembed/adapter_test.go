package oembed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fberrez/bookmarks/internal/domain"
	"github.com/fberrez/bookmarks/internal/errors"
)

func testRegistry() *Registry {
	return NewRegistry(Endpoints{
		Photo: "https://photos.example/services/oembed/",
		Video: "https://videos.example/api/oembed.json",
	})
}

func TestRegistry_Lookup(t *testing.T) {
	r := testRegistry()

	photo, err := r.Lookup(domain.TypePhotoHost)
	require.NoError(t, err)
	assert.NotNil(t, photo)

	video, err := r.Lookup(domain.TypeVideoHost)
	require.NoError(t, err)
	assert.NotNil(t, video)
}

func TestRegistry_Lookup_UnsupportedType(t *testing.T) {
	r := testRegistry()

	_, err := r.Lookup(domain.Type("audio-host"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "audio-host")
}

func TestPhotoAdapter_MetadataURL(t *testing.T) {
	r := testRegistry()
	adapter, err := r.Lookup(domain.TypePhotoHost)
	require.NoError(t, err)

	got := adapter.MetadataURL("https://photos.example/p/G482eb?size=large")

	// The target must be percent-encoded and the JSON format flag present.
	assert.Equal(t,
		"https://photos.example/services/oembed/?format=json&url=https%3A%2F%2Fphotos.example%2Fp%2FG482eb%3Fsize%3Dlarge",
		got)
}

func TestVideoAdapter_MetadataURL(t *testing.T) {
	r := testRegistry()
	adapter, err := r.Lookup(domain.TypeVideoHost)
	require.NoError(t, err)

	got := adapter.MetadataURL("https://videos.example/1234")

	assert.Equal(t,
		"https://videos.example/api/oembed.json?url=https%3A%2F%2Fvideos.example%2F1234",
		got)
}

func TestAdapters_EnrichShapes(t *testing.T) {
	r := testRegistry()
	created := time.Date(2021, 12, 29, 18, 49, 19, 0, time.UTC)

	raw := &Response{
		Title:      "Running Late",
		AuthorName: "marc.barrot",
		Height:     682,
		Width:      1024,
		Duration:   135,
	}

	t.Run("photo", func(t *testing.T) {
		b := &domain.Bookmark{
			ID:        "bm-V1StGXR8_Z5jdHi6BmyTa",
			URL:       "https://photos.example/p/1",
			Type:      domain.TypePhotoHost,
			Keywords:  []string{"running", "late"},
			CreatedAt: created,
		}

		adapter, err := r.Lookup(domain.TypePhotoHost)
		require.NoError(t, err)
		got := adapter.Enrich(b, raw)

		assert.Equal(t, b.ID, got.ID)
		assert.Equal(t, b.URL, got.URL)
		assert.Equal(t, domain.TypePhotoHost, got.Type)
		assert.Equal(t, b.Keywords, got.Keywords)
		assert.Equal(t, created, got.CreatedAt)
		assert.Equal(t, "Running Late", got.Title)
		assert.Equal(t, "marc.barrot", got.Author)
		assert.Equal(t, 682, got.Height)
		assert.Equal(t, 1024, got.Width)
		assert.Zero(t, got.Duration, "photos have no duration")
	})

	t.Run("video", func(t *testing.T) {
		b := &domain.Bookmark{
			ID:        "bm-V1StGXR8_Z5jdHi6BmyTb",
			URL:       "https://videos.example/1234",
			Type:      domain.TypeVideoHost,
			Keywords:  []string{"talk"},
			CreatedAt: created,
		}

		adapter, err := r.Lookup(domain.TypeVideoHost)
		require.NoError(t, err)
		got := adapter.Enrich(b, raw)

		// Same unified shape as photo, plus duration.
		assert.Equal(t, b.ID, got.ID)
		assert.Equal(t, b.URL, got.URL)
		assert.Equal(t, b.Keywords, got.Keywords)
		assert.Equal(t, "Running Late", got.Title)
		assert.Equal(t, "marc.barrot", got.Author)
		assert.Equal(t, 682, got.Height)
		assert.Equal(t, 1024, got.Width)
		assert.Equal(t, 135, got.Duration)
	})
}
