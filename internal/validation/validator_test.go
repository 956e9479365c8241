package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fberrez/bookmarks/internal/errors"
	"github.com/fberrez/bookmarks/internal/validation"
)

type createRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Type     string `json:"type" validate:"required,bookmark_type"`
	Keywords string `json:"keywords"`
}

type listRequest struct {
	Limit int `json:"limit" validate:"gte=1,lte=50"`
	Page  int `json:"page" validate:"gte=1"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	req := createRequest{
		URL:      "https://www.flickr.com/photos/example/123",
		Type:     "photo-host",
		Keywords: "sunset,beach",
	}

	assert.NoError(t, v.Validate(req))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       any
		wantField string
	}{
		{
			name:      "missing url",
			req:       createRequest{URL: "", Type: "photo-host"},
			wantField: "url",
		},
		{
			name:      "malformed url",
			req:       createRequest{URL: "not a url", Type: "photo-host"},
			wantField: "url",
		},
		{
			name:      "missing type",
			req:       createRequest{URL: "https://example.com", Type: ""},
			wantField: "type",
		},
		{
			name:      "unknown type",
			req:       createRequest{URL: "https://example.com", Type: "audio-host"},
			wantField: "type",
		},
		{
			name:      "limit too small",
			req:       listRequest{Limit: 0, Page: 1},
			wantField: "limit",
		},
		{
			name:      "limit too large",
			req:       listRequest{Limit: 51, Page: 1},
			wantField: "limit",
		},
		{
			name:      "page too small",
			req:       listRequest{Limit: 10, Page: 0},
			wantField: "page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrValidation)

			var domainErr *errors.Error
			require.True(t, errors.As(err, &domainErr))

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Contains(t, details, tt.wantField)
		})
	}
}

func TestValidator_BookmarkTypeCaseInsensitive(t *testing.T) {
	v := validation.New()

	req := createRequest{
		URL:  "https://vimeo.com/12345",
		Type: "Video-Host",
	}

	assert.NoError(t, v.Validate(req))
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(createRequest{URL: "", Type: "photo-host"})
	require.Error(t, err)

	var domainErr *errors.Error
	require.True(t, errors.As(err, &domainErr))
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)

	// JSON tag name "url", not struct field name "URL".
	assert.Contains(t, details, "url")
	assert.NotContains(t, details, "URL")
}
