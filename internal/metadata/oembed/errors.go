package oembed

import (
	"fmt"

	"github.com/fberrez/bookmarks/internal/domain"
)

// FetchError reports a failed metadata request: transport failure or a
// non-2xx provider response. It carries the bookmark type and target URL so
// callers can surface which fetch of a batch failed.
type FetchError struct {
	Type domain.Type
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("request: %v, url '%s' (%s)", e.Err, e.URL, e.Type)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
