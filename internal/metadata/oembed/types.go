// Package oembed fetches bookmark metadata from provider oembed endpoints.
package oembed

// Response is the subset of an oembed document the server cares about.
// Providers return more fields; everything else is ignored.
type Response struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	URL        string `json:"url"`
	Height     int    `json:"height"`
	Width      int    `json:"width"`
	// Duration is only present in video oembed documents, in seconds.
	Duration int `json:"duration"`
}
