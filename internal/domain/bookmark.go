// Package domain contains the core types shared across the bookmarks server.
package domain

import (
	"strings"
	"time"
)

// Type identifies the provider a bookmarked URL belongs to.
// It is a closed set; anything outside of it is rejected at the API boundary.
type Type string

// Supported bookmark types.
const (
	TypePhotoHost Type = "photo-host"
	TypeVideoHost Type = "video-host"
)

// Types lists every supported bookmark type, in display order.
func Types() []Type {
	return []Type{TypePhotoHost, TypeVideoHost}
}

// ParseType normalizes s to lowercase and reports whether it names a
// supported bookmark type.
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(s))
	switch t {
	case TypePhotoHost, TypeVideoHost:
		return t, true
	}
	return "", false
}

// Bookmark is a persisted bookmark record.
type Bookmark struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Type      Type      `json:"type"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeKeywords lowercases and trims keywords, dropping empty entries.
// Keyword order is preserved.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		out = append(out, k)
	}
	return out
}

// SplitKeywords parses the comma-joined keyword list used by the HTTP API
// ("a,b,c") into normalized keywords.
func SplitKeywords(s string) []string {
	if s == "" {
		return []string{}
	}
	return NormalizeKeywords(strings.Split(s, ","))
}

// EnrichedBookmark is a bookmark merged with live provider metadata.
// It is the response shape of every read operation and is never persisted.
type EnrichedBookmark struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Type      Type      `json:"type"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	// Duration is only set for video bookmarks, in seconds.
	Duration int `json:"duration,omitempty"`
}
