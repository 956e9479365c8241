// Package id generates and validates the opaque identifiers used for bookmarks.
package id

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// BookmarkPrefix is the prefix of every bookmark ID.
const BookmarkPrefix = "bm"

// nanoidLength is the length of the random part (NanoID default).
const nanoidLength = 21

// NewBookmark creates a new bookmark ID.
// Format: bm-nanoid (e.g., "bm-V1StGXR8_Z5jdHi6B-myT").
//
// NanoIDs are URL-friendly, compact (21 characters vs UUID's 36),
// and use a larger alphabet for better entropy per character.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func NewBookmark() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return BookmarkPrefix + "-" + id, nil
}

// MustNewBookmark is like NewBookmark but panics if ID generation fails.
// Use this only when failure should crash the program (e.g., seeding).
func MustNewBookmark() string {
	id, err := NewBookmark()
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// IsValidBookmark reports whether s is a well-formed bookmark ID.
// A malformed ID is a client error, distinct from an absent one.
func IsValidBookmark(s string) bool {
	rest, ok := strings.CutPrefix(s, BookmarkPrefix+"-")
	if !ok || len(rest) != nanoidLength {
		return false
	}
	for _, c := range rest {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}
