// Package main provides a tool to seed the database with test bookmarks.
//
// It writes bookmarks straight into the store, skipping the provider URL
// check, so the seeded URLs do not have to resolve anywhere.
//
// Usage:
//
//	DB_PATH=~/.bookmarks/db go run ./cmd/seed
//	DB_PATH=~/.bookmarks/db go run ./cmd/seed --count 50
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/fberrez/bookmarks/internal/domain"
	"github.com/fberrez/bookmarks/internal/id"
	"github.com/fberrez/bookmarks/internal/store"
)

var count = flag.Int("count", 25, "Number of bookmarks to create")

var keywordPool = []string{
	"sunset", "beach", "mountain", "city", "portrait", "macro",
	"timelapse", "documentary", "short", "music", "travel", "food",
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/.bookmarks/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for i := 0; i < *count; i++ {
		bookmarkID, err := id.NewBookmark()
		if err != nil {
			log.Fatalf("Failed to generate id: %v", err)
		}

		var url string
		var t domain.Type
		if rng.Intn(2) == 0 {
			t = domain.TypePhotoHost
			url = fmt.Sprintf("https://www.flickr.com/photos/seed/%d", rng.Int63())
		} else {
			t = domain.TypeVideoHost
			url = fmt.Sprintf("https://vimeo.com/%d", rng.Int63())
		}

		// 1-3 random keywords
		keywords := make([]string, 1+rng.Intn(3))
		for j := range keywords {
			keywords[j] = keywordPool[rng.Intn(len(keywordPool))]
		}

		b := &domain.Bookmark{
			ID:       bookmarkID,
			URL:      url,
			Type:     t,
			Keywords: domain.NormalizeKeywords(keywords),
		}

		if err := s.CreateBookmark(ctx, b); err != nil {
			log.Printf("Skipping bookmark %s: %v", url, err)
			continue
		}
		created++
	}

	fmt.Printf("Created %d bookmarks\n", created)
}
