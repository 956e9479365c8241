package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/fberrez/bookmarks/internal/domain"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/.bookmarks/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	total := 0
	indexKeys := 0
	byType := make(map[domain.Type]int)
	withKeywords := 0

	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("bookmark:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte("bookmark:")); it.ValidForPrefix([]byte("bookmark:")); it.Next() {
			item := it.Item()
			key := string(item.Key())

			if strings.Contains(key, "idx:") {
				indexKeys++
				continue
			}

			err := item.Value(func(val []byte) error {
				var b domain.Bookmark
				if err := json.Unmarshal(val, &b); err != nil {
					return err
				}

				total++
				byType[b.Type]++
				if len(b.Keywords) > 0 {
					withKeywords++
				}

				// Show the first few records
				if total <= 5 {
					fmt.Printf("Bookmark: %s\n", b.ID)
					fmt.Printf("  URL: %s\n", b.URL)
					fmt.Printf("  Type: %s\n", b.Type)
					fmt.Printf("  Keywords: %s\n", strings.Join(b.Keywords, ", "))
					fmt.Printf("  Created: %s\n", b.CreatedAt)
					fmt.Println()
				}

				return nil
			})
			if err != nil {
				log.Printf("Error reading bookmark %s: %v", key, err)
			}
		}
		return nil
	})

	if err != nil {
		log.Fatalf("Error iterating database: %v", err)
	}

	fmt.Println("=== Summary ===")
	fmt.Printf("Total bookmarks: %d\n", total)
	for _, t := range domain.Types() {
		fmt.Printf("  %s: %d\n", t, byType[t])
	}
	fmt.Printf("With keywords: %d\n", withKeywords)
	fmt.Printf("Index keys: %d\n", indexKeys)
}
