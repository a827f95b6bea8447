// database/seed.go - word pool seeding from the bundled words file
package database

import (
	"encoding/json"
	"log"
	"os"

	"hangman/models"
)

type seedWord struct {
	Name string `json:"name"`
	Clue string `json:"clue"`
}

// SeedWords imports the word pool from the words file when the pool is
// empty. Existing pools are left alone so admin imports are not undone.
func SeedWords() {
	db := GetDB()

	var count int64
	db.Model(&models.Word{}).Count(&count)
	if count > 0 {
		log.Printf("Word pool already seeded (%d words)", count)
		return
	}

	path := os.Getenv("WORDS_FILE")
	if path == "" {
		path = "./words.json"
	}

	n, err := ImportWordsFile(path)
	if err != nil {
		log.Printf("Warning: could not seed word pool from %s: %v", path, err)
		return
	}
	log.Printf("✅ Seeded word pool with %d words from %s", n, path)
}

// ImportWordsFile loads (word, clue) pairs from a JSON file and inserts
// the ones not already present. Returns the number inserted.
func ImportWordsFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var entries []seedWord
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, err
	}

	db := GetDB()
	inserted := 0
	for _, e := range entries {
		if e.Name == "" || e.Clue == "" {
			continue
		}
		var existing models.Word
		if err := db.Where("text = ?", e.Name).First(&existing).Error; err == nil {
			continue
		}
		word := models.Word{Text: e.Name, Clue: e.Clue}
		if err := db.Create(&word).Error; err != nil {
			log.Printf("Error inserting word %q: %v", e.Name, err)
			continue
		}
		inserted++
	}
	return inserted, nil
}
