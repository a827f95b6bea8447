// Bulk word pool importer. Reads a words JSON file and inserts the
// entries into the configured database: postgres when DATABASE_URL is
// set, or a local sqlite file via -sqlite for development.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"hangman/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type jsonWord struct {
	Name string `json:"name"`
	Clue string `json:"clue"`
}

func main() {
	file := flag.String("file", "./words.json", "path to the words JSON file")
	sqlitePath := flag.String("sqlite", "", "import into a local sqlite file instead of postgres")
	flag.Parse()

	var (
		db  *gorm.DB
		err error
	)
	if *sqlitePath != "" {
		db, err = gorm.Open(sqlite.Open(*sqlitePath), &gorm.Config{})
	} else {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("DATABASE_URL not set (or pass -sqlite for a local file)")
		}
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Word{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("Failed to read JSON file:", err)
	}

	var entries []jsonWord
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatal("Failed to parse JSON:", err)
	}

	fmt.Printf("Found %d words\n\n", len(entries))

	inserted := 0
	skipped := 0
	for _, entry := range entries {
		if entry.Name == "" || entry.Clue == "" {
			skipped++
			continue
		}
		var existing models.Word
		if err := db.Where("text = ?", entry.Name).First(&existing).Error; err == nil {
			skipped++
			continue
		}
		word := models.Word{Text: entry.Name, Clue: entry.Clue}
		if err := db.Create(&word).Error; err != nil {
			log.Printf("Error inserting %q: %v\n", entry.Name, err)
			skipped++
			continue
		}
		inserted++
	}

	fmt.Printf("Inserted %d, skipped %d\n", inserted, skipped)

	var count int64
	db.Model(&models.Word{}).Count(&count)
	fmt.Printf("✓ Total words in database: %d\n", count)
}
