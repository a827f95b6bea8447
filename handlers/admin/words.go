// handlers/admin/words.go - word pool management and maintenance triggers
package admin

import (
	"hangman/database"
	"hangman/models"
	"hangman/services"

	"github.com/gofiber/fiber/v2"
)

type importRequest struct {
	Words []struct {
		Name string `json:"name"`
		Clue string `json:"clue"`
	} `json:"words"`
}

// GetWords lists the word pool.
// GET /api/admin/words
func GetWords(c *fiber.Ctx) error {
	db := database.GetDB()

	var words []models.Word
	if err := db.Order("text ASC").Find(&words).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to fetch word pool",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(words),
		"words":   words,
	})
}

// ImportWords inserts new (word, clue) pairs into the pool. Entries
// already present are skipped.
// POST /api/admin/words/import
func ImportWords(c *fiber.Ctx) error {
	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if len(req.Words) == 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "No words provided",
		})
	}

	db := database.GetDB()
	inserted := 0
	skipped := 0
	for _, entry := range req.Words {
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
			skipped++
			continue
		}
		inserted++
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"inserted": inserted,
		"skipped":  skipped,
	})
}

// ScanReminders runs a reminder scan immediately and returns the result.
// POST /api/admin/reminders/scan
func ScanReminders(c *fiber.Ctx) error {
	svc := services.GetReminderService()
	if svc == nil {
		return c.Status(503).JSON(fiber.Map{
			"error": "Reminder service not initialized",
		})
	}

	reminders, err := svc.Scan()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error": "Reminder scan failed",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"reminders": reminders,
	})
}
