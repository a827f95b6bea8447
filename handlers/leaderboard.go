// handlers/leaderboard.go - rankings and high scores
package handlers

import (
	"strconv"

	"hangman/utils"

	"github.com/gofiber/fiber/v2"
)

// GetUserRankings returns all users ordered by average score.
// GET /api/leaderboard/rankings
func GetUserRankings(c *fiber.Ctx) error {
	rankings, err := scoreService.Rankings()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"rankings": rankings,
	})
}

// GetHighScores returns the top individual completed-game scores.
// GET /api/leaderboard/high-scores?limit=10
func GetHighScores(c *fiber.Ctx) error {
	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return utils.E(utils.KindValidation, "limit must be an integer")
		}
		limit = n
	}

	scores, err := scoreService.HighScores(limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"scores":  scores,
	})
}
