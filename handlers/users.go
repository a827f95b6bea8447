// handlers/users.go - per-user game listings
package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserGames returns a user's games filtered by completion status.
// Active games are returned unless ?completed=true.
// GET /api/users/:name/games?completed=
func GetUserGames(c *fiber.Ctx) error {
	completed := c.Query("completed") == "true"

	games, err := directoryService.GamesForUser(c.Params("name"), completed)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"games":   games,
	})
}
