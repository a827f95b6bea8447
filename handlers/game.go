// handlers/game.go - game lifecycle endpoints
package handlers

import (
	"hangman/models"
	"hangman/services"
	"hangman/utils"

	"github.com/gofiber/fiber/v2"
)

// NewGame creates a game, creating the user first if needed.
// POST /api/games
func NewGame(c *fiber.Ctx) error {
	var req models.NewGameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.E(utils.KindValidation, "invalid request body")
	}

	attempts := services.DefaultAttemptsAllowed
	if req.AttemptsAllowed != nil {
		attempts = *req.AttemptsAllowed
	}

	snap, err := gameService.NewGame(req.UserName, req.Email, attempts)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// GetGame returns the specified game state.
// GET /api/games/:key
func GetGame(c *fiber.Ctx) error {
	snap, err := gameService.GetGame(c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

// MakeMove guesses a letter of the word, or the whole word.
// PUT /api/games/:key/move
func MakeMove(c *fiber.Ctx) error {
	var req models.MakeMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.E(utils.KindValidation, "invalid request body")
	}

	snap, err := gameService.MakeMove(c.Params("key"), req.Guess)
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

// NextLevel starts the next level once the current one is won.
// PUT /api/games/:key/next-level
func NextLevel(c *fiber.Ctx) error {
	snap, err := gameService.NextLevel(c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

// CancelGame deletes an unfinished game and its levels.
// DELETE /api/games/:key
func CancelGame(c *fiber.Ctx) error {
	if err := gameService.CancelGame(c.Params("key")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Game deleted.",
	})
}

// GetGameHistory returns the ordered move log of a game.
// GET /api/games/:key/history
func GetGameHistory(c *fiber.Ctx) error {
	history, err := gameService.GetHistory(c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(history)
}
