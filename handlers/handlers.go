// handlers/handlers.go - handler wiring and error mapping
package handlers

import (
	"os"

	"hangman/services"
	"hangman/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	gameService      *services.GameService
	scoreService     *services.ScoreService
	directoryService *services.DirectoryService
	watchHub         *services.WatchHub
)

// Init wires the handler package to its services.
func Init(games *services.GameService, scores *services.ScoreService, directory *services.DirectoryService, watch *services.WatchHub) {
	gameService = games
	scoreService = scores
	directoryService = directory
	watchHub = watch
}

// ErrorHandler maps application error kinds to HTTP status codes and
// renders a uniform JSON error body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	kind := utils.KindOf(err)

	switch kind {
	case utils.KindValidation, utils.KindInvalidGuess:
		code = fiber.StatusBadRequest
		message = err.Error()
	case utils.KindNotFound:
		code = fiber.StatusNotFound
		message = err.Error()
	case utils.KindInvalidState, utils.KindGameOver:
		code = fiber.StatusConflict
		message = err.Error()
	case utils.KindEmptyPool:
		code = fiber.StatusInternalServerError
		message = err.Error()
	default:
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == fiber.StatusInternalServerError {
		message = "An error occurred. Please try again later."
	}

	body := fiber.Map{
		"success": false,
		"error":   message,
	}
	if kind != "" {
		body["kind"] = kind
	}
	return c.Status(code).JSON(body)
}
