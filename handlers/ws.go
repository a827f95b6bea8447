// handlers/ws.go - live game watch over websocket
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// GameWatchUpgrade gates the watch route to websocket upgrade requests.
func GameWatchUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// GameWatch streams the game's state snapshot after every applied move
// until the client disconnects. The current state is sent on connect.
// GET /ws/games/:key
var GameWatch = websocket.New(func(conn *websocket.Conn) {
	defer conn.Close()

	key := conn.Params("key")
	snap, err := gameService.GetGame(key)
	if err != nil {
		_ = conn.WriteJSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if err := conn.WriteJSON(snap); err != nil {
		return
	}

	updates := watchHub.Subscribe(key)
	defer watchHub.Unsubscribe(key, updates)

	// the read loop only serves to detect the client going away
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		case <-done:
			return
		}
	}
})
