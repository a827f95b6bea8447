// services/watch.go - per-game snapshot broadcast for websocket watchers
package services

import (
	"sync"

	"hangman/models"
)

// WatchHub fans out game state snapshots to websocket subscribers of a
// given game. Sends never block: slow watchers miss intermediate states
// and catch up on the next move.
type WatchHub struct {
	mu   sync.RWMutex
	subs map[string]map[chan models.GameSnapshot]struct{}
}

func NewWatchHub() *WatchHub {
	return &WatchHub{
		subs: make(map[string]map[chan models.GameSnapshot]struct{}),
	}
}

// Subscribe registers a watcher for a game and returns its channel.
func (h *WatchHub) Subscribe(gameKey string) chan models.GameSnapshot {
	ch := make(chan models.GameSnapshot, 8)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[gameKey] == nil {
		h.subs[gameKey] = make(map[chan models.GameSnapshot]struct{})
	}
	h.subs[gameKey][ch] = struct{}{}
	return ch
}

// Unsubscribe removes a watcher and closes its channel.
func (h *WatchHub) Unsubscribe(gameKey string, ch chan models.GameSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subs[gameKey]; ok {
		if _, ok := set[ch]; ok {
			delete(set, ch)
			close(ch)
		}
		if len(set) == 0 {
			delete(h.subs, gameKey)
		}
	}
}

// Publish sends a snapshot to every watcher of the game.
func (h *WatchHub) Publish(gameKey string, snap models.GameSnapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[gameKey] {
		select {
		case ch <- snap:
		default:
		}
	}
}
