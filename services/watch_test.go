package services

import (
	"testing"

	"hangman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchHubPublishReachesSubscribers(t *testing.T) {
	hub := NewWatchHub()

	a := hub.Subscribe("game-1")
	b := hub.Subscribe("game-1")
	other := hub.Subscribe("game-2")

	hub.Publish("game-1", models.GameSnapshot{Key: "game-1", Message: "You chose well!"})

	for _, ch := range []chan models.GameSnapshot{a, b} {
		select {
		case snap := <-ch:
			assert.Equal(t, "game-1", snap.Key)
		default:
			t.Fatal("expected a snapshot on the subscriber channel")
		}
	}

	select {
	case <-other:
		t.Fatal("watcher of another game must not receive the snapshot")
	default:
	}
}

func TestWatchHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewWatchHub()

	ch := hub.Subscribe("game-1")
	hub.Unsubscribe("game-1", ch)

	_, open := <-ch
	assert.False(t, open)

	// publishing after the last watcher left is a no-op
	hub.Publish("game-1", models.GameSnapshot{Key: "game-1"})
}

func TestWatchHubSlowWatcherNeverBlocks(t *testing.T) {
	hub := NewWatchHub()
	ch := hub.Subscribe("game-1")

	// overflow the buffer; extra sends are dropped, not blocked on
	for i := 0; i < 20; i++ {
		hub.Publish("game-1", models.GameSnapshot{Key: "game-1", Score: i})
	}

	require.Equal(t, 8, len(ch))
	first := <-ch
	assert.Equal(t, 0, first.Score)
}
