package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderScanFindsUsersWithActiveGames(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	seedWord(t, db, "dog", "barks")
	games := newTestGameService(db)

	// alice: email and two active games
	_, err := games.NewGame("alice", "alice@example.com", 6)
	require.NoError(t, err)
	_, err = games.NewGame("alice", "", 6)
	require.NoError(t, err)

	// bob: email but his only game is finished
	lost, err := games.NewGame("bob", "bob@example.com", 1)
	require.NoError(t, err)
	_, err = games.MakeMove(lost.Key, "q")
	require.NoError(t, err)

	// carol: active game but no email
	_, err = games.NewGame("carol", "", 6)
	require.NoError(t, err)

	svc := &ReminderService{db: db}
	reminders, err := svc.Scan()
	require.NoError(t, err)

	require.Len(t, reminders, 1)
	assert.Equal(t, "alice", reminders[0].UserName)
	assert.Equal(t, "alice@example.com", reminders[0].Email)
	assert.Equal(t, 2, reminders[0].ActiveGames)
}

func TestReminderScanEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)

	svc := &ReminderService{db: db}
	reminders, err := svc.Scan()
	require.NoError(t, err)
	assert.Empty(t, reminders)
}
