package services

import (
	"testing"

	"hangman/models"
	"hangman/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.Level{},
		&models.Word{},
	))
	return db
}

func seedWord(t *testing.T, db *gorm.DB, text, clue string) models.Word {
	word := models.Word{Text: text, Clue: clue}
	require.NoError(t, db.Create(&word).Error)
	return word
}

func newTestGameService(db *gorm.DB) *GameService {
	return NewGameService(db, NewScoreService(db), nil)
}

func TestNewGameValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGameService(db)

	_, err := svc.NewGame("", "", 6)
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.NewGame("alice", "", 0)
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.NewGame("alice", "", -3)
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestNewGameEmptyPool(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGameService(db)

	_, err := svc.NewGame("alice", "", 6)
	require.Error(t, err)
	assert.Equal(t, utils.KindEmptyPool, utils.KindOf(err))
}

func TestNewGameCreatesUserAndFirstLevel(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	svc := newTestGameService(db)

	snap, err := svc.NewGame("alice", "alice@example.com", 6)
	require.NoError(t, err)

	assert.NotEmpty(t, snap.Key)
	assert.Equal(t, "alice", snap.UserName)
	assert.Equal(t, "___", snap.GuessedWord)
	assert.Equal(t, 6, snap.AttemptsRemaining)
	assert.Equal(t, "pet", snap.Clue)
	assert.Equal(t, 0, snap.Score)
	assert.False(t, snap.GameOver)
	assert.False(t, snap.LevelComplete)
	assert.Equal(t, "Make your move, alice!", snap.Message)

	var user models.User
	require.NoError(t, db.Where("name = ?", "alice").First(&user).Error)
	require.NotNil(t, user.Email)
	assert.Equal(t, "alice@example.com", *user.Email)

	// a second game reuses the same user
	_, err = svc.NewGame("alice", "", 6)
	require.NoError(t, err)
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMakeMoveScenario(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 6)
	require.NoError(t, err)

	snap, err := svc.MakeMove(game.Key, "c")
	require.NoError(t, err)
	assert.Equal(t, "c__", snap.GuessedWord)
	assert.Equal(t, 6, snap.AttemptsRemaining)
	assert.Equal(t, "You chose well!", snap.Message)

	snap, err = svc.MakeMove(game.Key, "z")
	require.NoError(t, err)
	assert.Equal(t, 5, snap.AttemptsRemaining)
	assert.Equal(t, "You chose poorly!", snap.Message)

	snap, err = svc.MakeMove(game.Key, "cat")
	require.NoError(t, err)
	assert.True(t, snap.LevelComplete)
	assert.Equal(t, 5, snap.Score)
	assert.False(t, snap.GameOver)
}

func TestMakeMoveRepeatedGuessChangesNothing(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 6)
	require.NoError(t, err)

	_, err = svc.MakeMove(game.Key, "z")
	require.NoError(t, err)

	_, err = svc.MakeMove(game.Key, "z")
	require.Error(t, err)
	assert.Equal(t, utils.KindInvalidGuess, utils.KindOf(err))

	snap, err := svc.GetGame(game.Key)
	require.NoError(t, err)
	assert.Equal(t, 5, snap.AttemptsRemaining)
}

func TestMakeMoveUnknownGame(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	svc := newTestGameService(db)

	_, err := svc.MakeMove("no-such-key", "a")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestLossEndsGameAndSettlesLedger(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 1)
	require.NoError(t, err)

	snap, err := svc.MakeMove(game.Key, "z")
	require.NoError(t, err)
	assert.True(t, snap.GameOver)
	assert.Equal(t, 0, snap.AttemptsRemaining)
	assert.Equal(t, 0, snap.Score)
	// the word is revealed once the game is over
	assert.Equal(t, "cat", snap.GuessedWord)
	assert.Equal(t, "Game over! You scored 0.", snap.Message)

	var user models.User
	require.NoError(t, db.Where("name = ?", "alice").First(&user).Error)
	assert.Equal(t, 1, user.TotalPlayed)
	assert.Equal(t, 0, user.TotalScore)
	assert.Equal(t, float64(0), user.AverageScore)

	// no further moves on a completed game
	_, err = svc.MakeMove(game.Key, "a")
	require.Error(t, err)
	assert.Equal(t, utils.KindGameOver, utils.KindOf(err))
}

func TestScoreAccumulatesAcrossLevels(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	seedWord(t, db, "dog", "barks")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 6)
	require.NoError(t, err)

	first, err := svc.GetGame(game.Key)
	require.NoError(t, err)

	// win the first level with a whole-word guess
	snap, err := svc.MakeMove(game.Key, wordForClue(t, db, first.Clue))
	require.NoError(t, err)
	assert.True(t, snap.LevelComplete)
	assert.Equal(t, 6, snap.Score)

	snap, err = svc.NextLevel(game.Key)
	require.NoError(t, err)
	assert.False(t, snap.LevelComplete)
	assert.Equal(t, 6, snap.AttemptsRemaining)
	assert.Equal(t, 6, snap.Score)

	// lose the second level; its contribution stays zero
	for _, guess := range []string{"q", "w", "r", "u", "i", "x"} {
		snap, err = svc.MakeMove(game.Key, guess)
		require.NoError(t, err)
		if snap.GameOver {
			break
		}
	}
	require.True(t, snap.GameOver)
	assert.Equal(t, 6, snap.Score)

	var user models.User
	require.NoError(t, db.Where("name = ?", "alice").First(&user).Error)
	assert.Equal(t, 6, user.TotalScore)
	assert.Equal(t, 1, user.TotalPlayed)
	assert.Equal(t, float64(6), user.AverageScore)
}

func TestNextLevelRequiresCompletedLevel(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 6)
	require.NoError(t, err)

	_, err = svc.NextLevel(game.Key)
	require.Error(t, err)
	assert.Equal(t, utils.KindInvalidState, utils.KindOf(err))
}

func TestNextLevelUsesConfiguredAttempts(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	seedWord(t, db, "dog", "barks")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 3)
	require.NoError(t, err)

	first, err := svc.GetGame(game.Key)
	require.NoError(t, err)
	_, err = svc.MakeMove(game.Key, wordForClue(t, db, first.Clue))
	require.NoError(t, err)

	snap, err := svc.NextLevel(game.Key)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.AttemptsRemaining)

	var levels []models.Level
	require.NoError(t, db.Where("game_key = ?", game.Key).Order("number ASC").Find(&levels).Error)
	require.Len(t, levels, 2)
	assert.Equal(t, 2, levels[1].Number)
}

func TestCancelGameRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 6)
	require.NoError(t, err)

	require.NoError(t, svc.CancelGame(game.Key))

	_, err = svc.GetGame(game.Key)
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	// cancellation cascades to levels
	var count int64
	db.Model(&models.Level{}).Where("game_key = ?", game.Key).Count(&count)
	assert.Equal(t, int64(0), count)

	// cancellation is not a loss
	var user models.User
	require.NoError(t, db.Where("name = ?", "alice").First(&user).Error)
	assert.Equal(t, 0, user.TotalPlayed)
}

func TestCancelCompletedGameRejected(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 1)
	require.NoError(t, err)
	_, err = svc.MakeMove(game.Key, "z")
	require.NoError(t, err)

	err = svc.CancelGame(game.Key)
	require.Error(t, err)
	assert.Equal(t, utils.KindInvalidState, utils.KindOf(err))
}

func TestGetHistoryAcrossLevels(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	seedWord(t, db, "dog", "barks")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 6)
	require.NoError(t, err)

	first, err := svc.GetGame(game.Key)
	require.NoError(t, err)
	_, err = svc.MakeMove(game.Key, wordForClue(t, db, first.Clue))
	require.NoError(t, err)
	_, err = svc.NextLevel(game.Key)
	require.NoError(t, err)
	_, err = svc.MakeMove(game.Key, "z")
	require.NoError(t, err)

	history, err := svc.GetHistory(game.Key)
	require.NoError(t, err)
	assert.Equal(t, "alice", history.UserName)
	require.Len(t, history.Moves, 2)
	assert.Equal(t, 1, history.Moves[0].Level)
	assert.True(t, history.Moves[0].Correct)
	assert.Equal(t, 2, history.Moves[1].Level)
	assert.Equal(t, "z", history.Moves[1].Guess)
}

func TestPickForUserPrefersUnplayedWord(t *testing.T) {
	db := setupTestDB(t)
	seedWord(t, db, "cat", "pet")
	seedWord(t, db, "dog", "barks")
	svc := newTestGameService(db)

	game, err := svc.NewGame("alice", "", 6)
	require.NoError(t, err)

	var level models.Level
	require.NoError(t, db.Where("game_key = ?", game.Key).First(&level).Error)

	var user models.User
	require.NoError(t, db.Where("name = ?", "alice").First(&user).Error)

	words := NewWordService(db)
	for i := 0; i < 5; i++ {
		picked, err := words.PickForUser(user.ID)
		require.NoError(t, err)
		assert.NotEqual(t, level.WordID, picked.ID)
	}
}

// wordForClue resolves the word text behind a snapshot's clue, since
// the pick is random.
func wordForClue(t *testing.T, db *gorm.DB, clue string) string {
	t.Helper()
	var word models.Word
	require.NoError(t, db.Where("clue = ?", clue).First(&word).Error)
	return word.Text
}
