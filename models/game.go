// models/game.go - Game entity and its status machine fields
package models

import (
	"time"
)

// Game status values. A game is "level_complete" between winning a level
// and requesting the next one; "completed" is terminal.
const (
	GameStatusActive        = "active"
	GameStatusLevelComplete = "level_complete"
	GameStatusCompleted     = "completed"
)

type Game struct {
	Key             string `gorm:"primaryKey;size:64" json:"key"` // UUID
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	AttemptsAllowed int    `gorm:"not null" json:"attempts_allowed"`

	// Identifier of the level currently being played. Games and levels
	// live in independent tables; there is no embedded back-pointer.
	CurrentLevelID uint `gorm:"default:0" json:"current_level_id"`

	Score    int    `gorm:"default:0" json:"score"`
	Status   string `gorm:"default:'active';size:20;index" json:"status"`
	GameOver bool   `gorm:"default:false;index" json:"game_over"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ToSnapshot builds the outbound game state form. The word is revealed
// in full once the game is over.
func (g *Game) ToSnapshot(user *User, level *Level, word *Word, message string) GameSnapshot {
	guessed := level.GuessedWord(word.Text)
	if g.GameOver {
		guessed = word.Text
	}

	return GameSnapshot{
		Key:               g.Key,
		AttemptsRemaining: level.AttemptsRemaining,
		GameOver:          g.GameOver,
		Message:           message,
		UserName:          user.Name,
		GuessedWord:       guessed,
		AttemptedLetters:  level.Guesses(),
		Clue:              word.Clue,
		Date:              g.CreatedAt.Format("2006-01-02"),
		Score:             g.Score,
		LevelComplete:     level.Complete,
	}
}

func (g *Game) ToHighScoreEntry(user *User) HighScoreEntry {
	date := g.CreatedAt
	if g.CompletedAt != nil {
		date = *g.CompletedAt
	}
	return HighScoreEntry{
		UserName: user.Name,
		Score:    g.Score,
		Date:     date.Format("2006-01-02"),
	}
}
