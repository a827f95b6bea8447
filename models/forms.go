// models/forms.go - outbound forms and request bodies
package models

import "time"

// GameSnapshot is the game state returned by every game operation.
type GameSnapshot struct {
	Key               string   `json:"key"`
	AttemptsRemaining int      `json:"attempts_remaining"`
	GameOver          bool     `json:"game_over"`
	Message           string   `json:"message"`
	UserName          string   `json:"user_name"`
	GuessedWord       string   `json:"guessed_word"`
	AttemptedLetters  []string `json:"attempted_letters"`
	Clue              string   `json:"clue"`
	Date              string   `json:"date"`
	Score             int      `json:"score"`
	LevelComplete     bool     `json:"level_complete"`
}

// HistoryMove is one move in a game's replayable history.
type HistoryMove struct {
	Level             int       `json:"level"`
	Guess             string    `json:"guess"`
	Correct           bool      `json:"correct"`
	AttemptsRemaining int       `json:"attempts_remaining"`
	GuessedWord       string    `json:"guessed_word"`
	At                time.Time `json:"at"`
}

type GameHistory struct {
	Key      string        `json:"key"`
	UserName string        `json:"user_name"`
	Date     string        `json:"date"`
	Score    int           `json:"score"`
	Moves    []HistoryMove `json:"moves"`
}

type RankEntry struct {
	UserName     string  `json:"user_name"`
	TotalScore   int     `json:"total_score"`
	TotalPlayed  int     `json:"total_played"`
	AverageScore float64 `json:"average_score"`
}

type HighScoreEntry struct {
	UserName string `json:"user_name"`
	Score    int    `json:"score"`
	Date     string `json:"date"`
}

type NewGameRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email,omitempty"`
	// nil means "use the default of 6"; an explicit 0 is invalid
	AttemptsAllowed *int `json:"attempts_allowed,omitempty"`
}

type MakeMoveRequest struct {
	Guess string `json:"guess"`
}
