// models/level.go - one word-guessing round and its guess mechanics
package models

import (
	"encoding/json"
	"strings"
	"time"

	"hangman/utils"
)

type Level struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	GameKey string `gorm:"index;not null;size:64" json:"game_key"`
	WordID  uint   `gorm:"not null;index" json:"word_id"`
	Number  int    `gorm:"default:1" json:"number"` // ordinal within the game

	AttemptsRemaining int  `gorm:"not null" json:"attempts_remaining"`
	Complete          bool `gorm:"default:false" json:"complete"`
	Won               bool `gorm:"default:false" json:"won"`

	// Attempted guesses and the per-move log, stored as JSON text
	GuessesJSON string `gorm:"type:text" json:"-"`
	MovesJSON   string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Move is one applied guess. Only valid guesses are logged; rejected
// guesses never consume a move.
type Move struct {
	Guess             string    `json:"guess"`
	Correct           bool      `json:"correct"`
	AttemptsRemaining int       `json:"attempts_remaining"`
	GuessedWord       string    `json:"guessed_word"`
	At                time.Time `json:"at"`
}

func (l *Level) Guesses() []string {
	var guesses []string
	if l.GuessesJSON == "" {
		return []string{}
	}
	if err := json.Unmarshal([]byte(l.GuessesJSON), &guesses); err != nil {
		return []string{}
	}
	return guesses
}

func (l *Level) setGuesses(guesses []string) {
	data, err := json.Marshal(guesses)
	if err != nil {
		return
	}
	l.GuessesJSON = string(data)
}

func (l *Level) Moves() []Move {
	var moves []Move
	if l.MovesJSON == "" {
		return []Move{}
	}
	if err := json.Unmarshal([]byte(l.MovesJSON), &moves); err != nil {
		return []Move{}
	}
	return moves
}

func (l *Level) appendMove(m Move) {
	moves := append(l.Moves(), m)
	data, err := json.Marshal(moves)
	if err != nil {
		return
	}
	l.MovesJSON = string(data)
}

// ApplyGuess validates and applies a single guess against the level's
// word. The guess is either one letter or the whole word. Rejections
// (already complete, repeated or malformed guess) leave the level
// untouched. A winning guess never decrements attempts, so the score
// for a won level is the attempts remaining at this moment.
func (l *Level) ApplyGuess(word, guess string, now time.Time) error {
	if l.Complete {
		return utils.E(utils.KindInvalidGuess, "level is already complete")
	}
	if l.AttemptsRemaining <= 0 {
		return utils.E(utils.KindInvalidGuess, "no attempts remaining")
	}

	guess = strings.ToLower(strings.TrimSpace(guess))
	if !validGuess(word, guess) {
		return utils.E(utils.KindInvalidGuess, "guess one letter or the whole word")
	}

	guesses := l.Guesses()
	for _, g := range guesses {
		if g == guess {
			return utils.E(utils.KindInvalidGuess, "guess %q was already attempted", guess)
		}
	}

	var correct bool
	if len(guess) > 1 {
		// whole-word guess
		if guess == word {
			correct = true
			l.Complete = true
			l.Won = true
			// every letter of the word counts as attempted
			for _, r := range word {
				if r == ' ' {
					continue
				}
				letter := string(r)
				if !containsString(guesses, letter) {
					guesses = append(guesses, letter)
				}
			}
		} else {
			l.AttemptsRemaining--
			guesses = append(guesses, guess)
		}
	} else {
		// single-letter guess
		guesses = append(guesses, guess)
		if strings.Contains(word, guess) {
			correct = true
			if allLettersAttempted(word, guesses) {
				l.Complete = true
				l.Won = true
			}
		} else {
			l.AttemptsRemaining--
		}
	}

	if !l.Won && l.AttemptsRemaining <= 0 {
		// attempts exhausted, the level is lost
		l.AttemptsRemaining = 0
		l.Complete = true
	}

	l.setGuesses(guesses)
	l.appendMove(Move{
		Guess:             guess,
		Correct:           correct,
		AttemptsRemaining: l.AttemptsRemaining,
		GuessedWord:       l.GuessedWord(word),
		At:                now,
	})

	return nil
}

// GuessedWord renders the display string: one character per letter,
// revealed when attempted, underscore otherwise. Spaces pass through.
func (l *Level) GuessedWord(word string) string {
	guesses := l.Guesses()
	var b strings.Builder
	for _, r := range word {
		switch {
		case r == ' ':
			b.WriteRune(' ')
		case containsString(guesses, string(r)):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func validGuess(word, guess string) bool {
	if guess == "" {
		return false
	}
	if len(guess) != 1 && len(guess) != len(word) {
		return false
	}
	for _, r := range guess {
		if r == ' ' && len(guess) > 1 {
			continue
		}
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func allLettersAttempted(word string, guesses []string) bool {
	for _, r := range word {
		if r == ' ' {
			continue
		}
		if !containsString(guesses, string(r)) {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
