// services/game_service.go - the game state machine
package services

import (
	"errors"
	"fmt"
	"time"

	"hangman/models"
	"hangman/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultAttemptsAllowed = 6

type GameService struct {
	db     *gorm.DB
	scores *ScoreService
	watch  *WatchHub
}

func NewGameService(db *gorm.DB, scores *ScoreService, watch *WatchHub) *GameService {
	return &GameService{db: db, scores: scores, watch: watch}
}

// NewGame resolves or creates the user and starts a game with its first
// level, all within one transaction. Combining user creation with game
// creation keeps a fresh user visible to the game insert without a
// second round trip.
func (s *GameService) NewGame(userName, email string, attemptsAllowed int) (*models.GameSnapshot, error) {
	if userName == "" {
		return nil, utils.E(utils.KindValidation, "user name must not be empty")
	}
	if attemptsAllowed <= 0 {
		return nil, utils.E(utils.KindValidation, "attempts allowed must be greater than zero")
	}

	var snap models.GameSnapshot
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("name = ?", userName).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{Name: userName}
			if email != "" {
				user.Email = &email
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		game := models.Game{
			Key:             uuid.New().String(),
			UserID:          user.ID,
			AttemptsAllowed: attemptsAllowed,
			Status:          models.GameStatusActive,
		}
		if err := tx.Create(&game).Error; err != nil {
			return err
		}

		level, word, err := s.startLevel(tx, &game, 1)
		if err != nil {
			return err
		}

		snap = game.ToSnapshot(&user, level, word, fmt.Sprintf("Make your move, %s!", user.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// MakeMove applies a guess to the game's current level. Level wins move
// the game to level_complete; a lost level ends the game and settles the
// user's score ledger.
func (s *GameService) MakeMove(key, guess string) (*models.GameSnapshot, error) {
	var snap models.GameSnapshot
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := lockGame(tx, key)
		if err != nil {
			return err
		}
		if game.GameOver {
			return utils.E(utils.KindGameOver, "game is already over")
		}

		user, level, word, err := loadGameParts(tx, game)
		if err != nil {
			return err
		}

		if err := level.ApplyGuess(word.Text, guess, time.Now()); err != nil {
			return err
		}

		var message string
		switch {
		case level.Won:
			game.Score += level.AttemptsRemaining
			game.Status = models.GameStatusLevelComplete
			message = "Level complete, get the next level."
		case level.Complete:
			// attempts exhausted, the failed level contributes nothing
			now := time.Now()
			game.GameOver = true
			game.Status = models.GameStatusCompleted
			game.CompletedAt = &now
			if err := s.scores.RecordCompletedGame(tx, user, game.Score); err != nil {
				return err
			}
			message = fmt.Sprintf("Game over! You scored %d.", game.Score)
		default:
			moves := level.Moves()
			if len(moves) > 0 && moves[len(moves)-1].Correct {
				message = "You chose well!"
			} else {
				message = "You chose poorly!"
			}
		}

		if err := tx.Save(level).Error; err != nil {
			return err
		}
		if err := tx.Save(game).Error; err != nil {
			return err
		}

		snap = game.ToSnapshot(user, level, word, message)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.watch != nil {
		s.watch.Publish(key, snap)
	}
	return &snap, nil
}

// NextLevel starts a new level after the current one was won. The new
// level gets the attempts budget configured at game creation.
func (s *GameService) NextLevel(key string) (*models.GameSnapshot, error) {
	var snap models.GameSnapshot
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := lockGame(tx, key)
		if err != nil {
			return err
		}
		if game.GameOver {
			return utils.E(utils.KindInvalidState, "game is already over")
		}
		if game.Status != models.GameStatusLevelComplete {
			return utils.E(utils.KindInvalidState, "current level is not complete")
		}

		var user models.User
		if err := tx.First(&user, game.UserID).Error; err != nil {
			return err
		}

		var current models.Level
		if err := tx.First(&current, game.CurrentLevelID).Error; err != nil {
			return err
		}

		level, word, err := s.startLevel(tx, game, current.Number+1)
		if err != nil {
			return err
		}

		game.Status = models.GameStatusActive
		if err := tx.Save(game).Error; err != nil {
			return err
		}

		snap = game.ToSnapshot(&user, level, word, fmt.Sprintf("Make your move, %s!", user.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.watch != nil {
		s.watch.Publish(key, snap)
	}
	return &snap, nil
}

// CancelGame deletes an unfinished game and all its levels. Cancellation
// is not a loss: the score ledger is untouched.
func (s *GameService) CancelGame(key string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		game, err := lockGame(tx, key)
		if err != nil {
			return err
		}
		if game.GameOver {
			return utils.E(utils.KindInvalidState, "completed game cannot be cancelled")
		}

		if err := tx.Where("game_key = ?", game.Key).Delete(&models.Level{}).Error; err != nil {
			return err
		}
		return tx.Delete(game).Error
	})
}

// GetGame returns the current state snapshot of a game.
func (s *GameService) GetGame(key string) (*models.GameSnapshot, error) {
	game, err := findGame(s.db, key)
	if err != nil {
		return nil, err
	}

	user, level, word, err := loadGameParts(s.db, game)
	if err != nil {
		return nil, err
	}

	var message string
	switch {
	case game.GameOver:
		message = fmt.Sprintf("You scored %d.", game.Score)
	case level.Complete:
		message = "Level complete."
	default:
		message = fmt.Sprintf("Make your move, %s!", user.Name)
	}

	snap := game.ToSnapshot(user, level, word, message)
	return &snap, nil
}

// GetHistory returns the ordered move log across all levels played so
// far, regardless of game status.
func (s *GameService) GetHistory(key string) (*models.GameHistory, error) {
	game, err := findGame(s.db, key)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, game.UserID).Error; err != nil {
		return nil, err
	}

	var levels []models.Level
	if err := s.db.Where("game_key = ?", game.Key).Order("number ASC").Find(&levels).Error; err != nil {
		return nil, err
	}

	history := models.GameHistory{
		Key:      game.Key,
		UserName: user.Name,
		Date:     game.CreatedAt.Format("2006-01-02"),
		Score:    game.Score,
		Moves:    []models.HistoryMove{},
	}
	for _, level := range levels {
		for _, move := range level.Moves() {
			history.Moves = append(history.Moves, models.HistoryMove{
				Level:             level.Number,
				Guess:             move.Guess,
				Correct:           move.Correct,
				AttemptsRemaining: move.AttemptsRemaining,
				GuessedWord:       move.GuessedWord,
				At:                move.At,
			})
		}
	}
	return &history, nil
}

// startLevel pulls a word and creates the level as the game's current
// one. Prefers words the owning user has not yet played.
func (s *GameService) startLevel(tx *gorm.DB, game *models.Game, number int) (*models.Level, *models.Word, error) {
	word, err := pickWordForUser(tx, game.UserID)
	if err != nil {
		return nil, nil, err
	}

	level := models.Level{
		GameKey:           game.Key,
		WordID:            word.ID,
		Number:            number,
		AttemptsRemaining: game.AttemptsAllowed,
	}
	if err := tx.Create(&level).Error; err != nil {
		return nil, nil, err
	}

	game.CurrentLevelID = level.ID
	if err := tx.Save(game).Error; err != nil {
		return nil, nil, err
	}
	return &level, word, nil
}

// lockGame loads a game with a row lock under postgres so concurrent
// moves on the same game serialize instead of losing updates.
func lockGame(tx *gorm.DB, key string) (*models.Game, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return findGame(q, key)
}

func findGame(db *gorm.DB, key string) (*models.Game, error) {
	var game models.Game
	err := db.Where("key = ?", key).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.E(utils.KindNotFound, "game not found")
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// loadGameParts resolves the owning user, the current level and its word.
func loadGameParts(db *gorm.DB, game *models.Game) (*models.User, *models.Level, *models.Word, error) {
	var user models.User
	if err := db.First(&user, game.UserID).Error; err != nil {
		return nil, nil, nil, err
	}
	var level models.Level
	if err := db.First(&level, game.CurrentLevelID).Error; err != nil {
		return nil, nil, nil, err
	}
	var word models.Word
	if err := db.First(&word, level.WordID).Error; err != nil {
		return nil, nil, nil, err
	}
	return &user, &level, &word, nil
}
