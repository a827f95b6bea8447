// services/score_service.go - per-user score ledger and leaderboards
package services

import (
	"time"

	"hangman/models"
	"hangman/utils"

	"gorm.io/gorm"
)

type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

// RecordCompletedGame folds a finished game into the owning user's
// aggregates. Runs on the caller's transaction so the game's terminal
// transition and the ledger update commit together.
func (s *ScoreService) RecordCompletedGame(tx *gorm.DB, user *models.User, gameScore int) error {
	user.RecordCompletedGame(gameScore)
	return tx.Save(user).Error
}

// Rankings returns all users ordered by average score descending, ties
// broken by total score descending then name ascending.
func (s *ScoreService) Rankings() ([]models.RankEntry, error) {
	var users []models.User
	err := s.db.
		Order("average_score DESC, total_score DESC, name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	entries := make([]models.RankEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, u.ToRankEntry())
	}
	return entries, nil
}

// HighScores returns the top n individual completed-game scores across
// all users, ties broken by earlier completion.
func (s *ScoreService) HighScores(n int) ([]models.HighScoreEntry, error) {
	if n <= 0 {
		return nil, utils.E(utils.KindValidation, "number of results must be greater than zero")
	}

	var rows []struct {
		Name        string
		Score       int
		CreatedAt   time.Time
		CompletedAt *time.Time
	}
	err := s.db.Table("games").
		Select("users.name AS name, games.score AS score, games.created_at AS created_at, games.completed_at AS completed_at").
		Joins("JOIN users ON users.id = games.user_id").
		Where("games.game_over = ?", true).
		Order("games.score DESC, games.completed_at ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]models.HighScoreEntry, 0, len(rows))
	for _, row := range rows {
		date := row.CreatedAt
		if row.CompletedAt != nil {
			date = *row.CompletedAt
		}
		entries = append(entries, models.HighScoreEntry{
			UserName: row.Name,
			Score:    row.Score,
			Date:     date.Format("2006-01-02"),
		})
	}
	return entries, nil
}
