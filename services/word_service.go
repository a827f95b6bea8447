// services/word_service.go - word bank access
package services

import (
	"errors"

	"hangman/models"
	"hangman/utils"

	"gorm.io/gorm"
)

type WordService struct {
	db *gorm.DB
}

func NewWordService(db *gorm.DB) *WordService {
	return &WordService{db: db}
}

// PickRandom returns one word chosen uniformly at random from the pool.
func (s *WordService) PickRandom() (*models.Word, error) {
	return pickRandomWord(s.db)
}

// PickForUser prefers a word the user has never played across any of
// their games, falling back to a plain random pick once the user has
// seen the whole pool.
func (s *WordService) PickForUser(userID uint) (*models.Word, error) {
	return pickWordForUser(s.db, userID)
}

func (s *WordService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Word{}).Count(&count).Error
	return count, err
}

func pickRandomWord(db *gorm.DB) (*models.Word, error) {
	var word models.Word
	err := db.Order("RANDOM()").First(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.E(utils.KindEmptyPool, "word pool is empty")
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

func pickWordForUser(db *gorm.DB, userID uint) (*models.Word, error) {
	var word models.Word
	err := db.
		Where("id NOT IN (SELECT levels.word_id FROM levels JOIN games ON games.key = levels.game_key WHERE games.user_id = ?)", userID).
		Order("RANDOM()").
		First(&word).Error
	if err == nil {
		return &word, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// user has played every word, allow repeats
		return pickRandomWord(db)
	}
	return nil, err
}
