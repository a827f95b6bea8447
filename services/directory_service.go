// services/directory_service.go - game lookup and listing by user
package services

import (
	"errors"

	"hangman/models"
	"hangman/utils"

	"gorm.io/gorm"
)

type DirectoryService struct {
	db *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

// GamesForUser returns snapshots of the user's games filtered by
// completion status.
func (s *DirectoryService) GamesForUser(userName string, completed bool) ([]models.GameSnapshot, error) {
	var user models.User
	err := s.db.Where("name = ?", userName).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.E(utils.KindNotFound, "user %q does not exist", userName)
	}
	if err != nil {
		return nil, err
	}

	var games []models.Game
	if err := s.db.Where("user_id = ? AND game_over = ?", user.ID, completed).Find(&games).Error; err != nil {
		return nil, err
	}

	snapshots := make([]models.GameSnapshot, 0, len(games))
	for i := range games {
		game := &games[i]
		_, level, word, err := loadGameParts(s.db, game)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, game.ToSnapshot(&user, level, word, ""))
	}
	return snapshots, nil
}
