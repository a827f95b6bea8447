// models/user.go
package models

import (
	"time"
)

type User struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"uniqueIndex;not null" json:"name"`
	Email *string `gorm:"index" json:"email,omitempty"`

	// Ranking aggregates, updated only when a game completes
	TotalScore   int     `gorm:"default:0" json:"total_score"`
	TotalPlayed  int     `gorm:"default:0" json:"total_played"`
	AverageScore float64 `gorm:"default:0" json:"average_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordCompletedGame folds a finished game's score into the user's
// ranking aggregates. Average is total/played and never divides by zero.
func (u *User) RecordCompletedGame(gameScore int) {
	u.TotalScore += gameScore
	u.TotalPlayed++
	u.AverageScore = float64(u.TotalScore) / float64(u.TotalPlayed)
}

func (u *User) ToRankEntry() RankEntry {
	return RankEntry{
		UserName:     u.Name,
		TotalScore:   u.TotalScore,
		TotalPlayed:  u.TotalPlayed,
		AverageScore: u.AverageScore,
	}
}
