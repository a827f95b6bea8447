// models/word.go - static word pool, read-only to game logic
package models

type Word struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"uniqueIndex;not null" json:"text"` // lowercase
	Clue string `gorm:"not null" json:"clue"`
}
