package models

import "time"

// Card represents an individual flashcard
type Card struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeckID    uint      `gorm:"not null;index" json:"deck_id"`
	Deck      Deck      `gorm:"foreignKey:DeckID" json:"-"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
