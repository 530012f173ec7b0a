package models

import "time"

// Deck represents a collection of cards owned by a user
type Deck struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description *string   `gorm:"size:1000" json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       User      `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
