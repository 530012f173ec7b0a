package models

import (
	"time"
)

// Progress is one user's cumulative confidence on one card. There is at
// most one row per (user, card).
type Progress struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;uniqueIndex:idx_progress_user_card" json:"user_id"`
	User            User       `gorm:"foreignKey:UserID" json:"-"`
	CardID          uint       `gorm:"not null;uniqueIndex:idx_progress_user_card" json:"card_id"`
	Card            Card       `gorm:"foreignKey:CardID" json:"-"`
	ConfidenceScore float64    `gorm:"not null;default:0" json:"confidence_score"`
	ReviewCount     int        `gorm:"not null;default:0" json:"review_count"`
	LastReviewedAt  *time.Time `gorm:"default:null" json:"last_reviewed_at"`
}

func (Progress) TableName() string {
	return "user_card_progress"
}

// CardWithProgress pairs a card with the requesting user's progress on it.
// Progress is nil when the user has never reviewed the card.
type CardWithProgress struct {
	Card     Card      `json:"card"`
	Progress *Progress `json:"progress"`
}
