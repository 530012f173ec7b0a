package store

import (
	"errors"

	"github.com/andrewpaige1/flashcards-api/dbctx"
	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/models"
	"gorm.io/gorm"
)

type CardRepo interface {
	Create(dbc dbctx.Context, card *models.Card) error
	GetByID(dbc dbctx.Context, id uint) (*models.Card, error)
	ListByDeck(dbc dbctx.Context, deckID uint) ([]models.Card, error)
	ListForSelection(dbc dbctx.Context, deckID *uint) ([]models.Card, error)
}

type cardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCardRepo(db *gorm.DB, baseLog *logger.Logger) CardRepo {
	return &cardRepo{db: db, log: baseLog.With("repo", "CardRepo")}
}

func (r *cardRepo) Create(dbc dbctx.Context, card *models.Card) error {
	return dbc.Conn(r.db).Omit("Deck").Create(card).Error
}

func (r *cardRepo) GetByID(dbc dbctx.Context, id uint) (*models.Card, error) {
	if id == 0 {
		return nil, nil
	}
	var card models.Card
	if err := dbc.Conn(r.db).First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) ListByDeck(dbc dbctx.Context, deckID uint) ([]models.Card, error) {
	return r.ListForSelection(dbc, &deckID)
}

// ListForSelection returns every card, or one deck's cards, in id order.
func (r *cardRepo) ListForSelection(dbc dbctx.Context, deckID *uint) ([]models.Card, error) {
	q := dbc.Conn(r.db).Order("id asc")
	if deckID != nil {
		q = q.Where("deck_id = ?", *deckID)
	}
	cards := []models.Card{}
	if err := q.Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
