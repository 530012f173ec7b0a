package store

import (
	"errors"

	"github.com/andrewpaige1/flashcards-api/dbctx"
	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/models"
	"gorm.io/gorm"
)

type DeckRepo interface {
	Create(dbc dbctx.Context, deck *models.Deck) error
	GetByID(dbc dbctx.Context, id uint) (*models.Deck, error)
	List(dbc dbctx.Context, ownerID *uint) ([]models.Deck, error)
}

type deckRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDeckRepo(db *gorm.DB, baseLog *logger.Logger) DeckRepo {
	return &deckRepo{db: db, log: baseLog.With("repo", "DeckRepo")}
}

func (r *deckRepo) Create(dbc dbctx.Context, deck *models.Deck) error {
	return dbc.Conn(r.db).Omit("Owner").Create(deck).Error
}

func (r *deckRepo) GetByID(dbc dbctx.Context, id uint) (*models.Deck, error) {
	if id == 0 {
		return nil, nil
	}
	var deck models.Deck
	if err := dbc.Conn(r.db).First(&deck, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deck, nil
}

// List returns decks in insertion order, restricted to one owner when
// ownerID is set.
func (r *deckRepo) List(dbc dbctx.Context, ownerID *uint) ([]models.Deck, error) {
	q := dbc.Conn(r.db).Order("id asc")
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	decks := []models.Deck{}
	if err := q.Find(&decks).Error; err != nil {
		return nil, err
	}
	return decks, nil
}
