package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/dbctx"
	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/models"
	"github.com/andrewpaige1/flashcards-api/store"
	"gorm.io/gorm"
)

// Service exposes the flashcard operations. Every call runs in its own
// transaction; a failed call persists nothing.
type Service interface {
	RegisterUser(ctx context.Context, username, email string) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateDeck(ctx context.Context, title string, description *string, ownerID uint) (*models.Deck, error)
	ListDecks(ctx context.Context, ownerID *uint) ([]models.Deck, error)
	GetDeck(ctx context.Context, deckID uint) (*models.Deck, error)

	CreateCard(ctx context.Context, deckID uint, question, answer string) (*models.Card, error)
	ListCards(ctx context.Context, deckID uint) ([]models.Card, error)

	RecordReview(ctx context.Context, userID, cardID uint, confidence float64) (*models.Progress, error)
	UserCards(ctx context.Context, userID uint, mode string, deckID *uint) ([]models.CardWithProgress, error)
}

type Repos struct {
	Users    store.UserRepo
	Decks    store.DeckRepo
	Cards    store.CardRepo
	Progress store.ProgressRepo
}

// NewRepos builds the gorm-backed repositories.
func NewRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Users:    store.NewUserRepo(db, log),
		Decks:    store.NewDeckRepo(db, log),
		Cards:    store.NewCardRepo(db, log),
		Progress: store.NewProgressRepo(db, log),
	}
}

type service struct {
	db    *gorm.DB
	log   *logger.Logger
	cfg   Config
	repos Repos
	now   func() time.Time
}

func NewService(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid study config: %w", err)
	}
	return &service{
		db:    db,
		log:   log.With("service", "StudyService"),
		cfg:   cfg,
		repos: repos,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) inTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}

func (s *service) RegisterUser(ctx context.Context, username, email string) (*models.User, error) {
	user := &models.User{Username: username, Email: email}
	err := s.inTx(ctx, func(dbc dbctx.Context) error {
		exists, err := s.repos.Users.ExistsByUsernameOrEmail(dbc, username, email)
		if err != nil {
			return fmt.Errorf("check existing user: %w", err)
		}
		if exists {
			return apperr.New(apperr.Conflict, "username or email already exists")
		}
		if err := s.repos.Users.Create(dbc, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Wrap(apperr.Conflict, errors.New("username or email already exists"))
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("User registered", "user_id", user.ID, "username", user.Username, "email", user.Email)
	return user, nil
}

func (s *service) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	var user *models.User
	err := s.inTx(ctx, func(dbc dbctx.Context) error {
		var err error
		user, err = s.requireUser(dbc, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repos.Users.GetByUsername(dbctx.Context{Ctx: ctx}, username)
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return user, nil
}

func (s *service) CreateDeck(ctx context.Context, title string, description *string, ownerID uint) (*models.Deck, error) {
	deck := &models.Deck{Title: title, Description: description, OwnerID: ownerID}
	err := s.inTx(ctx, func(dbc dbctx.Context) error {
		owner, err := s.repos.Users.GetByID(dbc, ownerID)
		if err != nil {
			return fmt.Errorf("lookup owner: %w", err)
		}
		if owner == nil {
			return apperr.New(apperr.NotFound, "owner not found")
		}
		if err := s.repos.Decks.Create(dbc, deck); err != nil {
			return fmt.Errorf("create deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Deck created", "deck_id", deck.ID, "owner_id", ownerID)
	return deck, nil
}

func (s *service) ListDecks(ctx context.Context, ownerID *uint) ([]models.Deck, error) {
	var decks []models.Deck
	err := s.inTx(ctx, func(dbc dbctx.Context) error {
		var err error
		decks, err = s.repos.Decks.List(dbc, ownerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

func (s *service) GetDeck(ctx context.Context, deckID uint) (*models.Deck, error) {
	var deck *models.Deck
	err := s.inTx(ctx, func(dbc dbctx.Context) error {
		var err error
		deck, err = s.requireDeck(dbc, deckID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *service) CreateCard(ctx context.Context, deckID uint, question, answer string) (*models.Card, error) {
	card := &models.Card{DeckID: deckID, Question: question, Answer: answer}
	err := s.inTx(ctx, func(dbc dbctx.Context) error {
		if _, err := s.requireDeck(dbc, deckID); err != nil {
			return err
		}
		if err := s.repos.Cards.Create(dbc, card); err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("Card created", "card_id", card.ID, "deck_id", deckID)
	return card, nil
}

func (s *service) ListCards(ctx context.Context, deckID uint) ([]models.Card, error) {
	var cards []models.Card
	err := s.inTx(ctx, func(dbc dbctx.Context) error {
		if _, err := s.requireDeck(dbc, deckID); err != nil {
			return err
		}
		var err error
		cards, err = s.repos.Cards.ListByDeck(dbc, deckID)
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// RecordReview folds one review into the user's progress on the card. The
// existing row is read with a lock so concurrent reviews of the same pair
// apply one after another.
func (s *service) RecordReview(ctx context.Context, userID, cardID uint, confidence float64) (*models.Progress, error) {
	if err := ValidateConfidence(confidence); err != nil {
		return nil, err
	}

	var updated models.Progress
	err := s.inTx(ctx, func(dbc dbctx.Context) error {
		if _, err := s.requireUser(dbc, userID); err != nil {
			return err
		}
		card, err := s.repos.Cards.GetByID(dbc, cardID)
		if err != nil {
			return fmt.Errorf("lookup card: %w", err)
		}
		if card == nil {
			return apperr.New(apperr.NotFound, "card not found")
		}

		prior, err := s.repos.Progress.FindForUpdate(dbc, userID, cardID)
		if err != nil {
			return fmt.Errorf("lookup progress: %w", err)
		}
		next, err := s.cfg.ApplyReview(prior, confidence, s.now())
		if err != nil {
			return err
		}
		next.UserID = userID
		next.CardID = cardID
		if err := s.repos.Progress.Upsert(dbc, &next); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Review recorded",
		"user_id", userID,
		"card_id", cardID,
		"confidence", confidence,
		"confidence_score", updated.ConfidenceScore,
		"review_count", updated.ReviewCount,
	)
	return &updated, nil
}

// UserCards returns the user's cards for mode, optionally limited to one
// deck, each paired with the user's progress.
func (s *service) UserCards(ctx context.Context, userID uint, rawMode string, deckID *uint) ([]models.CardWithProgress, error) {
	mode, err := ParseMode(rawMode)
	if err != nil {
		return nil, err
	}

	var selected []models.CardWithProgress
	err = s.inTx(ctx, func(dbc dbctx.Context) error {
		if _, err := s.requireUser(dbc, userID); err != nil {
			return err
		}
		if deckID != nil {
			if _, err := s.requireDeck(dbc, *deckID); err != nil {
				return err
			}
		}

		cards, err := s.repos.Cards.ListForSelection(dbc, deckID)
		if err != nil {
			return fmt.Errorf("list candidate cards: %w", err)
		}
		cardIDs := make([]uint, 0, len(cards))
		for _, card := range cards {
			cardIDs = append(cardIDs, card.ID)
		}
		byCard, err := s.repos.Progress.FindMany(dbc, userID, cardIDs)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		selected, err = s.cfg.SelectCards(cards, byCard, mode)
		return err
	})
	if err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *service) requireUser(dbc dbctx.Context, userID uint) (*models.User, error) {
	user, err := s.repos.Users.GetByID(dbc, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return user, nil
}

func (s *service) requireDeck(dbc dbctx.Context, deckID uint) (*models.Deck, error) {
	deck, err := s.repos.Decks.GetByID(dbc, deckID)
	if err != nil {
		return nil, fmt.Errorf("lookup deck: %w", err)
	}
	if deck == nil {
		return nil, apperr.New(apperr.NotFound, "deck not found")
	}
	return deck, nil
}
