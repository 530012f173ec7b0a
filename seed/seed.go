package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/study"
	"gopkg.in/yaml.v3"
)

// File describes users with their decks and cards to create at startup.
type File struct {
	Users []User `yaml:"users"`
}

type User struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Decks    []Deck `yaml:"decks"`
}

type Deck struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Cards       []Card `yaml:"cards"`
}

type Card struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for i, u := range f.Users {
		if strings.TrimSpace(u.Username) == "" || strings.TrimSpace(u.Email) == "" {
			return fmt.Errorf("seed user %d: username and email are required", i)
		}
		for j, d := range u.Decks {
			if strings.TrimSpace(d.Title) == "" {
				return fmt.Errorf("seed user %q deck %d: title is required", u.Username, j)
			}
			for k, c := range d.Cards {
				if strings.TrimSpace(c.Question) == "" || strings.TrimSpace(c.Answer) == "" {
					return fmt.Errorf("seed deck %q card %d: question and answer are required", d.Title, k)
				}
			}
		}
	}
	return nil
}

// Apply creates every seeded user that does not exist yet, with its decks
// and cards. Users already present are left untouched, so applying the same
// file twice is a no-op.
func Apply(ctx context.Context, svc study.Service, log *logger.Logger, f *File) error {
	for _, u := range f.Users {
		existing, err := svc.FindUserByUsername(ctx, u.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Debug("Seed user exists, skipping", "username", u.Username)
			continue
		}

		user, err := svc.RegisterUser(ctx, u.Username, u.Email)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		cardCount := 0
		for _, d := range u.Decks {
			var description *string
			if d.Description != "" {
				desc := d.Description
				description = &desc
			}
			deck, err := svc.CreateDeck(ctx, d.Title, description, user.ID)
			if err != nil {
				return fmt.Errorf("seed deck %q: %w", d.Title, err)
			}
			for _, c := range d.Cards {
				if _, err := svc.CreateCard(ctx, deck.ID, c.Question, c.Answer); err != nil {
					return fmt.Errorf("seed card in deck %q: %w", d.Title, err)
				}
				cardCount++
			}
		}
		log.Info("Seeded user", "username", u.Username, "decks", len(u.Decks), "cards", cardCount)
	}
	return nil
}
