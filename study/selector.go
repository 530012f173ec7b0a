package study

import (
	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/models"
)

type Mode string

const (
	ModeLearn Mode = "learn"
	ModeRecap Mode = "recap"
)

// ParseMode accepts exactly "learn" or "recap".
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeLearn, ModeRecap:
		return Mode(raw), nil
	default:
		return "", apperr.New(apperr.InvalidArgument, "mode must be one of learn, recap; got %q", raw)
	}
}

// Includes reports whether a card with the given progress belongs to mode.
func (c Config) Includes(mode Mode, progress *models.Progress) bool {
	switch mode {
	case ModeLearn:
		return progress == nil || progress.ConfidenceScore < c.LearnThreshold
	case ModeRecap:
		return progress != nil && progress.ConfidenceScore >= c.RecapThreshold
	default:
		return false
	}
}

// SelectCards filters cards for mode, keeping their input order and pairing
// each with its progress from byCard (nil when never reviewed).
func (c Config) SelectCards(cards []models.Card, byCard map[uint]*models.Progress, mode Mode) ([]models.CardWithProgress, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	out := []models.CardWithProgress{}
	for _, card := range cards {
		progress := byCard[card.ID]
		if !c.Includes(mode, progress) {
			continue
		}
		out = append(out, models.CardWithProgress{Card: card, Progress: progress})
	}
	return out, nil
}
