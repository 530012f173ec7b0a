package study

import (
	"time"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/models"
)

// ValidateConfidence rejects observations outside [0, 1], including NaN.
func ValidateConfidence(confidence float64) error {
	if !inUnitRange(confidence) {
		return apperr.New(apperr.InvalidArgument, "confidence must be between 0.0 and 1.0, got %v", confidence)
	}
	return nil
}

// ApplyReview computes the progress that results from reviewing a card with
// the given confidence. prior is nil for a card the user never reviewed.
// prior is not modified.
func (c Config) ApplyReview(prior *models.Progress, confidence float64, now time.Time) (models.Progress, error) {
	if err := ValidateConfidence(confidence); err != nil {
		return models.Progress{}, err
	}

	reviewedAt := now
	if prior == nil {
		return models.Progress{
			ConfidenceScore: confidence,
			ReviewCount:     1,
			LastReviewedAt:  &reviewedAt,
		}, nil
	}

	next := *prior
	next.ConfidenceScore = c.HistoryWeight*prior.ConfidenceScore + c.NewWeight*confidence
	next.ReviewCount = prior.ReviewCount + 1
	next.LastReviewedAt = &reviewedAt
	return next, nil
}
