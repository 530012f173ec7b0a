package study

import (
	"fmt"
	"math"
)

// Reference values for the confidence model.
const (
	// LearnThreshold is the score below which a reviewed card is still learned.
	LearnThreshold = 0.5
	// RecapThreshold is the score at or above which a card is recapped.
	RecapThreshold = 0.8
	// HistoryWeight and NewWeight blend the stored score with a new review.
	HistoryWeight = 0.7
	NewWeight     = 0.3
)

// Config carries the thresholds and weights of the confidence model.
// Scores between LearnThreshold and RecapThreshold belong to neither mode.
type Config struct {
	LearnThreshold float64
	RecapThreshold float64
	HistoryWeight  float64
	NewWeight      float64
}

func DefaultConfig() Config {
	return Config{
		LearnThreshold: LearnThreshold,
		RecapThreshold: RecapThreshold,
		HistoryWeight:  HistoryWeight,
		NewWeight:      NewWeight,
	}
}

const weightTolerance = 1e-9

func (c Config) Validate() error {
	if c.HistoryWeight < 0 || c.NewWeight < 0 {
		return fmt.Errorf("weights must be non-negative: history=%v new=%v", c.HistoryWeight, c.NewWeight)
	}
	if math.Abs(c.HistoryWeight+c.NewWeight-1.0) > weightTolerance {
		return fmt.Errorf("weights must sum to 1.0: history=%v new=%v", c.HistoryWeight, c.NewWeight)
	}
	if !inUnitRange(c.LearnThreshold) || !inUnitRange(c.RecapThreshold) {
		return fmt.Errorf("thresholds must lie in [0, 1]: learn=%v recap=%v", c.LearnThreshold, c.RecapThreshold)
	}
	if c.LearnThreshold > c.RecapThreshold {
		return fmt.Errorf("learn threshold %v exceeds recap threshold %v", c.LearnThreshold, c.RecapThreshold)
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0.0 && v <= 1.0
}
