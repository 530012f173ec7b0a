package study

import (
	"math"
	"testing"
	"time"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/models"
)

func TestApplyReviewFirstReview(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, c := range []float64{0.0, 0.3, 0.5, 0.9, 1.0} {
		got, err := cfg.ApplyReview(nil, c, now)
		if err != nil {
			t.Fatalf("ApplyReview(nil, %v): %v", c, err)
		}
		if got.ConfidenceScore != c || got.ReviewCount != 1 {
			t.Fatalf("ApplyReview(nil, %v): got score=%v count=%d", c, got.ConfidenceScore, got.ReviewCount)
		}
		if got.LastReviewedAt == nil || !got.LastReviewedAt.Equal(now) {
			t.Fatalf("ApplyReview(nil, %v): LastReviewedAt=%v", c, got.LastReviewedAt)
		}
	}
}

func TestApplyReviewBlendsWithHistory(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now().UTC()

	cases := []struct {
		prior float64
		count int
		obs   float64
	}{
		{0.5, 1, 1.0},
		{0.0, 4, 1.0},
		{1.0, 9, 0.0},
		{0.8, 2, 0.8},
		{0.42, 7, 0.13},
	}
	for _, tc := range cases {
		prior := &models.Progress{ID: 5, UserID: 1, CardID: 2, ConfidenceScore: tc.prior, ReviewCount: tc.count}
		got, err := cfg.ApplyReview(prior, tc.obs, now)
		if err != nil {
			t.Fatalf("ApplyReview: %v", err)
		}
		want := 0.7*tc.prior + 0.3*tc.obs
		if math.Abs(got.ConfidenceScore-want) > 1e-12 {
			t.Fatalf("prior=%v obs=%v: got=%v want=%v", tc.prior, tc.obs, got.ConfidenceScore, want)
		}
		if got.ReviewCount != tc.count+1 {
			t.Fatalf("ReviewCount: got=%d want=%d", got.ReviewCount, tc.count+1)
		}
		if got.ID != 5 || got.UserID != 1 || got.CardID != 2 {
			t.Fatalf("identity fields should carry over: %+v", got)
		}
		if prior.ConfidenceScore != tc.prior || prior.ReviewCount != tc.count {
			t.Fatalf("prior was modified: %+v", prior)
		}
	}
}

func TestApplyReviewScenarioHalfThenFull(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()

	first, err := cfg.ApplyReview(nil, 0.5, now)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := cfg.ApplyReview(&first, 1.0, now.Add(time.Second))
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if math.Abs(second.ConfidenceScore-0.65) > 1e-9 || second.ReviewCount != 2 {
		t.Fatalf("got score=%v count=%d", second.ConfidenceScore, second.ReviewCount)
	}
}

func TestApplyReviewRejectsOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	prior := &models.Progress{ConfidenceScore: 0.6, ReviewCount: 3}

	for _, c := range []float64{-0.0001, 1.0001, -1, 2, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := cfg.ApplyReview(prior, c, time.Now())
		if !apperr.IsInvalidArgument(err) {
			t.Fatalf("ApplyReview(%v): expected InvalidArgument, got %v", c, err)
		}
	}
	if prior.ConfidenceScore != 0.6 || prior.ReviewCount != 3 {
		t.Fatalf("prior changed on rejected review: %+v", prior)
	}
}
