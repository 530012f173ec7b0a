package study

import (
	"testing"

	"github.com/andrewpaige1/flashcards-api/apperr"
	"github.com/andrewpaige1/flashcards-api/models"
)

func TestParseMode(t *testing.T) {
	for _, raw := range []string{"learn", "recap"} {
		if m, err := ParseMode(raw); err != nil || string(m) != raw {
			t.Fatalf("ParseMode(%q): got=%q err=%v", raw, m, err)
		}
	}
	for _, raw := range []string{"", "Learn", "review", " recap"} {
		if _, err := ParseMode(raw); !apperr.IsInvalidArgument(err) {
			t.Fatalf("ParseMode(%q): expected InvalidArgument, got %v", raw, err)
		}
	}
}

func TestIncludesBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	p := func(score float64) *models.Progress { return &models.Progress{ConfidenceScore: score, ReviewCount: 1} }

	cases := []struct {
		name     string
		progress *models.Progress
		learn    bool
		recap    bool
	}{
		{"never reviewed", nil, true, false},
		{"zero", p(0.0), true, false},
		{"just below learn", p(0.4999999), true, false},
		{"exactly learn threshold", p(0.5), false, false},
		{"indeterminate band", p(0.65), false, false},
		{"just below recap", p(0.7999999), false, false},
		{"exactly recap threshold", p(0.8), false, true},
		{"full", p(1.0), false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cfg.Includes(ModeLearn, tc.progress); got != tc.learn {
				t.Fatalf("learn: got=%v want=%v", got, tc.learn)
			}
			if got := cfg.Includes(ModeRecap, tc.progress); got != tc.recap {
				t.Fatalf("recap: got=%v want=%v", got, tc.recap)
			}
		})
	}
}

func TestIncludesHonorsCustomThresholds(t *testing.T) {
	cfg := Config{LearnThreshold: 0.3, RecapThreshold: 0.3, HistoryWeight: 0.5, NewWeight: 0.5}
	at := &models.Progress{ConfidenceScore: 0.3}
	if cfg.Includes(ModeLearn, at) || !cfg.Includes(ModeRecap, at) {
		t.Fatalf("score at a shared threshold should be recap only")
	}
}

func TestSelectCardsKeepsInputOrder(t *testing.T) {
	cfg := DefaultConfig()
	cards := []models.Card{{ID: 9}, {ID: 3}, {ID: 7}, {ID: 1}, {ID: 4}}
	byCard := map[uint]*models.Progress{
		3: {CardID: 3, ConfidenceScore: 0.9},
		7: {CardID: 7, ConfidenceScore: 0.2},
		1: {CardID: 1, ConfidenceScore: 0.6},
		4: {CardID: 4, ConfidenceScore: 0.8},
	}

	learn, err := cfg.SelectCards(cards, byCard, ModeLearn)
	if err != nil {
		t.Fatalf("learn: %v", err)
	}
	assertIDs(t, learn, 9, 7)
	if learn[0].Progress != nil || learn[1].Progress == nil || learn[1].Progress.CardID != 7 {
		t.Fatalf("learn pairs: %+v", learn)
	}

	recap, err := cfg.SelectCards(cards, byCard, ModeRecap)
	if err != nil {
		t.Fatalf("recap: %v", err)
	}
	assertIDs(t, recap, 3, 4)
}

func TestSelectCardsEmptyAndInvalid(t *testing.T) {
	cfg := DefaultConfig()

	got, err := cfg.SelectCards(nil, nil, ModeRecap)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("empty input: got=%v err=%v", got, err)
	}
	if _, err := cfg.SelectCards([]models.Card{{ID: 1}}, nil, Mode("cram")); !apperr.IsInvalidArgument(err) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func assertIDs(t *testing.T, got []models.CardWithProgress, want ...uint) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len: got=%d want=%d (%+v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Card.ID != want[i] {
			t.Fatalf("item %d: got card %d want %d", i, got[i].Card.ID, want[i])
		}
	}
}
