package store

import (
	"context"
	"testing"

	"github.com/andrewpaige1/flashcards-api/dbctx"
	"github.com/andrewpaige1/flashcards-api/models"
	"github.com/andrewpaige1/flashcards-api/testutil"
)

func TestCardRepo(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx}
	repo := NewCardRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, db, "cardrepo")
	math := testutil.SeedDeck(t, ctx, db, u.ID, "Math")
	geo := testutil.SeedDeck(t, ctx, db, u.ID, "Geography")

	c1 := &models.Card{DeckID: math.ID, Question: "What is 2+2?", Answer: "4"}
	c2 := &models.Card{DeckID: geo.ID, Question: "Capital of France?", Answer: "Paris"}
	c3 := &models.Card{DeckID: math.ID, Question: "What is 3*3?", Answer: "9"}
	for _, c := range []*models.Card{c1, c2, c3} {
		if err := repo.Create(dbc, c); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if got, err := repo.GetByID(dbc, c2.ID); err != nil || got == nil || got.Answer != "Paris" {
		t.Fatalf("GetByID: got=%+v err=%v", got, err)
	}
	if got, err := repo.GetByID(dbc, 0); err != nil || got != nil {
		t.Fatalf("GetByID(0): got=%+v err=%v", got, err)
	}

	mathCards, err := repo.ListByDeck(dbc, math.ID)
	if err != nil || len(mathCards) != 2 || mathCards[0].ID != c1.ID || mathCards[1].ID != c3.ID {
		t.Fatalf("ListByDeck: %+v err=%v", mathCards, err)
	}

	all, err := repo.ListForSelection(dbc, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListForSelection(nil): len=%d err=%v", len(all), err)
	}

	again, _ := repo.ListForSelection(dbc, nil)
	for i := range all {
		if all[i].ID != again[i].ID {
			t.Fatalf("repeated listing changed order: %v vs %v", all, again)
		}
	}
}
