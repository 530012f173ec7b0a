package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/andrewpaige1/flashcards-api/config"
	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/models"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.Nop()
}

// DB opens a fresh migrated in-memory sqlite database for one test.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, tb.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := config.Connect(config.DriverSQLite, dsn, true)
	if err != nil {
		tb.Fatalf("failed to init test db: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func SeedUser(tb testing.TB, ctx context.Context, db *gorm.DB, username string) *models.User {
	tb.Helper()
	u := &models.User{Username: username, Email: username + "@example.com"}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedDeck(tb testing.TB, ctx context.Context, db *gorm.DB, ownerID uint, title string) *models.Deck {
	tb.Helper()
	d := &models.Deck{Title: title, OwnerID: ownerID}
	if err := db.WithContext(ctx).Omit("Owner").Create(d).Error; err != nil {
		tb.Fatalf("seed deck: %v", err)
	}
	return d
}

func SeedCard(tb testing.TB, ctx context.Context, db *gorm.DB, deckID uint, question, answer string) *models.Card {
	tb.Helper()
	c := &models.Card{DeckID: deckID, Question: question, Answer: answer}
	if err := db.WithContext(ctx).Omit("Deck").Create(c).Error; err != nil {
		tb.Fatalf("seed card: %v", err)
	}
	return c
}

func PtrUint(v uint) *uint { return &v }

func PtrString(v string) *string { return &v }
