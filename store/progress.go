package store

import (
	"errors"

	"github.com/andrewpaige1/flashcards-api/dbctx"
	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepo interface {
	Find(dbc dbctx.Context, userID, cardID uint) (*models.Progress, error)
	FindForUpdate(dbc dbctx.Context, userID, cardID uint) (*models.Progress, error)
	FindMany(dbc dbctx.Context, userID uint, cardIDs []uint) (map[uint]*models.Progress, error)
	Upsert(dbc dbctx.Context, progress *models.Progress) error
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	return &progressRepo{db: db, log: baseLog.With("repo", "ProgressRepo")}
}

func (r *progressRepo) Find(dbc dbctx.Context, userID, cardID uint) (*models.Progress, error) {
	return r.find(dbc.Conn(r.db), userID, cardID)
}

// FindForUpdate locks the row until the surrounding transaction ends.
// SQLite ignores the lock; its writers are already serialized.
func (r *progressRepo) FindForUpdate(dbc dbctx.Context, userID, cardID uint) (*models.Progress, error) {
	return r.find(dbc.Conn(r.db).Clauses(clause.Locking{Strength: "UPDATE"}), userID, cardID)
}

func (r *progressRepo) find(q *gorm.DB, userID, cardID uint) (*models.Progress, error) {
	var row models.Progress
	err := q.Where("user_id = ? AND card_id = ?", userID, cardID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// FindMany maps card id to progress for the rows that exist; cards the user
// never reviewed are absent from the result.
func (r *progressRepo) FindMany(dbc dbctx.Context, userID uint, cardIDs []uint) (map[uint]*models.Progress, error) {
	out := make(map[uint]*models.Progress, len(cardIDs))
	if len(cardIDs) == 0 {
		return out, nil
	}
	var rows []*models.Progress
	err := dbc.Conn(r.db).
		Where("user_id = ? AND card_id IN ?", userID, cardIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.CardID] = row
	}
	return out, nil
}

// Upsert writes the single row for (user_id, card_id), replacing its
// counters when one already exists. progress.ID is refreshed from the
// stored row.
func (r *progressRepo) Upsert(dbc dbctx.Context, progress *models.Progress) error {
	if progress == nil {
		return nil
	}
	row := &models.Progress{
		UserID:          progress.UserID,
		CardID:          progress.CardID,
		ConfidenceScore: progress.ConfidenceScore,
		ReviewCount:     progress.ReviewCount,
		LastReviewedAt:  progress.LastReviewedAt,
	}
	conn := dbc.Conn(r.db)
	err := conn.
		Omit("User", "Card").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "card_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"confidence_score", "review_count", "last_reviewed_at"}),
		}).
		Create(row).Error
	if err != nil {
		return err
	}

	stored, err := r.find(dbc.Conn(r.db), progress.UserID, progress.CardID)
	if err != nil {
		return err
	}
	if stored == nil {
		return errors.New("progress row missing after upsert")
	}
	*progress = *stored
	return nil
}
