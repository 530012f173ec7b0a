package store

import (
	"errors"

	"github.com/andrewpaige1/flashcards-api/dbctx"
	"github.com/andrewpaige1/flashcards-api/logger"
	"github.com/andrewpaige1/flashcards-api/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(dbc dbctx.Context, user *models.User) error
	GetByID(dbc dbctx.Context, id uint) (*models.User, error)
	GetByUsername(dbc dbctx.Context, username string) (*models.User, error)
	ExistsByUsernameOrEmail(dbc dbctx.Context, username, email string) (bool, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) Create(dbc dbctx.Context, user *models.User) error {
	return dbc.Conn(r.db).Create(user).Error
}

// GetByID returns nil, nil when no user has the id.
func (r *userRepo) GetByID(dbc dbctx.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, nil
	}
	var user models.User
	if err := dbc.Conn(r.db).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(dbc dbctx.Context, username string) (*models.User, error) {
	var user models.User
	if err := dbc.Conn(r.db).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ExistsByUsernameOrEmail(dbc dbctx.Context, username, email string) (bool, error) {
	var count int64
	err := dbc.Conn(r.db).
		Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
