package game

import (
	"context"

	"github.com/thesrcielos/TypingSite/internal/apperrors"
	"gorm.io/gorm"
)

type GameRepository interface {
	CreateGame(ctx context.Context, game *Game) error
	// ListGamesByUser returns every game of the user, oldest first.
	ListGamesByUser(ctx context.Context, userID uint) ([]Game, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) CreateGame(ctx context.Context, game *Game) error {
	if err := r.db.WithContext(ctx).Create(game).Error; err != nil {
		return apperrors.Storage("Error saving game", err)
	}
	return nil
}

// ListGamesByUser loads the whole history in one query. There is no
// pagination; the stats endpoint needs every row.
func (r *GormGameRepository) ListGamesByUser(ctx context.Context, userID uint) ([]Game, error) {
	games := []Game{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&games).Error
	if err != nil {
		return nil, apperrors.Storage("Error getting games", err)
	}
	return games, nil
}
