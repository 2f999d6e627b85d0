package watch

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/models"
)

type Repository interface {
	AddHistory(ctx context.Context, history *models.WatchHistory) (*models.WatchHistory, error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]*models.WatchHistoryItem, error)
	UpdateProgress(ctx context.Context, userID, historyID uuid.UUID, progress float64) error
	AddFavorite(ctx context.Context, favorite *models.Favorite) (*models.Favorite, error)
	FindFavorite(ctx context.Context, userID, movieID uuid.UUID) (*models.Favorite, error)
	GetFavorites(ctx context.Context, userID uuid.UUID) ([]*models.FavoriteItem, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error
}
