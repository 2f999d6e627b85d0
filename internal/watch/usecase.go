package watch

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/models"
)

type UseCase interface {
	AddToHistory(ctx context.Context, input *models.AddHistoryInput) (*models.WatchHistory, error)
	GetHistory(ctx context.Context) ([]*models.WatchHistoryItem, error)
	UpdateProgress(ctx context.Context, historyID uuid.UUID, input *models.UpdateProgressInput) error
	AddToFavorites(ctx context.Context, input *models.AddFavoriteInput) (*models.Favorite, error)
	GetFavorites(ctx context.Context) ([]*models.FavoriteItem, error)
	RemoveFromFavorites(ctx context.Context, favoriteID uuid.UUID) error
}
