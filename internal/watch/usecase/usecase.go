package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/watch"
	"github.com/streamflix/streamflix-server/pkg/logger"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type watchUC struct {
	watchRepo watch.Repository
	logger    logger.Logger
}

func NewWatchUseCase(watchRepo watch.Repository, log logger.Logger) watch.UseCase {
	return &watchUC{
		watchRepo: watchRepo,
		logger:    log,
	}
}

func (u *watchUC) AddToHistory(ctx context.Context, input *models.AddHistoryInput) (*models.WatchHistory, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	history := &models.WatchHistory{
		UserID:   user.UserID,
		MovieID:  input.MovieID,
		Progress: input.Progress,
	}
	created, err := u.watchRepo.AddHistory(ctx, history)
	if err != nil {
		u.logger.Errorf("AddToHistory - repo error: user=%s movie=%s: %v", user.UserID, input.MovieID, err)
		return nil, fmt.Errorf("failed to add to watch history: %v", err)
	}
	return created, nil
}

func (u *watchUC) GetHistory(ctx context.Context) ([]*models.WatchHistoryItem, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	items, err := u.watchRepo.GetHistory(ctx, user.UserID)
	if err != nil {
		u.logger.Errorf("GetHistory - repo error: user=%s: %v", user.UserID, err)
		return nil, fmt.Errorf("failed to fetch watch history: %v", err)
	}
	return items, nil
}

func (u *watchUC) UpdateProgress(ctx context.Context, historyID uuid.UUID, input *models.UpdateProgressInput) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		return fmt.Errorf("invalid input: %v", err)
	}
	if err = u.watchRepo.UpdateProgress(ctx, user.UserID, historyID, input.Progress); err != nil {
		u.logger.Errorf("UpdateProgress - repo error: user=%s history=%s: %v", user.UserID, historyID, err)
		return err
	}
	return nil
}

// AddToFavorites is idempotent: re-adding a favorited movie returns the
// existing entry instead of duplicating it.
func (u *watchUC) AddToFavorites(ctx context.Context, input *models.AddFavoriteInput) (*models.Favorite, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	existing, err := u.watchRepo.FindFavorite(ctx, user.UserID, input.MovieID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		u.logger.Errorf("AddToFavorites - FindFavorite error: user=%s movie=%s: %v", user.UserID, input.MovieID, err)
		return nil, fmt.Errorf("failed to add to favorites: %v", err)
	}
	favorite := &models.Favorite{
		UserID:  user.UserID,
		MovieID: input.MovieID,
	}
	created, err := u.watchRepo.AddFavorite(ctx, favorite)
	if err != nil {
		u.logger.Errorf("AddToFavorites - repo error: user=%s movie=%s: %v", user.UserID, input.MovieID, err)
		return nil, fmt.Errorf("failed to add to favorites: %v", err)
	}
	return created, nil
}

func (u *watchUC) GetFavorites(ctx context.Context) ([]*models.FavoriteItem, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	items, err := u.watchRepo.GetFavorites(ctx, user.UserID)
	if err != nil {
		u.logger.Errorf("GetFavorites - repo error: user=%s: %v", user.UserID, err)
		return nil, fmt.Errorf("failed to fetch favorites: %v", err)
	}
	return items, nil
}

func (u *watchUC) RemoveFromFavorites(ctx context.Context, favoriteID uuid.UUID) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return err
	}
	if err = u.watchRepo.RemoveFavorite(ctx, user.UserID, favoriteID); err != nil {
		u.logger.Errorf("RemoveFromFavorites - repo error: user=%s favorite=%s: %v", user.UserID, favoriteID, err)
		return fmt.Errorf("failed to remove from favorites: %v", err)
	}
	return nil
}
