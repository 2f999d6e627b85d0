package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/watch"
)

type watchRepo struct {
	db *sqlx.DB
}

func NewWatchRepo(db *sqlx.DB) watch.Repository {
	return &watchRepo{
		db: db,
	}
}

func (r *watchRepo) AddHistory(ctx context.Context, history *models.WatchHistory) (*models.WatchHistory, error) {
	created := &models.WatchHistory{}
	if err := r.db.QueryRowxContext(
		ctx,
		addHistoryQuery,
		history.UserID,
		history.MovieID,
		history.Progress,
	).StructScan(created); err != nil {
		return nil, errors.Wrap(err, "watchRepo.AddHistory.StructScan")
	}
	return created, nil
}

func (r *watchRepo) GetHistory(ctx context.Context, userID uuid.UUID) ([]*models.WatchHistoryItem, error) {
	rows, err := r.db.QueryxContext(ctx, getHistoryQuery, userID)
	if err != nil {
		return nil, errors.Wrap(err, "watchRepo.GetHistory.QueryxContext")
	}
	defer rows.Close()

	items := make([]*models.WatchHistoryItem, 0)
	for rows.Next() {
		var item models.WatchHistoryItem
		if err := rows.StructScan(&item); err != nil {
			return nil, errors.Wrap(err, "watchRepo.GetHistory.StructScan")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "watchRepo.GetHistory.Err")
	}
	return items, nil
}

func (r *watchRepo) UpdateProgress(ctx context.Context, userID, historyID uuid.UUID, progress float64) error {
	res, err := r.db.ExecContext(ctx, updateProgressQuery, userID, historyID, progress)
	if err != nil {
		return errors.Wrap(err, "watchRepo.UpdateProgress.ExecContext")
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return watch.ErrHistoryNotFound
	}
	return nil
}

func (r *watchRepo) AddFavorite(ctx context.Context, favorite *models.Favorite) (*models.Favorite, error) {
	created := &models.Favorite{}
	if err := r.db.QueryRowxContext(
		ctx,
		addFavoriteQuery,
		favorite.UserID,
		favorite.MovieID,
	).StructScan(created); err != nil {
		return nil, errors.Wrap(err, "watchRepo.AddFavorite.StructScan")
	}
	return created, nil
}

func (r *watchRepo) FindFavorite(ctx context.Context, userID, movieID uuid.UUID) (*models.Favorite, error) {
	favorite := &models.Favorite{}
	if err := r.db.QueryRowxContext(ctx, findFavoriteQuery, userID, movieID).StructScan(favorite); err != nil {
		return nil, errors.Wrap(err, "watchRepo.FindFavorite.StructScan")
	}
	return favorite, nil
}

func (r *watchRepo) GetFavorites(ctx context.Context, userID uuid.UUID) ([]*models.FavoriteItem, error) {
	rows, err := r.db.QueryxContext(ctx, getFavoritesQuery, userID)
	if err != nil {
		return nil, errors.Wrap(err, "watchRepo.GetFavorites.QueryxContext")
	}
	defer rows.Close()

	items := make([]*models.FavoriteItem, 0)
	for rows.Next() {
		var item models.FavoriteItem
		if err := rows.StructScan(&item); err != nil {
			return nil, errors.Wrap(err, "watchRepo.GetFavorites.StructScan")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "watchRepo.GetFavorites.Err")
	}
	return items, nil
}

func (r *watchRepo) RemoveFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, removeFavoriteQuery, userID, favoriteID); err != nil {
		return errors.Wrap(err, "watchRepo.RemoveFavorite.ExecContext")
	}
	return nil
}
