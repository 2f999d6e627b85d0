package movies

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type Repository interface {
	CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	GetMovieByID(ctx context.Context, movieID uuid.UUID) (*models.Movie, error)
	IncrementViews(ctx context.Context, movieID uuid.UUID) (*models.Movie, error)
	ListMovies(ctx context.Context, pq *utils.Pagination) (*models.MovieList, error)
	SearchMovies(ctx context.Context, query string, pq *utils.Pagination) (*models.MovieList, error)
	GetUserUploads(ctx context.Context, userID uuid.UUID) ([]*models.Movie, error)
	DeleteMovie(ctx context.Context, userID uuid.UUID, movieID uuid.UUID) error
	AddRendition(ctx context.Context, movieID uuid.UUID, quality, path string) error
}
