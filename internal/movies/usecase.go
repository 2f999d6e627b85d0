package movies

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type UseCase interface {
	UploadMovie(ctx context.Context, input *models.MovieUploadInput, movieFile, posterFile *multipart.FileHeader) (*models.Movie, error)
	GetMovie(ctx context.Context, movieID uuid.UUID) (*models.Movie, error)
	ListMovies(ctx context.Context, pq *utils.Pagination) (*models.MovieList, error)
	SearchMovies(ctx context.Context, query string, pq *utils.Pagination) (*models.MovieList, error)
	GetUserUploads(ctx context.Context) ([]*models.Movie, error)
	DeleteMovie(ctx context.Context, movieID uuid.UUID) error
	GetStreamSource(ctx context.Context, movieID uuid.UUID, quality string) (*models.StreamSource, error)
	GetPosterPath(ctx context.Context, movieID uuid.UUID) (string, error)
	GetTranscodeStatus(ctx context.Context, movieID uuid.UUID) (map[string]models.RenditionState, error)
}
