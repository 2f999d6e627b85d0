package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/movies"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type movieRepo struct {
	db *sqlx.DB
}

func NewMovieRepo(db *sqlx.DB) movies.Repository {
	return &movieRepo{
		db: db,
	}
}

func (r *movieRepo) CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	created := &models.Movie{}
	if err := r.db.QueryRowxContext(
		ctx,
		createMovieQuery,
		movie.MovieID,
		movie.Title,
		movie.Description,
		movie.Year,
		movie.Genre,
		movie.Duration,
		movie.UploaderID,
		movie.FilePath,
		movie.PosterPath,
	).StructScan(created); err != nil {
		return nil, errors.Wrap(err, "movieRepo.CreateMovie.StructScan")
	}
	return created, nil
}

func (r *movieRepo) GetMovieByID(ctx context.Context, movieID uuid.UUID) (*models.Movie, error) {
	movie := &models.Movie{}
	if err := r.db.QueryRowxContext(ctx, getMovieByIDQuery, movieID).StructScan(movie); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, movies.ErrMovieNotFound
		}
		return nil, errors.Wrap(err, "movieRepo.GetMovieByID.StructScan")
	}
	return movie, nil
}

func (r *movieRepo) IncrementViews(ctx context.Context, movieID uuid.UUID) (*models.Movie, error) {
	movie := &models.Movie{}
	if err := r.db.QueryRowxContext(ctx, incrementViewsQuery, movieID).StructScan(movie); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, movies.ErrMovieNotFound
		}
		return nil, errors.Wrap(err, "movieRepo.IncrementViews.StructScan")
	}
	return movie, nil
}

func (r *movieRepo) ListMovies(ctx context.Context, pq *utils.Pagination) (*models.MovieList, error) {
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, getTotalMoviesQuery); err != nil {
		return nil, errors.Wrap(err, "movieRepo.ListMovies.GetContext")
	}
	if totalCount == 0 {
		return &models.MovieList{
			Movies:     make([]*models.Movie, 0),
			TotalCount: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
		}, nil
	}
	rows, err := r.db.QueryxContext(ctx, listMoviesQuery, pq.GetOffset(), pq.GetLimit())
	if err != nil {
		return nil, errors.Wrap(err, "movieRepo.ListMovies.QueryxContext")
	}
	defer rows.Close()

	result, err := scanMovies(rows, pq.GetSize())
	if err != nil {
		return nil, err
	}
	return &models.MovieList{
		Movies:     result,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (r *movieRepo) SearchMovies(ctx context.Context, query string, pq *utils.Pagination) (*models.MovieList, error) {
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, getTotalSearchQuery, query); err != nil {
		return nil, errors.Wrap(err, "movieRepo.SearchMovies.GetContext")
	}
	if totalCount == 0 {
		return &models.MovieList{
			Movies:     make([]*models.Movie, 0),
			TotalCount: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
		}, nil
	}
	rows, err := r.db.QueryxContext(ctx, searchMoviesQuery, query, pq.GetOffset(), pq.GetLimit())
	if err != nil {
		return nil, errors.Wrap(err, "movieRepo.SearchMovies.QueryxContext")
	}
	defer rows.Close()

	result, err := scanMovies(rows, pq.GetSize())
	if err != nil {
		return nil, err
	}
	return &models.MovieList{
		Movies:     result,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    utils.GetHasMore(pq.GetPage(), totalCount, pq.GetSize()),
	}, nil
}

func (r *movieRepo) GetUserUploads(ctx context.Context, userID uuid.UUID) ([]*models.Movie, error) {
	rows, err := r.db.QueryxContext(ctx, getUserUploadsQuery, userID)
	if err != nil {
		return nil, errors.Wrap(err, "movieRepo.GetUserUploads.QueryxContext")
	}
	defer rows.Close()
	return scanMovies(rows, 0)
}

func (r *movieRepo) DeleteMovie(ctx context.Context, userID uuid.UUID, movieID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, deleteMovieQuery, movieID, userID)
	if err != nil {
		return errors.Wrap(err, "movieRepo.DeleteMovie.ExecContext")
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return movies.ErrMovieNotFound
	}
	return nil
}

// AddRendition merges one label into the renditions JSONB map. The merge
// happens server side in a single statement, so concurrent workers
// adding different labels never overwrite each other.
func (r *movieRepo) AddRendition(ctx context.Context, movieID uuid.UUID, quality, path string) error {
	if _, err := r.db.ExecContext(ctx, addRenditionQuery, movieID, quality, path); err != nil {
		return errors.Wrap(err, "movieRepo.AddRendition.ExecContext")
	}
	return nil
}

func scanMovies(rows *sqlx.Rows, sizeHint int) ([]*models.Movie, error) {
	result := make([]*models.Movie, 0, sizeHint)
	for rows.Next() {
		var movie models.Movie
		if err := rows.StructScan(&movie); err != nil {
			return nil, errors.Wrap(err, "movieRepo.scanMovies.StructScan")
		}
		result = append(result, &movie)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "movieRepo.scanMovies.Err")
	}
	return result, nil
}
