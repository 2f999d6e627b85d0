package usecase

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/internal/media"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/movies"
	"github.com/streamflix/streamflix-server/internal/transcode"
	"github.com/streamflix/streamflix-server/pkg/logger"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type movieUC struct {
	cfg       *config.Config
	movieRepo movies.Repository
	store     *media.Store
	prober    *transcode.Prober
	pool      *transcode.Pool
	tracker   transcode.Tracker
	logger    logger.Logger
}

func NewMovieUseCase(
	cfg *config.Config,
	movieRepo movies.Repository,
	store *media.Store,
	prober *transcode.Prober,
	pool *transcode.Pool,
	tracker transcode.Tracker,
	log logger.Logger,
) movies.UseCase {
	return &movieUC{
		cfg:       cfg,
		movieRepo: movieRepo,
		store:     store,
		prober:    prober,
		pool:      pool,
		tracker:   tracker,
		logger:    log,
	}
}

// UploadMovie persists both files, probes the duration, records the
// asset and hands the transcode job to the background pool. The pool
// submit is fire-and-forget: the response never waits for encoding.
func (u *movieUC) UploadMovie(ctx context.Context, input *models.MovieUploadInput, movieFile, posterFile *multipart.FileHeader) (*models.Movie, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("UploadMovie - GetUserFromCtx error: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("UploadMovie - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	if !media.IsAllowedMovieExt(movieFile.Filename) || !media.IsAllowedPosterExt(posterFile.Filename) {
		return nil, movies.ErrInvalidFileType
	}

	movieID := uuid.New()

	sourcePath, err := u.saveUpload(movieID, movieFile)
	if err != nil {
		u.logger.Errorf("UploadMovie - save movie file: movie=%s: %v", movieID, err)
		return nil, fmt.Errorf("failed to store movie file: %v", err)
	}
	posterPath, err := u.saveUpload(movieID, posterFile)
	if err != nil {
		u.logger.Errorf("UploadMovie - save poster file: movie=%s: %v", movieID, err)
		return nil, fmt.Errorf("failed to store poster file: %v", err)
	}

	duration := u.prober.Probe(ctx, sourcePath)

	movie := &models.Movie{
		MovieID:     movieID,
		Title:       input.Title,
		Description: input.Description,
		Year:        input.Year,
		Genre:       input.Genre,
		Duration:    duration,
		UploaderID:  user.UserID,
		FilePath:    sourcePath,
		PosterPath:  posterPath,
	}
	created, err := u.movieRepo.CreateMovie(ctx, movie)
	if err != nil {
		u.logger.Errorf("UploadMovie - CreateMovie error: %v", err)
		return nil, err
	}

	job := models.TranscodeJob{
		MovieID:    created.MovieID,
		SourcePath: sourcePath,
		Presets:    transcode.QualityPresets,
	}
	// Every label is visible as pending before the job can be picked up,
	// so a queued asset's status never reads as "never transcoded".
	for _, preset := range job.Presets {
		if err := u.tracker.MarkPending(ctx, created.MovieID, preset.Label); err != nil {
			u.logger.Errorf("UploadMovie - MarkPending: movie=%s quality=%s: %v", created.MovieID, preset.Label, err)
		}
	}
	if err := u.pool.Submit(job); err != nil {
		u.logger.Errorf("UploadMovie - Submit transcode job: movie=%s: %v", created.MovieID, err)
		for _, preset := range job.Presets {
			if terr := u.tracker.MarkFailed(ctx, created.MovieID, preset.Label, "transcode queue full"); terr != nil {
				u.logger.Errorf("UploadMovie - MarkFailed: movie=%s quality=%s: %v", created.MovieID, preset.Label, terr)
			}
		}
	}

	return created, nil
}

func (u *movieUC) saveUpload(movieID uuid.UUID, header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return u.store.SaveFile(movieID, src, header.Filename)
}

func (u *movieUC) GetMovie(ctx context.Context, movieID uuid.UUID) (*models.Movie, error) {
	if movieID == uuid.Nil {
		return nil, fmt.Errorf("invalid movie id: cannot be empty")
	}
	movie, err := u.movieRepo.IncrementViews(ctx, movieID)
	if err != nil {
		u.logger.Errorf("GetMovie - IncrementViews: movie=%s: %v", movieID, err)
		return nil, err
	}
	return movie, nil
}

func (u *movieUC) ListMovies(ctx context.Context, pq *utils.Pagination) (*models.MovieList, error) {
	if pq == nil {
		pq = &utils.Pagination{Page: 1, Size: 10}
	}
	if pq.Page < 1 {
		pq.Page = 1
	}
	if pq.Size < 1 || pq.Size > 100 {
		pq.Size = 10
	}
	list, err := u.movieRepo.ListMovies(ctx, pq)
	if err != nil {
		u.logger.Errorf("ListMovies - repo error: %v", err)
		return nil, fmt.Errorf("failed to fetch movies: %v", err)
	}
	return list, nil
}

func (u *movieUC) SearchMovies(ctx context.Context, query string, pq *utils.Pagination) (*models.MovieList, error) {
	if query == "" {
		return nil, fmt.Errorf("invalid query: cannot be empty")
	}
	if pq == nil {
		pq = &utils.Pagination{Page: 1, Size: 10}
	}
	if pq.Page < 1 {
		pq.Page = 1
	}
	if pq.Size < 1 || pq.Size > 100 {
		pq.Size = 10
	}
	list, err := u.movieRepo.SearchMovies(ctx, query, pq)
	if err != nil {
		u.logger.Errorf("SearchMovies - repo error: %v", err)
		return nil, fmt.Errorf("failed to search movies: %v", err)
	}
	return list, nil
}

func (u *movieUC) GetUserUploads(ctx context.Context) ([]*models.Movie, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("GetUserUploads - GetUserFromCtx error: %v", err)
		return nil, err
	}
	uploads, err := u.movieRepo.GetUserUploads(ctx, user.UserID)
	if err != nil {
		u.logger.Errorf("GetUserUploads - repo error: user=%s: %v", user.UserID, err)
		return nil, fmt.Errorf("failed to fetch uploads: %v", err)
	}
	return uploads, nil
}

// DeleteMovie removes the record first and the asset directory second.
// A transcode still running for the asset simply leaves orphaned output
// for a later cleanup scan; workers do not check liveness mid-run.
func (u *movieUC) DeleteMovie(ctx context.Context, movieID uuid.UUID) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("DeleteMovie - GetUserFromCtx error: %v", err)
		return err
	}
	if movieID == uuid.Nil {
		return fmt.Errorf("invalid movie id: cannot be empty")
	}
	if err = u.movieRepo.DeleteMovie(ctx, user.UserID, movieID); err != nil {
		u.logger.Errorf("DeleteMovie - repo error: movie=%s: %v", movieID, err)
		return err
	}
	if err = u.store.RemoveAsset(movieID); err != nil {
		u.logger.Errorf("DeleteMovie - RemoveAsset: movie=%s: %v", movieID, err)
	}
	return nil
}

// GetStreamSource resolves a movie to a playable file path. When a
// quality label is requested and its rendition is complete the rendition
// wins; otherwise playback falls back to the original.
func (u *movieUC) GetStreamSource(ctx context.Context, movieID uuid.UUID, quality string) (*models.StreamSource, error) {
	movie, err := u.movieRepo.GetMovieByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	path := movie.FilePath
	label := "original"
	if quality != "" {
		if renditionPath, ok := movie.Renditions[quality]; ok && media.Ready(renditionPath) {
			path = renditionPath
			label = quality
		}
	}
	return &models.StreamSource{
		MovieID: movie.MovieID,
		Quality: label,
		Path:    path,
	}, nil
}

func (u *movieUC) GetPosterPath(ctx context.Context, movieID uuid.UUID) (string, error) {
	movie, err := u.movieRepo.GetMovieByID(ctx, movieID)
	if err != nil {
		return "", err
	}
	if !media.Ready(movie.PosterPath) {
		u.logger.Errorf("GetPosterPath - poster missing on disk: movie=%s path=%s", movieID, movie.PosterPath)
		return "", movies.ErrFileMissing
	}
	return movie.PosterPath, nil
}

func (u *movieUC) GetTranscodeStatus(ctx context.Context, movieID uuid.UUID) (map[string]models.RenditionState, error) {
	if _, err := u.movieRepo.GetMovieByID(ctx, movieID); err != nil {
		return nil, err
	}
	states, err := u.tracker.GetStatus(ctx, movieID)
	if err != nil {
		u.logger.Errorf("GetTranscodeStatus - tracker error: movie=%s: %v", movieID, err)
		return nil, fmt.Errorf("failed to fetch transcode status: %v", err)
	}
	return states, nil
}
