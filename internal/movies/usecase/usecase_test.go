package usecase

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/internal/media"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/movies"
	"github.com/streamflix/streamflix-server/internal/transcode"
	transcodeRepository "github.com/streamflix/streamflix-server/internal/transcode/repository"
	"github.com/streamflix/streamflix-server/pkg/logger"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type stubMovieRepo struct {
	movies.Repository
	movie *models.Movie
	err   error
}

func (s *stubMovieRepo) GetMovieByID(ctx context.Context, movieID uuid.UUID) (*models.Movie, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.movie, nil
}

func (s *stubMovieRepo) CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	return movie, nil
}

func testLogger() logger.Logger {
	log := logger.NewApiLogger(&config.Config{Logger: config.Logger{Level: "error"}})
	log.InitLogger()
	return log
}

func newTestUC(repo movies.Repository) movies.UseCase {
	return NewMovieUseCase(&config.Config{}, repo, nil, nil, nil, transcodeRepository.NewMemoryTracker(), testLogger())
}

func TestGetStreamSourceOriginal(t *testing.T) {
	movieID := uuid.New()
	uc := newTestUC(&stubMovieRepo{movie: &models.Movie{
		MovieID:  movieID,
		FilePath: "/media/a/src.mp4",
	}})

	source, err := uc.GetStreamSource(context.Background(), movieID, "")
	if err != nil {
		t.Fatal(err)
	}
	if source.Quality != "original" {
		t.Errorf("quality = %q, want original", source.Quality)
	}
	if source.Path != "/media/a/src.mp4" {
		t.Errorf("path = %q, want the original file", source.Path)
	}
}

func TestGetStreamSourceReadyRendition(t *testing.T) {
	dir := t.TempDir()
	rendition := filepath.Join(dir, "src_720p.mp4")
	if err := os.WriteFile(rendition, []byte("encoded"), 0o644); err != nil {
		t.Fatal(err)
	}

	movieID := uuid.New()
	uc := newTestUC(&stubMovieRepo{movie: &models.Movie{
		MovieID:    movieID,
		FilePath:   filepath.Join(dir, "src.mp4"),
		Renditions: models.RenditionMap{"720p": rendition},
	}})

	source, err := uc.GetStreamSource(context.Background(), movieID, "720p")
	if err != nil {
		t.Fatal(err)
	}
	if source.Quality != "720p" {
		t.Errorf("quality = %q, want 720p", source.Quality)
	}
	if source.Path != rendition {
		t.Errorf("path = %q, want the rendition", source.Path)
	}
}

func TestGetStreamSourceFallsBackWhenRenditionMissing(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "src.mp4")

	movieID := uuid.New()
	uc := newTestUC(&stubMovieRepo{movie: &models.Movie{
		MovieID:  movieID,
		FilePath: original,
		// Recorded in the database but the file never landed on disk.
		Renditions: models.RenditionMap{"720p": filepath.Join(dir, "src_720p.mp4")},
	}})

	source, err := uc.GetStreamSource(context.Background(), movieID, "720p")
	if err != nil {
		t.Fatal(err)
	}
	if source.Quality != "original" {
		t.Errorf("quality = %q, want fallback to original", source.Quality)
	}
	if source.Path != original {
		t.Errorf("path = %q, want the original file", source.Path)
	}
}

func TestGetStreamSourceUnknownQualityFallsBack(t *testing.T) {
	movieID := uuid.New()
	uc := newTestUC(&stubMovieRepo{movie: &models.Movie{
		MovieID:  movieID,
		FilePath: "/media/a/src.mp4",
	}})

	source, err := uc.GetStreamSource(context.Background(), movieID, "4320p")
	if err != nil {
		t.Fatal(err)
	}
	if source.Quality != "original" || source.Path != "/media/a/src.mp4" {
		t.Errorf("got %q at %q, want the original", source.Quality, source.Path)
	}
}

func TestGetStreamSourceUnknownMovie(t *testing.T) {
	uc := newTestUC(&stubMovieRepo{err: movies.ErrMovieNotFound})

	if _, err := uc.GetStreamSource(context.Background(), uuid.New(), ""); err == nil {
		t.Fatal("expected an error for an unknown movie")
	}
}

func TestGetTranscodeStatusUnknownMovie(t *testing.T) {
	uc := newTestUC(&stubMovieRepo{err: movies.ErrMovieNotFound})

	if _, err := uc.GetTranscodeStatus(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected an error for an unknown movie")
	}
}

func multipartFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File[field][0]
}

func uploadTestUC(t *testing.T, queueSize int) (movies.UseCase, transcode.Tracker, *transcode.Pool) {
	t.Helper()
	store, err := media.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{
		Worker: config.WorkerConfig{QueueSize: queueSize},
		Logger: config.Logger{Level: "error"},
	}
	tracker := transcodeRepository.NewMemoryTracker()
	// Never started, so submitted jobs stay queued for the whole test.
	pool := transcode.NewPool(cfg, nil, testLogger())
	prober := transcode.NewProber(filepath.Join(t.TempDir(), "ffprobe"), testLogger())
	uc := NewMovieUseCase(cfg, &stubMovieRepo{}, store, prober, pool, tracker, testLogger())
	return uc, tracker, pool
}

func uploadCtx() context.Context {
	return context.WithValue(context.Background(), utils.UserCtxKey{}, &models.User{UserID: uuid.New()})
}

func TestUploadMovieQueuedJobReportsPending(t *testing.T) {
	uc, tracker, _ := uploadTestUC(t, 8)

	created, err := uc.UploadMovie(uploadCtx(), &models.MovieUploadInput{
		Title:       "Night Train",
		Description: "A train at night",
		Year:        2020,
		Genre:       "Drama",
	}, multipartFileHeader(t, "movie", "movie.mp4", "movie bytes"), multipartFileHeader(t, "poster", "poster.jpg", "img"))
	if err != nil {
		t.Fatal(err)
	}

	states, err := tracker.GetStatus(context.Background(), created.MovieID)
	if err != nil {
		t.Fatal(err)
	}
	if len(states) != len(transcode.QualityPresets) {
		t.Fatalf("tracked %d labels, want %d", len(states), len(transcode.QualityPresets))
	}
	for _, preset := range transcode.QualityPresets {
		if states[preset.Label].Status != models.RenditionPending {
			t.Errorf("%s = %q, want pending while the job is queued", preset.Label, states[preset.Label].Status)
		}
	}
}

func TestUploadMovieQueueFullMarksFailed(t *testing.T) {
	uc, tracker, pool := uploadTestUC(t, 1)
	if err := pool.Submit(models.TranscodeJob{MovieID: uuid.New()}); err != nil {
		t.Fatal(err)
	}

	created, err := uc.UploadMovie(uploadCtx(), &models.MovieUploadInput{
		Title:       "Night Train",
		Description: "A train at night",
		Year:        2020,
		Genre:       "Drama",
	}, multipartFileHeader(t, "movie", "movie.mp4", "movie bytes"), multipartFileHeader(t, "poster", "poster.jpg", "img"))
	if err != nil {
		t.Fatal("upload must succeed even when the transcode queue is full:", err)
	}

	states, err := tracker.GetStatus(context.Background(), created.MovieID)
	if err != nil {
		t.Fatal(err)
	}
	for _, preset := range transcode.QualityPresets {
		state := states[preset.Label]
		if state.Status != models.RenditionFailed {
			t.Errorf("%s = %q, want failed after the queue shed the job", preset.Label, state.Status)
		}
		if state.Reason == "" {
			t.Errorf("%s has no failure reason", preset.Label)
		}
	}
}
