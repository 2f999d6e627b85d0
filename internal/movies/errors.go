package movies

import "github.com/pkg/errors"

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrFileMissing     = errors.New("media file missing on disk")
	ErrInvalidFileType = errors.New("file type not allowed")
)
