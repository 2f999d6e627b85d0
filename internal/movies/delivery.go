package movies

import "github.com/labstack/echo/v4"

type Handler interface {
	UploadMovie() echo.HandlerFunc
	GetMovieByID() echo.HandlerFunc
	ListMovies() echo.HandlerFunc
	SearchMovies() echo.HandlerFunc
	GetUserUploads() echo.HandlerFunc
	DeleteMovie() echo.HandlerFunc
	StreamMovie() echo.HandlerFunc
	GetPoster() echo.HandlerFunc
	GetTranscodeStatus() echo.HandlerFunc
}
