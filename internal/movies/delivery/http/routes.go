package http

import (
	"github.com/labstack/echo/v4"
	"github.com/streamflix/streamflix-server/internal/middleware"
	"github.com/streamflix/streamflix-server/internal/movies"
)

func MapMovieRoutes(api *echo.Group, h movies.Handler, mw *middleware.MiddlewareManager) {
	api.GET("/movies", h.ListMovies())
	api.GET("/movies/:movie_id", h.GetMovieByID())
	api.GET("/movies/:movie_id/status", h.GetTranscodeStatus())
	api.GET("/search", h.SearchMovies())
	api.GET("/stream/:movie_id", h.StreamMovie())
	api.GET("/posters/:movie_id", h.GetPoster())

	api.POST("/upload", h.UploadMovie(), mw.AuthJWTMiddleware())
	api.GET("/user/uploads", h.GetUserUploads(), mw.AuthJWTMiddleware())
	api.DELETE("/movies/:movie_id", h.DeleteMovie(), mw.AuthJWTMiddleware())
}
