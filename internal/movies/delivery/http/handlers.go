package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/movies"
	"github.com/streamflix/streamflix-server/pkg/logger"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type movieHandler struct {
	movieUC movies.UseCase
	logger  logger.Logger
}

func NewMovieHandler(movieUC movies.UseCase, log logger.Logger) movies.Handler {
	return &movieHandler{
		movieUC: movieUC,
		logger:  log,
	}
}

func parseMovieID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("movie_id"))
}

func (h *movieHandler) UploadMovie() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.MovieUploadInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		movieFile, err := c.FormFile("movie")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "No movie file part"})
		}
		posterFile, err := c.FormFile("poster")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "No poster file part"})
		}

		movie, err := h.movieUC.UploadMovie(c.Request().Context(), input, movieFile, posterFile)
		if err != nil {
			if errors.Is(err, movies.ErrInvalidFileType) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "File type not allowed"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, movie)
	}
}

func (h *movieHandler) GetMovieByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		movieID, err := parseMovieID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid movie id"})
		}
		movie, err := h.movieUC.GetMovie(c.Request().Context(), movieID)
		if err != nil {
			if errors.Is(err, movies.ErrMovieNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Movie not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, movie)
	}
}

func (h *movieHandler) ListMovies() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		list, err := h.movieUC.ListMovies(c.Request().Context(), pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *movieHandler) SearchMovies() echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("q")
		if query == "" {
			return c.JSON(http.StatusOK, []interface{}{})
		}
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		list, err := h.movieUC.SearchMovies(c.Request().Context(), query, pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *movieHandler) GetUserUploads() echo.HandlerFunc {
	return func(c echo.Context) error {
		uploads, err := h.movieUC.GetUserUploads(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, uploads)
	}
}

func (h *movieHandler) DeleteMovie() echo.HandlerFunc {
	return func(c echo.Context) error {
		movieID, err := parseMovieID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid movie id"})
		}
		if err = h.movieUC.DeleteMovie(c.Request().Context(), movieID); err != nil {
			if errors.Is(err, movies.ErrMovieNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Movie not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Movie deleted successfully"})
	}
}

func (h *movieHandler) GetPoster() echo.HandlerFunc {
	return func(c echo.Context) error {
		movieID, err := parseMovieID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid movie id"})
		}
		path, err := h.movieUC.GetPosterPath(c.Request().Context(), movieID)
		if err != nil {
			if errors.Is(err, movies.ErrMovieNotFound) || errors.Is(err, movies.ErrFileMissing) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Poster not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error fetching poster"})
		}
		return c.File(path)
	}
}

func (h *movieHandler) GetTranscodeStatus() echo.HandlerFunc {
	return func(c echo.Context) error {
		movieID, err := parseMovieID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid movie id"})
		}
		states, err := h.movieUC.GetTranscodeStatus(c.Request().Context(), movieID)
		if err != nil {
			if errors.Is(err, movies.ErrMovieNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Movie not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, states)
	}
}
