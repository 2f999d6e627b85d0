package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/watch"
	"github.com/streamflix/streamflix-server/pkg/logger"
)

type watchHandler struct {
	watchUC watch.UseCase
	logger  logger.Logger
}

func NewWatchHandler(watchUC watch.UseCase, log logger.Logger) watch.Handler {
	return &watchHandler{
		watchUC: watchUC,
		logger:  log,
	}
}

func (h *watchHandler) AddToHistory() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.AddHistoryInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		created, err := h.watchUC.AddToHistory(c.Request().Context(), input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func (h *watchHandler) GetHistory() echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := h.watchUC.GetHistory(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	}
}

func (h *watchHandler) UpdateProgress() echo.HandlerFunc {
	return func(c echo.Context) error {
		historyID, err := uuid.Parse(c.Param("history_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid history id"})
		}
		input := &models.UpdateProgressInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		if err := h.watchUC.UpdateProgress(c.Request().Context(), historyID, input); err != nil {
			if errors.Is(err, watch.ErrHistoryNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "History entry not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Progress updated"})
	}
}

func (h *watchHandler) AddToFavorites() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.AddFavoriteInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		favorite, err := h.watchUC.AddToFavorites(c.Request().Context(), input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, favorite)
	}
}

func (h *watchHandler) GetFavorites() echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := h.watchUC.GetFavorites(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	}
}

func (h *watchHandler) RemoveFromFavorites() echo.HandlerFunc {
	return func(c echo.Context) error {
		favoriteID, err := uuid.Parse(c.Param("favorite_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid favorite id"})
		}
		if err := h.watchUC.RemoveFromFavorites(c.Request().Context(), favoriteID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Removed from favorites"})
	}
}
