package http

import (
	"github.com/labstack/echo/v4"
	"github.com/streamflix/streamflix-server/internal/middleware"
	"github.com/streamflix/streamflix-server/internal/watch"
)

func MapWatchRoutes(group *echo.Group, h watch.Handler, mw *middleware.MiddlewareManager) {
	group.POST("/watch-history", h.AddToHistory(), mw.AuthJWTMiddleware())
	group.GET("/watch-history", h.GetHistory(), mw.AuthJWTMiddleware())
	group.PUT("/watch-history/:history_id", h.UpdateProgress(), mw.AuthJWTMiddleware())
	group.POST("/favorites", h.AddToFavorites(), mw.AuthJWTMiddleware())
	group.GET("/favorites", h.GetFavorites(), mw.AuthJWTMiddleware())
	group.DELETE("/favorites/:favorite_id", h.RemoveFromFavorites(), mw.AuthJWTMiddleware())
}
