package http

import (
	"github.com/labstack/echo/v4"
	"github.com/streamflix/streamflix-server/internal/auth"
	"github.com/streamflix/streamflix-server/internal/middleware"
)

func MapAuthRoutes(api *echo.Group, h auth.Handler, mw *middleware.MiddlewareManager) {
	api.POST("/register", h.Register())
	api.POST("/login", h.Login())

	api.GET("/me", h.GetMe(), mw.AuthJWTMiddleware())
	api.POST("/user/update", h.UpdateProfile(), mw.AuthJWTMiddleware())
	api.POST("/user/change-password", h.ChangePassword(), mw.AuthJWTMiddleware())
}
