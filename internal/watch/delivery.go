package watch

import "github.com/labstack/echo/v4"

type Handler interface {
	AddToHistory() echo.HandlerFunc
	GetHistory() echo.HandlerFunc
	UpdateProgress() echo.HandlerFunc
	AddToFavorites() echo.HandlerFunc
	GetFavorites() echo.HandlerFunc
	RemoveFromFavorites() echo.HandlerFunc
}
