package auth

import "github.com/labstack/echo/v4"

type Handler interface {
	Register() echo.HandlerFunc
	Login() echo.HandlerFunc
	GetMe() echo.HandlerFunc
	UpdateProfile() echo.HandlerFunc
	ChangePassword() echo.HandlerFunc
}
