package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func Init(e *echo.Echo) {
	e.Use(echomiddleware.Recover())
	e.Use(Context)
	e.Use(Logger)
}
