package middleware

import (
	"taskestimate/internal/abstraction"

	"github.com/labstack/echo/v4"
)

// Context upgrades every request context so handlers can reach the
// transaction-aware abstraction.Context.
func Context(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cc := &abstraction.Context{
			Context: c,
		}
		return next(cc)
	}
}
