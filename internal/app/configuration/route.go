package configuration

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) Route(v *echo.Group) {
	v.GET("", h.Find)
	v.PUT("", h.Set)
}
