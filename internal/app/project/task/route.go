package task

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) Route(v *echo.Group) {
	v.POST("", h.Create)
	v.PUT("/:id", h.Update)
	v.DELETE("/:id", h.Delete)
}
