package estimate

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) Route(v *echo.Group) {
	v.GET("/:id", h.Calculate)
	v.POST("/:id/recalculate", h.Recalculate)
	v.GET("/:id/export", h.Export)
}
