package tasktype

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) Route(v *echo.Group) {
	v.GET("", h.Find)
	v.POST("", h.Create)
	v.PUT("/bulk", h.BulkUpdate)
	v.PUT("/:id", h.Update)
	v.DELETE("/:id", h.Delete)
}
