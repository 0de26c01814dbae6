package project

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) Route(v *echo.Group) {
	v.GET("", h.Find)
	v.POST("", h.Create)
	v.GET("/:id", h.FindById)
	v.PUT("/:id", h.Update)
	v.DELETE("/:id", h.Delete)

	h.TaskHandler.Route(v.Group("/task"))
	h.EstimateHandler.Route(v.Group("/estimate"))
}
