package http

import (
	"fmt"
	"net/http"

	"taskestimate/internal/app/configuration"
	"taskestimate/internal/app/project"
	"taskestimate/internal/app/tasktype"
	"taskestimate/internal/config"
	"taskestimate/internal/factory"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type customValidator struct {
	validate *validator.Validate
}

func (cv *customValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

func Init(e *echo.Echo, f *factory.Factory) {

	e.Validator = &customValidator{validate: validator.New()}

	e.GET("/", func(c echo.Context) error {
		message := fmt.Sprintf("Hello there, welcome to app %s version %s.", config.Get().App.App, config.Get().App.Version)
		return c.String(http.StatusOK, message)
	})

	tasktype.NewHandler(f).Route(e.Group("/task-type"))
	project.NewHandler(f).Route(e.Group("/project"))
	configuration.NewHandler(f).Route(e.Group("/configuration"))
}
