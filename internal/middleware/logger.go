package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		requestId := uuid.New().String()
		c.Response().Header().Set(echo.HeaderXRequestID, requestId)

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		logrus.WithFields(logrus.Fields{
			"request_id": requestId,
			"method":     c.Request().Method,
			"uri":        c.Request().RequestURI,
			"status":     c.Response().Status,
			"latency":    time.Since(start).String(),
		}).Info("request")
		return nil
	}
}
