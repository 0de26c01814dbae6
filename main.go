package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskestimate/internal/config"
	"taskestimate/internal/factory"
	httptaskestimate "taskestimate/internal/http"
	"taskestimate/internal/middleware"
	db "taskestimate/pkg/database"
	"taskestimate/pkg/log"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	config.Init()

	log.Init()

	db.Init()

	e := echo.New()

	f := factory.NewFactory()

	if err := db.Migrate(f.Db); err != nil {
		logrus.Fatal(err)
	}

	middleware.Init(e)

	httptaskestimate.Init(e, f)

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		err := e.Start(":" + config.Get().App.Port)
		if err != nil {
			if err != http.ErrServerClosed {
				logrus.Fatal(err)
			}
		}
	}()

	<-ch

	logrus.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	e.Shutdown(ctx)
	logrus.Println("Server gracefully stopped")
}
