package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maritime_registry/internal/app/config"
	"maritime_registry/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// RunApp serves until SIGINT or SIGTERM, then drains in-flight requests.
func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Handler.SetupRoutes(a.Router)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	srv := &http.Server{
		Addr:              serverAddress,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("listening on %s", serverAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	logrus.Info("Server down")
}
