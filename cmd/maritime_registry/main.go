package main

// go run cmd/maritime_registry/main.go

import (
	"context"
	"time"

	"maritime_registry/internal/app/config"
	"maritime_registry/internal/app/dsn"
	"maritime_registry/internal/app/handler"
	"maritime_registry/internal/app/handler/middleware"
	"maritime_registry/internal/app/metrics"
	"maritime_registry/internal/app/pkg"
	"maritime_registry/internal/app/repository"
	"maritime_registry/internal/app/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "maritime_registry/docs" // Swagger docs
)

// @title Maritime registry API
// @version 1.0
// @description Back office API for the ship registry.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	conf.SetupLogger()

	dialector, err := dsn.Dialector(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error selecting database driver: %v", err)
	}
	rep, err := repository.New(dialector, repository.Options{
		SlowThreshold: conf.DBSlowThreshold,
		MaxOpenConns:  conf.DBMaxOpenConns,
		MaxIdleConns:  conf.DBMaxIdleConns,
	})
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	defer rep.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var sessions *utils.SessionStore
	if conf.RedisEndpoint != "" {
		client, err := utils.NewRedisClient(ctx, conf.RedisEndpoint, conf.RedisPassword)
		if err != nil {
			logrus.Fatalf("error connecting to redis: %v", err)
		}
		defer client.Close()
		sessions = utils.NewSessionStore(client, conf.SessionTTL)
	} else {
		logrus.Warn("RedisEndpoint is empty, sessions are not tracked")
	}

	var images *utils.ImageStore
	if conf.MinioEndpoint != "" {
		images, err = utils.NewImageStore(ctx, conf.MinioEndpoint, conf.MinioAccessKey, conf.MinioSecretKey, conf.MinioBucket, conf.MinioUseSSL)
		if err != nil {
			logrus.Fatalf("error initializing minio: %v", err)
		}
	} else {
		logrus.Warn("MinioEndpoint is empty, ship image upload is disabled")
	}

	m := metrics.New()
	tokens := utils.NewTokenIssuer(conf.JwtKey, conf.SessionTTL)
	hand := handler.NewHandler(rep, m, tokens, sessions, images)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(m),
		cors.New(cors.Config{
			AllowOrigins:  conf.CorsOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
	)

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
