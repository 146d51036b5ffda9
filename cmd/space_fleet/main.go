package main

// go run cmd/space_fleet/main.go

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	_ "space_fleet/docs" // Swagger docs
	"space_fleet/internal/app/config"
	"space_fleet/internal/app/dsn"
	"space_fleet/internal/app/handler"
	"space_fleet/internal/app/handler/api"
	"space_fleet/internal/app/handler/middleware"
	"space_fleet/internal/app/pkg"
	"space_fleet/internal/app/repository"
	"space_fleet/internal/app/service"
	"space_fleet/internal/app/utils"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Space Fleet API
// @version 1.0
// @description Registry of spaceships with filtering, rating and partial updates
// @host localhost:8080
// @BasePath /
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}
	if level, err := logrus.ParseLevel(conf.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown log level %q, using info", conf.LogLevel)
	}

	var (
		store service.Store
		users handler.UserStore
	)
	switch conf.StoreBackend {
	case config.StoreMemory:
		logrus.Info("using in-memory ship store")
		store = repository.NewMemoryStore()
	default:
		var rdb *redis.Client
		if conf.RedisEndpoint != "" {
			rdb, err = utils.NewRedisClient(conf.RedisEndpoint, conf.RedisPassword)
			if err != nil {
				logrus.Warnf("redis unavailable, cache and logins disabled: %v", err)
				rdb = nil
			}
		}
		rep, errRep := repository.New(dsn.FromEnv(), rdb, conf.JwtKey, conf.CacheTTL)
		if errRep != nil {
			logrus.Fatalf("error initializing repository: %v", errRep)
		}
		store = rep
		users = rep
	}

	var images api.ImageStorage
	if conf.MinioEndpoint != "" {
		imageStore, err := utils.NewImageStore(conf.MinioEndpoint, conf.MinioAccessKey, conf.MinioSecretKey, conf.MinioBucket, conf.MinioUseSSL)
		if err != nil {
			logrus.Fatalf("error initializing minio: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := imageStore.EnsureBucket(ctx); err != nil {
			logrus.Warnf("minio bucket %s unavailable, image upload disabled: %v", conf.MinioBucket, err)
		} else {
			images = imageStore
		}
		cancel()
	}

	hand := handler.NewHandler(service.New(store), images, users, conf.AuthEnabled)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
