package main

import (
	"context"
	"net/http"

	"movilab/internal/repositories"
	"movilab/internal/routes"
	"movilab/migrations"
	"movilab/pkg/config"
	"movilab/pkg/customvalidator"
	"movilab/pkg/database/postgresql"
	apperrors "movilab/pkg/errors"
	applogger "movilab/pkg/logger"
	appmiddleware "movilab/pkg/middleware"
	"movilab/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("pánico en handler",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "error interno del servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("no se pudieron registrar las validaciones", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	if err := migrations.Apply(cfg.Postgres.DSN); err != nil {
		logger.Fatal("migraciones fallidas", zap.Error(err))
	}

	dbConn, err := postgresql.Connect(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("no se pudo conectar a PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis is optional: without an address the recent-records cache
	// degrades to a noop and every read hits the store.
	cache := repositories.NewNoopCache()
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Fatal("no se pudo conectar a Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		cache = repositories.NewRedisCacheRepository(redisClient)
	}

	routes.InitRouter(e, dbConn, cache, logger, cfg)

	logger.Info("servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("error al iniciar el servidor", zap.Error(err))
	}
}
