package app

import (
	"os"

	"go-employee/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// Redis is optional: without it the service just skips the list cache.
	var rdb *redis.Client
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(redisAddr, 5)
		if err != nil {
			return err
		}
	} else {
		logger.Info("REDIS_ADDR not set, employee list cache disabled")
	}

	return registerModules(router, db, gormDB, rdb, logger)
}
