package app

import (
	"context"

	"go-school/internal/bootstrap"
	"go-school/internal/config"
	"go-school/internal/middleware"
	"go-school/internal/shared/connection"
	"go-school/internal/shared/migration"
	"go-school/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg *config.Config, auditLogger bootstrap.AuditLogger) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.ConnectRetries,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	if !cfg.IsProduction() {
		if err := migration.Up(sqlDB); err != nil {
			return err
		}
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// Payslips are optional; without a bucket the payslip endpoints report storage unavailable.
	var store storage.ObjectStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return err
		}
		store = s3Store
		logger.Info("payslip storage ready", zap.String("bucket", cfg.S3Bucket))
	}

	// 2. Register Modules & Routes
	router.Use(middleware.RequestID())
	return registerModules(router, cfg, sqlDB, gormDB, redisClient, store, auditLogger, logger)
}
