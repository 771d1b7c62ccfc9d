package main

import (
	"flag"

	"go-school/internal/config"
	"go-school/internal/shared/connection"
	"go-school/internal/shared/migration"

	"go.uber.org/zap"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of migrating up")
	flag.Parse()

	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

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
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()

	if *down > 0 {
		err = migration.Down(sqlDB, *down)
	} else {
		err = migration.Up(sqlDB)
	}
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	version, dirty, err := migration.Version(sqlDB)
	if err != nil {
		logger.Fatal("read migration version failed", zap.Error(err))
	}
	logger.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
}
