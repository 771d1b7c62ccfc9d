package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-school/internal/attendance"
	"go-school/internal/bootstrap"
	"go-school/internal/config"
	"go-school/internal/events"
	"go-school/internal/messaging/kafka"
	"go-school/internal/messaging/kafka/consumer"
	"go-school/internal/salary"
	"go-school/internal/shared/connection"
	"go-school/internal/shared/storage"

	"go.uber.org/zap"
)

const (
	staffLifecycleGroup = "go-school-salary-structure"
	payslipGroup        = "go-school-salary-payslip"
)

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.ValidateWorker(); err != nil {
		return err
	}

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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store storage.ObjectStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
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
	} else {
		logger.Warn("S3_BUCKET not set, payslip requests will be retried until storage is configured")
	}

	attendanceService := attendance.NewService(sqlDB, attendance.NewRepository(gormDB), cfg.Location(), logger)
	salaryService := salary.NewService(
		sqlDB,
		salary.NewRepository(gormDB),
		attendanceService,
		kafka.NewOutboxRepository(sqlDB),
		store,
		bootstrap.NewStdoutAuditLogger(),
		cfg.WorkingWeekdays,
		cfg.Location(),
		logger,
	)

	staffReader := connection.NewKafkaReader(cfg.KafkaBroker, staffLifecycleGroup, events.StaffLifecycleTopic)
	defer staffReader.Close()

	payslipReader := connection.NewKafkaReader(cfg.KafkaBroker, payslipGroup, events.SalaryPayslipRequestedTopic)
	defer payslipReader.Close()

	go consumer.ConsumeStaffLifecycle(ctx, staffReader, salaryService, logger)
	go consumer.ConsumeSalaryPayslipRequested(ctx, payslipReader, salaryService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
