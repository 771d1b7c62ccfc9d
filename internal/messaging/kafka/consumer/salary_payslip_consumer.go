package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-school/internal/events"
	salaryerrors "go-school/internal/salary/errors"

	"go.uber.org/zap"
)

type PayslipGenerator interface {
	GeneratePayslip(ctx context.Context, schoolID, recordID string) (string, error)
}

func ConsumeSalaryPayslipRequested(
	ctx context.Context,
	reader MessageReader,
	salaryService PayslipGenerator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_payslip")
	log.Info("salary payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary payslip consumer stopped")
				return
			}
			log.Error("fetch salary payslip message failed", zap.Error(err))
			continue
		}

		var event events.SalaryPayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary payslip event failed", zap.Error(err))
			if !commit(ctx, reader, log, msg) {
				return
			}
			continue
		}

		eventLog := log.With(
			zap.String("request_id", event.RequestID),
			zap.String("salary_record_id", event.SalaryRecordID),
			zap.String("school_id", event.SchoolID),
		)

		var path string
		ok := retryUntilDone(ctx, eventLog, "generate payslip", func(ctx context.Context) error {
			p, err := salaryService.GeneratePayslip(ctx, event.SchoolID, event.SalaryRecordID)
			// a deleted record will never succeed, drop the message
			if errors.Is(err, salaryerrors.ErrRecordNotFound) {
				eventLog.Warn("salary record gone, dropping payslip request")
				return nil
			}
			path = p
			return err
		})
		if !ok || !commit(ctx, reader, eventLog, msg) {
			log.Info("salary payslip consumer stopped")
			return
		}

		if path != "" {
			eventLog.Info("salary payslip generated", zap.String("path", path))
		}
	}
}
