package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-school/internal/events"
	salaryerrors "go-school/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type DefaultStructureCreator interface {
	CreateDefaultStructure(ctx context.Context, schoolID, staffID, effectiveDate string) error
}

// ConsumeStaffLifecycle gives every new staff member a zero salary structure
// so salary generation can pick them up once the clerk fills it in.
func ConsumeStaffLifecycle(
	ctx context.Context,
	reader MessageReader,
	salaryService DefaultStructureCreator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.staff_lifecycle")
	log.Info("staff lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("staff lifecycle consumer stopped")
				return
			}
			log.Error("fetch staff lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.StaffCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode staff_created event failed", zap.Error(err))
			if !commit(ctx, reader, log, msg) {
				return
			}
			continue
		}
		if event.EventType != events.StaffCreatedEventType {
			if !commit(ctx, reader, log, msg) {
				return
			}
			continue
		}

		effectiveDate := event.JoinDate
		if effectiveDate == "" {
			effectiveDate = time.Now().UTC().Format("2006-01-02")
		}

		eventLog := log.With(
			zap.String("request_id", event.RequestID),
			zap.String("staff_id", event.StaffID),
			zap.String("school_id", event.SchoolID),
		)

		created := true
		ok := retryUntilDone(ctx, eventLog, "create default salary structure", func(ctx context.Context) error {
			err := salaryService.CreateDefaultStructure(ctx, event.SchoolID, event.StaffID, effectiveDate)
			if err != nil && isDuplicateStructure(err) {
				eventLog.Warn("salary structure already exists for event, skipping")
				created = false
				return nil
			}
			return err
		})
		if !ok || !commit(ctx, reader, eventLog, msg) {
			log.Info("staff lifecycle consumer stopped")
			return
		}

		if created {
			eventLog.Info("salary structure created from staff_created event")
		}
	}
}

func isDuplicateStructure(err error) bool {
	if errors.Is(err, salaryerrors.ErrStructureAlreadyExists) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_structure_effective"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_structure_effective")
}
