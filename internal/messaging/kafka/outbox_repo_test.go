package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-school/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_CreateInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	event, err := kafka.NewEvent("req-1", "staff", "11111111-1111-1111-1111-111111111111", "staff_created", "school.staff.lifecycle.v1", map[string]string{"staff_id": "x"})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID, "req-1", "staff", event.AggregateID, "staff_created", "school.staff.lifecycle.v1", event.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	err = repo.Create(context.Background(), kafka.OutboxEvent{ID: "x", Topic: "t", EventType: "e", Status: kafka.OutboxStatusPending})
	assert.EqualError(t, err, "outbox payload is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("e-1", "req-1", "salary_record", "agg-1", "salary_payslip_requested", "topic", []byte(`{}`), kafka.OutboxStatusPending, 0, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 10)
	assert.NoError(t, err)
	if assert.Len(t, events, 1) {
		assert.Equal(t, "req-1", events[0].RequestID)
		assert.Equal(t, "salary_payslip_requested", events[0].EventType)
		assert.True(t, events[0].NextRetryAt.Equal(now))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedBacksOff(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'")).
		WithArgs("e-1", kafka.OutboxStatusFailed, "broker down", kafka.MaxOutboxRetries, kafka.OutboxStatusDead).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(kafka.OutboxStatusFailed))

	dead, err := kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "e-1", "broker down")
	assert.NoError(t, err)
	assert.False(t, dead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedParksAfterMaxRetries(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e-2", kafka.OutboxStatusFailed, "topic missing", kafka.MaxOutboxRetries, kafka.OutboxStatusDead).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(kafka.OutboxStatusDead))

	dead, err := kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "e-2", "topic missing")
	assert.NoError(t, err)
	assert.True(t, dead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	event, err := kafka.NewEvent("", "staff", "a", "staff_created", "topic", struct{}{})
	assert.NoError(t, err)
	assert.NoError(t, kafka.ValidateOutboxEvent(event))

	event.Status = "unknown"
	assert.EqualError(t, kafka.ValidateOutboxEvent(event), "invalid outbox status: unknown")

	event.Topic = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(event), "outbox topic is required")
}
