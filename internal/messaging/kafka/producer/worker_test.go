package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-school/internal/messaging/kafka"
	kafkaMock "go-school/internal/messaging/kafka/mock"
	"go-school/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: "broken"}
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, kafka.DefaultBatchSize).Return([]kafka.OutboxEvent{
		{ID: "e-1", RequestID: "req-1", AggregateID: "staff-1", AggregateType: "staff", EventType: "staff_created", Topic: "school.staff.lifecycle.v1", Payload: []byte(`{}`)},
		{ID: "e-2", AggregateID: "rec-1", EventType: "salary_payslip_requested", Topic: "broken", Payload: []byte(`{}`)},
	}, nil)
	repo.EXPECT().MarkSent(ctx, "e-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "e-2", "broker unavailable").Return(false, nil)

	sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	if assert.Len(t, writer.written, 1) {
		msg := writer.written[0]
		assert.Equal(t, "staff-1", string(msg.Key))
		assert.Len(t, msg.Headers, 3)
		assert.Equal(t, "request_id", msg.Headers[2].Key)
	}
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, kafka.DefaultBatchSize).Return(nil, errors.New("db down"))

	sent, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
	assert.EqualError(t, err, "db down")
	assert.Equal(t, 0, sent)
}

func TestProcessPendingEvents_ParkedEventDoesNotStopBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: "broken"}
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, kafka.DefaultBatchSize).Return([]kafka.OutboxEvent{
		{ID: "e-1", AggregateID: "rec-1", EventType: "salary_payslip_requested", Topic: "broken", Payload: []byte(`{}`), RetryCount: kafka.MaxOutboxRetries - 1},
		{ID: "e-2", AggregateID: "staff-2", EventType: "staff_created", Topic: "school.staff.lifecycle.v1", Payload: []byte(`{}`)},
	}, nil)
	repo.EXPECT().MarkFailed(ctx, "e-1", "broker unavailable").Return(true, nil)
	repo.EXPECT().MarkSent(ctx, "e-2").Return(nil)

	sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
}
