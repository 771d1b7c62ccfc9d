package consumer

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

var (
	retryInitialBackoff = time.Second
	retryMaxBackoff     = time.Minute
)

// retryUntilDone runs fn on the same message until it succeeds. Offsets are
// committed in order, so moving on after a failure would lose the message.
// It returns false only when ctx is done.
func retryUntilDone(ctx context.Context, log *zap.Logger, step string, fn func(ctx context.Context) error) bool {
	backoff := retryInitialBackoff
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}

		log.Warn(step+" failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		backoff *= 2
		if backoff > retryMaxBackoff {
			backoff = retryMaxBackoff
		}
	}
}

// commit retries the offset commit so a broker blip does not replay the
// message after the next successful one.
func commit(ctx context.Context, reader MessageReader, log *zap.Logger, msg kafkago.Message) bool {
	return retryUntilDone(ctx, log, "commit message", func(ctx context.Context) error {
		return reader.CommitMessages(ctx, msg)
	})
}
