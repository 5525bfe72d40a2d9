package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/reps/internal/rapidapi"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// bodyPartLoader is satisfied by *catalog.Controller.
type bodyPartLoader interface {
	LoadBodyParts(ctx context.Context) ([]string, *rapidapi.Failure)
}

// StartBodyPartRetry fetches the body-part list again in the background,
// backing off between attempts, until a fetch succeeds, a failure is not
// retryable (an auth or shape error, say) or ctx ends. The returned channel
// is closed when the goroutine exits.
func StartBodyPartRetry(ctx context.Context, loader bodyPartLoader, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for failures := 0; ; failures++ {
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			parts, failure := loader.LoadBodyParts(ctx)
			if failure == nil {
				logger.Info("body part list loaded", zap.Int("attempts", failures+1), zap.Int("count", len(parts)-1))
				return
			}
			if !failure.Retryable() {
				logger.Warn("body part list retry abandoned",
					zap.Int("attempts", failures+1),
					zap.String("reason", string(failure.Reason)),
					zap.Int("status", failure.Status),
				)
				return
			}
		}
	}()
	return done
}

// calculateBackoff doubles interval per failure, capped at maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
