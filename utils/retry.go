package utils

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// RetryWithBackoff retries fn up to maxAttempts times with quadratic
// backoff. Used only for store startup; record processing never retries.
func RetryWithBackoff(maxAttempts int, fn func() error, logger *zap.SugaredLogger) error {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * time.Second
			logger.Warnw("retrying", "attempt", attempt+1, "max_attempts", maxAttempts, "backoff", backoff)
			time.Sleep(backoff)
		}
		if err := fn(); err != nil {
			lastErr = err
			logger.Errorw("attempt failed", "attempt", attempt+1, "error", err)
			continue
		}
		return nil
	}
	return fmt.Errorf("all %d attempts failed, last error: %w", maxAttempts, lastErr)
}
