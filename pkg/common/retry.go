package common

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
)

type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 500 * time.Millisecond,
	}
}

// Retry runs fn with exponential backoff and jitter. Only errors marked
// ErrTransient are retried; anything else is returned as-is.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig()
	}

	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !errors.Is(lastErr, ErrTransient) {
			return lastErr
		}

		if attempt == cfg.MaxAttempts-1 {
			break
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * cfg.InitialBackoff
		wait := backoff + time.Duration(rand.Int63n(int64(backoff/2)+1))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return lastErr
}
