package google

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrRetriesExhausted indicates a transient failure persisted through the
// bounded retry budget. It aborts the affected stream only; other streams
// continue.
var ErrRetriesExhausted = errors.New("google: retries exhausted")

// RetryPolicy is a bounded-attempt retry loop with capped exponential
// backoff. The zero value is not usable; use DefaultRetryPolicy.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// InitialBackoff is the delay before the second attempt.
	InitialBackoff time.Duration
	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration
}

// DefaultRetryPolicy returns the retry policy used for all Gmail API calls.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
	}
}

// Do runs op, retrying on transient errors per IsRetryable. Permanent errors
// are returned immediately. When the attempt budget is exhausted the last
// error is wrapped in ErrRetriesExhausted. The backoff sleep is
// context-aware: cancellation stops the loop between attempts.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	backoff := p.InitialBackoff
	var lastErr error

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > p.MaxBackoff {
				backoff = p.MaxBackoff
			}
		}

		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, p.MaxAttempts, lastErr)
}
