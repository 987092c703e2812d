// Package retry provides bounded retries with exponential backoff.
package retry

import (
	"context"
	"time"
)

// Policy defines how many attempts an operation gets and how long to wait
// between them. The zero value performs a single attempt.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// Sleep waits between attempts. Nil means a real timer honoring ctx;
	// tests inject a recorder to observe the schedule without waiting.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Delay returns the backoff delay after the given number of failed
// attempts: InitialDelay, multiplied per additional failure, capped at
// MaxDelay.
func (p Policy) Delay(failures int) time.Duration {
	if failures < 1 {
		return 0
	}

	delay := float64(p.InitialDelay)
	for i := 1; i < failures; i++ {
		delay *= p.Multiplier
	}

	if p.MaxDelay > 0 && delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}

	return time.Duration(delay)
}

// Do runs op up to p.MaxAttempts times. A failed attempt is passed to
// retryable; a false answer stops immediately, true waits the backoff
// delay and tries again. A nil retryable retries every failure. The error
// of the last attempt is returned on exhaustion.
func Do(ctx context.Context, p Policy, retryable func(error) bool, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := p.wait(ctx, p.Delay(attempt-1)); err != nil {
				return err
			}
		}

		lastErr = op()
		if lastErr == nil {
			return nil
		}

		if retryable != nil && !retryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

func (p Policy) wait(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}

	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
