// Package resilience retries operations that may succeed once an external
// condition settles, such as a data file that has not been written yet.
package resilience

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Policy controls how many times an operation runs and how long to wait
// between runs.
type Policy struct {
	// Attempts is the total number of runs including the first. Values below
	// one are treated as one.
	Attempts int

	// Backoff is the delay before the first retry.
	Backoff time.Duration

	// MaxBackoff caps the delay. Zero means no cap.
	MaxBackoff time.Duration

	// Multiplier grows the delay after each retry. Values below one keep it
	// constant.
	Multiplier float64

	// Jitter spreads each delay by up to this fraction in either direction.
	Jitter float64

	// Retryable decides whether an error is worth another run. Nil retries
	// every error.
	Retryable func(err error) bool

	// OnRetry runs before each wait with the attempt that just failed.
	OnRetry func(attempt int, err error)
}

// Do runs fn under p and returns nil or the last error.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	_, err := DoVal(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoVal runs fn under p and returns the first successful value. Cancelling
// ctx ends the loop with the most recent error.
func DoVal[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	attempts := max(p.Attempts, 1)

	var zero T
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		val, err := fn(ctx)
		if err == nil {
			return val, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == attempts {
			break
		}
		if p.Retryable != nil && !p.Retryable(err) {
			break
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}

		timer := time.NewTimer(p.delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, lastErr
		case <-timer.C:
		}
	}
	return zero, lastErr
}

// delay is the wait after the given failed attempt.
func (p Policy) delay(attempt int) time.Duration {
	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}
	d := float64(p.Backoff) * math.Pow(mult, float64(attempt-1))
	if p.MaxBackoff > 0 && d > float64(p.MaxBackoff) {
		d = float64(p.MaxBackoff)
	}
	if p.Jitter > 0 {
		d += (rand.Float64()*2 - 1) * d * p.Jitter
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// LogRetry returns an OnRetry callback that logs each failed attempt.
func LogRetry(operation string) func(int, error) {
	return func(attempt int, err error) {
		zap.L().Warn("retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
}
