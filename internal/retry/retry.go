// Package retry implements the bounded retry policy applied around calls to
// the identity service, the data store and the billing function.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

// Policy describes one call site's retry behaviour. Backoff is linear:
// attempt n sleeps Delay × n before retrying. No jitter, no circuit breaker;
// failures exhaust the attempts and propagate.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first one.
	MaxAttempts int
	// Delay is the base backoff unit.
	Delay time.Duration
	// Permanent classifies errors that must not be retried. Nil means every
	// failure is considered transient.
	Permanent func(error) bool
}

// Do invokes op until it succeeds, returns a permanent error, or the policy's
// attempts are exhausted. Each failed attempt is logged with its index. The
// last error is returned after exhaustion. A cancelled context aborts the
// backoff sleep and returns the context error joined with the last failure.
func Do[T any](ctx context.Context, logger *slog.Logger, p Policy, name string, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if p.Permanent != nil && p.Permanent(err) {
			logger.WarnContext(ctx, "Operation failed with permanent error",
				slog.String("operation", name),
				slog.Int("attempt", attempt),
				slog.Any("error", err))

			return zero, err
		}

		logger.WarnContext(ctx, "Operation attempt failed",
			slog.String("operation", name),
			slog.Int("attempt", attempt),
			slog.Int("maxAttempts", attempts),
			slog.Any("error", err))

		if attempt == attempts {
			break
		}

		if err := sleep(ctx, p.Delay*time.Duration(attempt)); err != nil {
			return zero, errors.Wrap(lastErr, err.Error())
		}
	}

	return zero, errors.Wrapf(lastErr, "%s failed after %d attempts", name, attempts)
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
