package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/antput/antput/lib/logger"
)

var log, _ = logger.New("retry")

// Policy controls how many times an operation is attempted and how long
// to wait between attempts. The delay is constant, no jitter or backoff.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration

	// Sleep is the suspension used between attempts. Defaults to a
	// context-aware sleep; tests override it to count delays.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy matches the network's expected write behaviour: writes
// fail often under churn but eventually land, so keep trying for a while.
var DefaultPolicy = Policy{
	MaxAttempts: 50,
	Delay:       5 * time.Second,
}

// ExhaustedError reports that every attempt of a labelled operation
// failed. It wraps the final attempt's error.
type ExhaustedError struct {
	Label    string
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s failed after %d attempts: %v", e.Label, e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do invokes op sequentially until it succeeds or p.MaxAttempts is
// reached, sleeping p.Delay between attempts. Intermediate failures are
// logged and discarded; only the final failure is returned, wrapped in an
// ExhaustedError. Cancelling ctx during a delay stops further attempts.
func Do[T any](ctx context.Context, p Policy, label string, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	doSleep := p.Sleep
	if doSleep == nil {
		doSleep = sleep
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		v, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				log.Infow("succeeded after retries", "label", label, "attempt", attempt)
			}
			return v, nil
		}

		lastErr = err
		log.Infow("attempt failed", "label", label, "attempt", attempt, "maxAttempts", p.MaxAttempts, "error", err)

		if attempt == p.MaxAttempts {
			break
		}

		if err := doSleep(ctx, p.Delay); err != nil {
			return zero, &ExhaustedError{Label: label, Attempts: attempt, Last: err}
		}
	}

	return zero, &ExhaustedError{Label: label, Attempts: p.MaxAttempts, Last: lastErr}
}
