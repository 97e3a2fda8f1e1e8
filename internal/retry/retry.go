// Package retry wraps a single fallible upstream call with a bounded
// exponential-backoff policy specialized to transient rate limits.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardpanel/internal/common"
)

type Class int

const (
	// ClassRateLimited marks a transient failure worth retrying.
	ClassRateLimited Class = iota
	// ClassOther marks a failure that aborts immediately.
	ClassOther
)

// Classifier labels a failed attempt.
type Classifier func(error) Class

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 15 * time.Second
)

type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// OnBackoff, if set, is called before each backoff sleep with the number
	// of the upcoming attempt and the delay.
	OnBackoff func(attempt int, delay time.Duration)

	// Sleep overrides the context-aware wait; tests inject a recorder here.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Do runs op up to MaxAttempts times. A rate-limited failure sleeps
// BaseDelay, then 2*BaseDelay, ... before the next attempt; any other
// failure aborts at once. Both abort paths and budget exhaustion return an
// error wrapping common.ErrUpstream with the last attempt's failure.
func Do[T any](ctx context.Context, p Policy, classify Classifier, op func(context.Context) (T, error)) (T, error) {
	var zero T

	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	baseDelay := p.BaseDelay
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = wait
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			delay := baseDelay << (attempt - 2)
			if p.OnBackoff != nil {
				p.OnBackoff(attempt, delay)
			}
			if err := sleep(ctx, delay); err != nil {
				return zero, common.WrapUpstream("backoff interrupted", err)
			}
		}

		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if classify(err) != ClassRateLimited {
			return zero, common.WrapUpstream("completion call failed", err)
		}
	}

	return zero, fmt.Errorf("rate limit retries exhausted after %d attempts: %w",
		maxAttempts, errors.Join(common.ErrUpstream, lastErr))
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
