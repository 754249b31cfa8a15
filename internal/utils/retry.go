package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/sethvargo/go-retry"
)

// DefaultRetryBaseDelay is the wait after the first failed attempt. Each
// following wait doubles it: 500ms, 1s, 2s, ...
const DefaultRetryBaseDelay = 500 * time.Millisecond

// Retrier runs an operation with exponential backoff between attempts.
// It holds no per-call state and is safe for concurrent use.
type Retrier struct {
	base   time.Duration
	logger *logger.Logger

	// wrapBackoff lets tests observe the computed waits.
	wrapBackoff func(retry.Backoff) retry.Backoff
}

// NewRetrier returns a Retrier whose first wait is base. A non-positive base
// falls back to DefaultRetryBaseDelay.
func NewRetrier(base time.Duration, log *logger.Logger) *Retrier {
	if base <= 0 {
		base = DefaultRetryBaseDelay
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Retrier{base: base, logger: log}
}

// Do calls op until it succeeds, it returns an error marked with Permanent,
// ctx is done, or maxAttempts attempts have failed. The first attempt runs
// immediately; attempt n+1 waits base*2^(n-1) after attempt n failed.
//
// Every failed attempt but the last is logged at warn level with the attempt
// number and label. The terminal error is returned wrapped with label. When
// ctx is already done before the first attempt, op never runs and the
// context error is returned.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error, maxAttempts int, label string) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	backoff := retry.WithMaxRetries(uint64(maxAttempts-1), retry.NewExponential(r.base))
	if r.wrapBackoff != nil {
		backoff = r.wrapBackoff(backoff)
	}

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		err := op(ctx)
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			return err
		}

		if attempt < maxAttempts {
			r.logger.Warn().
				Err(err).
				Str("label", label).
				Int("attempt", attempt).
				Int("max_attempts", maxAttempts).
				Msg("attempt failed, retrying")
		}

		return retry.RetryableError(err)
	})
	if err != nil {
		if attempt == 0 && ctx.Err() != nil {
			return fmt.Errorf("%s: %w", label, ctx.Err())
		}
		return fmt.Errorf("%s: giving up after %d attempt(s): %w", label, attempt, err)
	}

	return nil
}
