// Package retry wraps cenkalti/backoff with the relayer's retry policy:
// bounded exponential backoff with a hard attempt ceiling.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Permanent marks err as non-retryable; Do returns it immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Config bounds one retry run.
type Config struct {
	// MaxAttempts is the total number of tries including the first.
	MaxAttempts uint64
	// InitialInterval seeds the exponential backoff. Zero uses the
	// library default.
	InitialInterval time.Duration
}

// Do runs op with exponential backoff until it succeeds, returns a permanent
// error, the context is canceled, or cfg.MaxAttempts is exhausted.
func Do(ctx context.Context, cfg Config, op func() error) error {
	if cfg.MaxAttempts == 0 {
		return errors.New("retry: max attempts must be positive")
	}

	policy := backoff.NewExponentialBackOff()
	if cfg.InitialInterval > 0 {
		policy.InitialInterval = cfg.InitialInterval
	}

	var attempts uint64
	err := backoff.Retry(func() error {
		attempts++
		return op()
	}, backoff.WithContext(backoff.WithMaxRetries(policy, cfg.MaxAttempts-1), ctx))
	if err != nil {
		return fmt.Errorf("after %d attempts: %w", attempts, err)
	}
	return nil
}
