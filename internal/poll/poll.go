// Package poll provides bounded polling against external state: a probe is
// retried on a fixed interval until it reports completion, a hard wall-clock
// deadline elapses, or the context is canceled.
package poll

import (
	"context"
	"fmt"
	"time"

	"github.com/ikatensei/relayer-backend/internal/clock"
)

// TimeoutError reports that the probe did not complete before the deadline.
type TimeoutError struct {
	Op       string
	Deadline time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s did not complete within %s", e.Op, e.Deadline)
}

// Probe inspects external state once. done reports completion. A non-nil
// error marks the attempt failed; it is retried on the next tick unless fatal
// is true.
type Probe func(ctx context.Context) (done bool, fatal bool, err error)

// Config bounds one polling run.
type Config struct {
	// Op names the awaited condition for timeout errors and logs.
	Op string
	// Interval between probe attempts.
	Interval time.Duration
	// Deadline is the hard wall-clock bound for the whole run.
	Deadline time.Duration
}

// Until runs probe on cfg.Interval until it reports done, returns a fatal
// error, the context is canceled, or cfg.Deadline passes. Transient probe
// errors are swallowed and retried; the last one is attached to the
// *TimeoutError if the deadline expires.
func Until(ctx context.Context, cfg Config, probe Probe) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Deadline)
	defer cancel()

	var lastErr error
	for {
		done, fatal, err := probe(ctx)
		if err != nil {
			if fatal {
				return err
			}
			lastErr = err
		} else if done {
			return nil
		}

		if sleepErr := clock.SleepWithContext(ctx, cfg.Interval); sleepErr != nil {
			if ctx.Err() == context.DeadlineExceeded {
				timeout := &TimeoutError{Op: cfg.Op, Deadline: cfg.Deadline}
				if lastErr != nil {
					return fmt.Errorf("%w (last probe error: %v)", timeout, lastErr)
				}
				return timeout
			}
			return sleepErr
		}
	}
}
