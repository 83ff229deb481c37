// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// NowFunc supplies the current time. Components that judge staleness take a
// NowFunc so tests can pin the clock.
type NowFunc func() time.Time

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
