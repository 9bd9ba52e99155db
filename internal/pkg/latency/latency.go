package latency

import (
	"context"
	"time"
)

// Wait suspends once for the simulated backend round trip, or returns early
// if the caller's context is cancelled. A non-positive delay is a no-op so
// tests can run the engine without artificial waiting.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
