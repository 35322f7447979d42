// Package clock holds the time and randomness sources used by the simulated
// login and payment flows, so callers can swap them for deterministic ones.
package clock

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

// Real returns the wall clock.
func Real() Clock { return realClock{} }

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Instant is a clock whose delays resolve immediately. Now is fixed at At,
// or the wall clock when At is zero.
type Instant struct {
	At time.Time
}

func (c Instant) Now() time.Time {
	if c.At.IsZero() {
		return time.Now()
	}
	return c.At
}

func (c Instant) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.Now()
	return ch
}

// Sleep waits d on c. It returns ctx.Err() if the context ends first, in which
// case the caller must not apply the continuation.
func Sleep(ctx context.Context, c Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	select {
	case <-c.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
