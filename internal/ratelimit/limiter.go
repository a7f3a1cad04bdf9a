// Package ratelimit throttles outbound lookups so bulk runs stay within the
// API's request allowance.
package ratelimit

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

// jitterFactor is the maximum relative deviation applied to each wait.
const jitterFactor = 0.20

// Limiter is a token bucket shared by all lookup workers. A nil inner bucket
// means unlimited.
type Limiter struct {
	inner *rate.Limiter
}

// New creates a Limiter allowing rps requests per second with the given burst.
// rps <= 0 disables limiting.
func New(rps float64, burst int) *Limiter {
	if rps <= 0 {
		return &Limiter{}
	}
	return &Limiter{inner: rate.NewLimiter(rate.Limit(rps), max(burst, 1))}
}

// Wait blocks until a token is available or ctx is done. Waits are stretched
// or shortened by up to ±20% so bulk lookups do not arrive in lockstep.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.inner == nil {
		return nil
	}

	res := l.inner.Reserve()
	if !res.OK() {
		return ctx.Err()
	}

	delay := res.Delay()
	if delay <= 0 {
		return nil
	}
	jitter := time.Duration(float64(delay) * jitterFactor * (rand.Float64()*2 - 1)) //nolint:gosec // jitter needs no crypto randomness
	delay = max(0, delay+jitter)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		res.Cancel()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
