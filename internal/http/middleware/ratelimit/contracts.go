package ratelimit

import "time"

// Limiter decides whether a client may hit the write routes again.
// Keys are client IPs as extracted by the middleware.
type Limiter interface {
	Allow(key string) bool
}

// NopLimiter admits every request. Wired in when RATE_LIMIT is zero.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }

// NewNopLimiter returns a NopLimiter behind the Limiter interface.
func NewNopLimiter() Limiter { return NopLimiter{} }

// Clock abstracts time.Now so refill arithmetic is testable.
type Clock interface {
	Now() time.Time
}

// RealClock delegates to the runtime clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
