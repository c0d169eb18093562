package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shipping-service/internal/config"
	"shipping-service/internal/http/middleware/ratelimit"
	"shipping-service/internal/logx"
)

const (
	rateLimitBucketTTL  = 10 * time.Minute
	rateLimitMaxBuckets = 100_000
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if rl.Limit <= 0 {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketPerWindow(clock, rl.Limit, rl.Window, rateLimitBucketTTL, rateLimitMaxBuckets)
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter)
}
