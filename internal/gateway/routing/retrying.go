package routing

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"shipping-service/internal/logx"
)

type gateway interface {
	Distance(ctx context.Context, fromLat, fromLong, toLat, toLong float64) (*Route, error)
}

type counter interface {
	Inc()
}

// RetryConfig controls the retry behavior of RetryingGateway.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway wraps a routing gateway with exponential-backoff retries
// for transient failures.
type RetryingGateway struct {
	next    gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(ctx context.Context, d time.Duration) bool
}

// NewRetryingGateway wraps next with retries. Returns nil when next is nil.
func NewRetryingGateway(next gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg, sleep: sleepWithContext}
}

// Distance fetches a route, retrying transient failures.
func (g *RetryingGateway) Distance(ctx context.Context, fromLat, fromLong, toLat, toLong float64) (*Route, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		route, err := g.next.Distance(ctx, fromLat, fromLong, toLat, toLong)
		if err == nil {
			return route, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("routing gateway retry",
			logx.String("method", "Distance"),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !g.sleep(ctx, delay) {
			break
		}
	}
	return nil, lastErr
}

// isRetryable reports whether the failure is worth another attempt:
// timeouts, connection errors and throttling or server-side statuses.
func isRetryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

// sleepWithContext waits for d, returning false when the context is
// cancelled first.
func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
