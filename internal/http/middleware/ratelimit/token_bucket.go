package ratelimit

import (
	"sync"
	"time"
)

// Config tunes the token bucket limiter on the order and tracking
// write routes.
type Config struct {
	Rate       float64       // refill rate, tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // drop client buckets idle this long, 0 keeps them forever
	MaxBuckets int           // cap on tracked clients, 0 means unlimited
}

// TokenBucketLimiter keeps one bucket per client. A request spends one
// token; tokens refill continuously at Config.Rate up to Config.Burst,
// so clients get their burst back after a quiet period.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu        sync.RWMutex
	clients   map[string]*clientBucket
	lastSweep time.Time
}

type clientBucket struct {
	mu       sync.Mutex
	tokens   float64
	refilled time.Time // last refill computation
	touched  time.Time // last request, drives TTL eviction
}

// NewTokenBucketLimiter builds a limiter from an explicit Config.
// A nil clock falls back to the runtime clock; non-positive rate and
// burst are clamped to 1 so a zero Config still limits instead of
// blocking everything.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		clients: make(map[string]*clientBucket),
	}
}

// NewTokenBucketPerWindow expresses the limiter as "limit requests per
// window", which is how RATE_LIMIT and RATE_LIMIT_WINDOW configure it.
func NewTokenBucketPerWindow(clock Clock, limit int, window, ttl time.Duration, maxBuckets int) *TokenBucketLimiter {
	if window <= 0 {
		window = time.Second
	}
	if limit <= 0 {
		limit = 1
	}
	return NewTokenBucketLimiter(clock, Config{
		Rate:       float64(limit) / window.Seconds(),
		Burst:      limit,
		TTL:        ttl,
		MaxBuckets: maxBuckets,
	})
}

// Allow spends one token from key's bucket and reports whether one was
// available.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()
	l.sweepIdle(now)

	b := l.bucketFor(key, now)
	if b == nil {
		// at MaxBuckets new clients are refused rather than evicting
		// an active one
		return false
	}
	return b.take(now, l.cfg.Rate, float64(l.cfg.Burst))
}

func (l *TokenBucketLimiter) bucketFor(key string, now time.Time) *clientBucket {
	l.mu.RLock()
	b, ok := l.clients[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// another request may have created it between the two locks
	if b, ok = l.clients[key]; ok {
		return b
	}
	if l.cfg.MaxBuckets > 0 && len(l.clients) >= l.cfg.MaxBuckets {
		return nil
	}

	b = &clientBucket{
		tokens:   float64(l.cfg.Burst),
		refilled: now,
		touched:  now,
	}
	l.clients[key] = b
	return b
}

func (b *clientBucket) take(now time.Time, rate, burst float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.refilled); elapsed > 0 {
		b.tokens += elapsed.Seconds() * rate
		if b.tokens > burst {
			b.tokens = burst
		}
		b.refilled = now
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweepIdle drops buckets idle longer than TTL. It runs at most once
// per sweep interval so the map scan stays off the hot path.
func (l *TokenBucketLimiter) sweepIdle(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}

	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.lastSweep.IsZero() && now.Sub(l.lastSweep) < interval {
		return
	}
	l.lastSweep = now

	for key, b := range l.clients {
		b.mu.Lock()
		idle := now.Sub(b.touched)
		b.mu.Unlock()

		if idle > l.cfg.TTL {
			delete(l.clients, key)
		}
	}
}
