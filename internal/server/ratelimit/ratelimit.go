// Package ratelimit provides per-client token bucket rate limiting.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultCleanupInterval is how often idle client limiters are evicted
const DefaultCleanupInterval = 10 * time.Minute

// Config holds rate limiting configuration.
type Config struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	CleanupInterval   time.Duration
}

// Info describes the outcome of a rate limit check.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter manages one token bucket per client key.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	config   Config
	rate     rate.Limit
	done     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewLimiter creates a limiter and starts its cleanup goroutine when enabled.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}

	l := &Limiter{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		config:   cfg,
		rate:     rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		done:     make(chan struct{}),
		now:      time.Now,
	}

	if cfg.Enabled {
		go l.cleanupRoutine()
	}
	return l
}

// Allow consumes a token for key if one is available.
func (l *Limiter) Allow(key string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	now := l.now()
	lim := l.limiter(key, now)
	info := Info{Limit: l.config.RequestsPerMinute}

	if lim.AllowN(now, 1) {
		info.Allowed = true
		info.Remaining = max(0, int(lim.TokensAt(now)))
		return true, info
	}

	r := lim.ReserveN(now, 1)
	if r.OK() {
		info.RetryAfter = r.DelayFrom(now)
		r.CancelAt(now)
	}
	return false, info
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

func (l *Limiter) limiter(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.rate, l.config.Burst)
		l.limiters[key] = lim
	}
	l.lastSeen[key] = now
	return lim
}

func (l *Limiter) cleanupRoutine() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.evictIdle(l.config.CleanupInterval)
		case <-l.done:
			return
		}
	}
}

// evictIdle removes limiters unused for longer than age
func (l *Limiter) evictIdle(age time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, seen := range l.lastSeen {
		if now.Sub(seen) > age {
			delete(l.limiters, key)
			delete(l.lastSeen, key)
		}
	}
}
