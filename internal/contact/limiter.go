package contact

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"naukariwala-site/internal/scheduler"
)

// ClientLimiter rate-limits per client key (usually the remote IP).
type ClientLimiter struct {
	mu sync.Mutex
	m  map[string]*clientEntry
	r  rate.Limit
	b  int

	now func() time.Time
}

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		m:   make(map[string]*clientEntry),
		r:   rate.Limit(reqPerSec),
		b:   burst,
		now: time.Now,
	}
}

func (cl *ClientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if key == "" {
		key = "_"
	}
	if e, ok := cl.m[key]; ok {
		e.lastSeen = cl.now()
		return e.lim
	}
	e := &clientEntry{lim: rate.NewLimiter(cl.r, cl.b), lastSeen: cl.now()}
	cl.m[key] = e
	return e.lim
}

// Allow reports whether key may submit right now. It never blocks.
func (cl *ClientLimiter) Allow(key string) bool {
	return cl.limiterFor(key).AllowN(cl.now(), 1)
}

// Prune forgets clients idle for longer than idle. It returns how many were dropped.
func (cl *ClientLimiter) Prune(idle time.Duration) int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cutoff := cl.now().Add(-idle)
	n := 0
	for k, e := range cl.m {
		if e.lastSeen.Before(cutoff) {
			delete(cl.m, k)
			n++
		}
	}
	return n
}

func (cl *ClientLimiter) Len() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return len(cl.m)
}

// RunJanitor prunes idle clients every interval until ctx is done.
func (cl *ClientLimiter) RunJanitor(ctx context.Context, interval, idle time.Duration) error {
	scheduler.Every(ctx, interval, "contact-limiter-janitor", func(ctx context.Context) error {
		if n := cl.Prune(idle); n > 0 {
			slog.DebugContext(ctx, "pruned idle contact limiters", "count", n, "remaining", cl.Len())
		}
		return nil
	})
	return nil
}
