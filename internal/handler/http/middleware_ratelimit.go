package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"golang.org/x/time/rate"
)

const (
	scopeRead  = "read"
	scopeWrite = "write"
)

// maxTrackedKeys caps the limiter table; once reached the table starts over.
const maxTrackedKeys = 10000

// rateLimiter keeps one token bucket per caller and scope. Callers are
// principals on authenticated routes and remote hosts otherwise.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter

	reads  rate.Limit
	writes rate.Limit

	readBurst  int
	writeBurst int
}

// newRateLimiter returns nil when both budgets are disabled.
func newRateLimiter(cfg config.RateLimit) *rateLimiter {
	if cfg.ReadsPerMinute <= 0 && cfg.WritesPerMinute <= 0 {
		return nil
	}

	return &rateLimiter{
		limiters:   make(map[string]*rate.Limiter),
		reads:      perMinute(cfg.ReadsPerMinute),
		writes:     perMinute(cfg.WritesPerMinute),
		readBurst:  max(cfg.ReadsPerMinute, 1),
		writeBurst: max(cfg.WritesPerMinute, 1),
	}
}

func perMinute(n int) rate.Limit {
	if n <= 0 {
		return rate.Inf
	}
	return rate.Every(time.Minute / time.Duration(n))
}

func (rl *rateLimiter) allow(key, scope string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key = scope + ":" + key
	limiter, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxTrackedKeys {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		if scope == scopeWrite {
			limiter = rate.NewLimiter(rl.writes, rl.writeBurst)
		} else {
			limiter = rate.NewLimiter(rl.reads, rl.readBurst)
		}
		rl.limiters[key] = limiter
	}

	return limiter.Allow()
}

func requestScope(r *http.Request) string {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return scopeRead
	default:
		return scopeWrite
	}
}

func callerKey(r *http.Request) string {
	if p, ok := utils.GetPrincipalFromContext(r.Context()); ok {
		return p.ID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// rateLimit rejects requests over the caller's budget with 429. Reads and
// writes draw from separate budgets.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		scope := requestScope(r)
		if !h.limiter.allow(callerKey(r), scope) {
			h.metrics.RateLimited(scope)
			w.Header().Set("Retry-After", "60")
			writeError(w, r, "*Handler.rateLimit", ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
