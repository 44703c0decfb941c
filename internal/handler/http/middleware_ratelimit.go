// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/parse-guard/internal/app"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/utils"
	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long an unused per-user limiter is kept.
	limiterIdleTTL = 10 * time.Minute
	// limiterPruneThreshold is the map size above which idle limiters are
	// dropped on the next lookup.
	limiterPruneThreshold = 10000
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// userRateLimiter keeps one token bucket per key.
type userRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

func newUserRateLimiter(rps float64, burst int) *userRateLimiter {
	return &userRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *userRateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.visitors) > limiterPruneThreshold {
		l.prune(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// prune must be called with mu held.
func (l *userRateLimiter) prune(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(l.visitors, key)
		}
	}
}

// withRateLimit refuses requests over the per-user budget with 429. It runs
// behind auth, so the user id is always present; the remote address is the
// fallback key.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			key = r.RemoteAddr
		}

		if !h.limiter.allow(key) {
			logger.FromRequest(r).Warn().Str("key", key).Str("path", r.URL.Path).Msg("rate limit exceeded")
			h.metrics.RateLimited(r.URL.Path)
			w.Header().Set("Retry-After", "1")
			utils.WriteError(w, http.StatusTooManyRequests, app.CodeRateLimited, app.MsgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}
