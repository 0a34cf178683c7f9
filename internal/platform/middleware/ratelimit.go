package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"tripapp/internal/platform/metrics"
	dErrors "tripapp/pkg/domain-errors"
	"tripapp/pkg/platform/httputil"
	"tripapp/pkg/requestcontext"
)

// idleLimiterTTL is how long a client's bucket survives without traffic.
const idleLimiterTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *gocache.Cache
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewRateLimiter allows rps sustained requests with the given burst per client.
// m and logger may be nil.
func NewRateLimiter(rps float64, burst int, m *metrics.Metrics, logger *slog.Logger) *RateLimiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: gocache.New(idleLimiterTTL, 2*idleLimiterTTL),
		metrics:  m,
		logger:   logger,
	}
}

func (l *RateLimiter) limiterFor(key string) *rate.Limiter {
	if v, ok := l.limiters.Get(key); ok {
		return v.(*rate.Limiter)
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	// Add fails if another request stored a limiter first; use that one.
	if err := l.limiters.Add(key, lim, gocache.DefaultExpiration); err != nil {
		if v, ok := l.limiters.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

// Middleware rejects requests over the client's budget with 429.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := requestcontext.ClientIP(ctx)
		if key == "" {
			key = ClientIPFromRequest(r)
		}

		lim := l.limiterFor(key)
		// Refresh expiry on every hit so active clients keep their bucket.
		l.limiters.SetDefault(key, lim)

		if !lim.Allow() {
			retry := int(math.Ceil(1 / float64(l.limit)))
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			if l.metrics != nil {
				l.metrics.IncrementRateLimited()
			}
			l.logger.WarnContext(ctx, "rate limit exceeded", append([]any{"limiter_key", key}, requestcontext.LogAttrs(ctx)...)...)
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many requests"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
