package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits requests per client IP, keyed by name so that different
// route groups get separate budgets. Proxy headers decide the client IP only
// with trustProxyHeaders set.
func RateLimit(
	rateLimiter RequestRateLimiter,
	name string,
	allowedPerMin int,
	trustProxyHeaders bool,
	metricsManager *metrics.Manager,
) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := name
			if ip, err := pkg.ReadUserIP(r, trustProxyHeaders); err == nil {
				key = name + ":" + ip
			}

			res, err := rateLimiter.Allow(r.Context(), key, redis_rate.PerMinute(allowedPerMin))
			if err != nil {
				log.Errorf("rate limiter [%s]: %s", key, err)
				pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.WriteJSONError(w, http.StatusTooManyRequests, "Too many requests")
		})
	}
}
