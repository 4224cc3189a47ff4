package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics labels requests by mux route name, not by the raw path.
func RequestMetrics(metricsManager *metrics.Manager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sw, r)

			metricsManager.HistRequestDuration.Observe(time.Since(start).Seconds())
			metricsManager.CounterRequests.With(prometheus.Labels{
				"route":  routeName(r),
				"method": r.Method,
				"status": strconv.Itoa(sw.statusCode),
			}).Inc()
		})
	}
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}
	return "unknown"
}

type statusWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (sw *statusWriter) WriteHeader(statusCode int) {
	if !sw.wroteHeader {
		sw.statusCode = statusCode
		sw.wroteHeader = true
	}
	sw.ResponseWriter.WriteHeader(statusCode)
}
