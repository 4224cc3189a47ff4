package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a JSON 500. It has to be the
// outermost middleware, the request id is read back from the response
// headers set by LogRequest.
func PanicRecovery(metricsManager *metrics.Manager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"request_id": w.Header().Get(RequestIDHeader),
					"route":      routeName(r),
					"method":     r.Method,
					"path":       r.URL.Path,
				}).Errorf("panic serving request: %v\n%s", rec, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
