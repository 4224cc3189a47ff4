package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fitlog/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPanickingRouter(metricsManager *metrics.Manager, handler http.HandlerFunc) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/goal", handler).Name("goal-get")
	r.Use(PanicRecovery(metricsManager))
	r.Use(LogRequest())
	return r
}

func TestPanicRecovery_NoPanic(t *testing.T) {
	metricsManager := metrics.NewTestManager()
	router := newPanickingRouter(metricsManager, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/goal", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))
}

func TestPanicRecovery_Panic(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	metricsManager := metrics.NewTestManager()
	router := newPanickingRouter(metricsManager, func(http.ResponseWriter, *http.Request) {
		panic("goals repo not set")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/goal", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterHandleRequestPanic))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "goal-get", entry.Data["route"])
	assert.NotEmpty(t, entry.Data["request_id"])
	assert.Equal(t, rr.Header().Get(RequestIDHeader), entry.Data["request_id"])
}

func TestPanicRecovery_AbortHandlerRepanics(t *testing.T) {
	router := newPanickingRouter(metrics.NewTestManager(), func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/goal", nil))
	})
}
