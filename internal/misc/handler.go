package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/otel/attribute"
)

const healthCheckTimeout = 2 * time.Second

type mongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type HealthResponse struct {
	Mongo string `json:"mongo"`
	Redis string `json:"redis"`
}

type Handler struct {
	mongo       mongoPinger
	redis       redisPinger
	versionInfo string
}

func NewHandler(mongo mongoPinger, redis redisPinger, versionInfo string) *Handler {
	return &Handler{
		mongo:       mongo,
		redis:       redis,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Mongo: "ok", Redis: "ok"}
	healthy := true

	if err := handler.mongo.Ping(ctx, readpref.Primary()); err != nil {
		log.Errorf("health check, mongo ping: %s", err)
		resp.Mongo = "unavailable"
		healthy = false
	}
	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Errorf("health check, redis ping: %s", err)
		resp.Redis = "unavailable"
		healthy = false
	}

	span.SetAttributes(attribute.Bool("healthy", healthy))
	if !healthy {
		pkg.WriteJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, resp)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
