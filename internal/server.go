package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/fitlog/internal/attendance"
	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/calendar"
	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/exercises"
	"github.com/2beens/fitlog/internal/goals"
	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/misc"
	"github.com/2beens/fitlog/internal/sessions"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/users"
	"github.com/2beens/fitlog/internal/weighins"
	"github.com/2beens/fitlog/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	mongoClient  *mongo.Client
	collections  *db.Collections
	redisClient  *redis.Client
	tokenService *auth.TokenService

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config *config.Config
	// MongoClient is owned by the caller until GracefulShutdown disconnects it.
	MongoClient             *mongo.Client
	MetricsManager          *metrics.Manager
	PromRegistry            *prometheus.Registry
	AccessTokenSecret       string
	RefreshTokenSecret      string
	RedisPassword           string
	HoneycombTracingEnabled bool
	VersionInfo             string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	if params.MongoClient == nil {
		return nil, errors.New("mongo client not set")
	}
	if err := params.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		log.Warnf("failed to ping mongo: %s", err)
	}

	collections, err := db.RegisterSchemas(ctx, params.MongoClient.Database(params.Config.MongoDBName))
	if err != nil {
		return nil, fmt.Errorf("register schemas: %w", err)
	}

	promRegistry := params.PromRegistry
	metricsManager := params.MetricsManager
	if promRegistry == nil || metricsManager == nil {
		promRegistry = metrics.SetupPrometheus()
		metricsManager = metrics.NewManager("backend", "main", promRegistry)
	}
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	tokenService, err := auth.NewTokenService(auth.TokenServiceParams{
		AccessSecret:  params.AccessTokenSecret,
		RefreshSecret: params.RefreshTokenSecret,
		AccessTTL:     params.Config.AccessTokenTTL(),
		RefreshTTL:    params.Config.RefreshTokenTTL(),
		SecureCookies: params.Config.SecureCookies,
	})
	if err != nil {
		return nil, fmt.Errorf("new token service: %w", err)
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitlog-backend")
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       params.Config,
		mongoClient:  params.MongoClient,
		collections:  collections,
		redisClient:  rdb,
		tokenService: tokenService,
		versionInfo:  params.VersionInfo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if err := s.seedExercises(ctx); err != nil {
		return nil, fmt.Errorf("seed exercises: %w", err)
	}

	return s, nil
}

func (s *Server) seedExercises(ctx context.Context) error {
	if s.config.ExercisesCsvPath == "" {
		log.Warnln("exercises csv path not set, catalog will not be seeded")
		return nil
	}

	exists, err := pkg.PathExists(s.config.ExercisesCsvPath, false)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("exercises csv not found: %s", s.config.ExercisesCsvPath)
	}

	catalog, err := exercises.ReadCatalogFile(s.config.ExercisesCsvPath)
	if err != nil {
		return err
	}
	_, err = exercises.Seed(ctx, exercises.NewRepo(s.collections.Exercises), catalog)
	return err
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenService)
	requireAuth := authMiddleware.RequireAuth()
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authRateLimit := middleware.RateLimit(
		reqRateLimiter,
		"auth",
		s.config.AuthRateLimitAllowedPerMin,
		s.config.TrustProxyHeaders,
		s.metricsManager,
	)

	usersRepo := users.NewRepo(s.collections.Users)
	sessionsRepo := sessions.NewRepo(s.collections.Sessions)
	attendanceRepo := attendance.NewRepo(s.collections.Attendance)
	weighInsRepo := weighins.NewRepo(s.collections.WeighIns)

	authHandler := auth.NewHandler(
		usersRepo,
		s.tokenService,
		auth.NewRevocationStore(s.redisClient),
		s.metricsManager,
	)
	authHandler.SetupRoutes(r, authRateLimit, requireAuth)

	attendanceHandler := attendance.NewHandler(
		attendance.NewService(attendanceRepo, sessionsRepo, s.metricsManager),
	)
	attendanceHandler.SetupRoutes(r, requireAuth)

	sessionsHandler := sessions.NewHandler(sessions.NewService(sessionsRepo))
	sessionsHandler.SetupRoutes(r, requireAuth)

	exercisesHandler := exercises.NewHandler(
		exercises.NewCachedRepo(
			exercises.NewRepo(s.collections.Exercises),
			s.config.ExercisesCacheSizeBytes,
			s.config.ExercisesCacheTTLSecs,
		),
	)
	exercisesHandler.SetupRoutes(r)

	weighInsHandler := weighins.NewHandler(weighInsRepo, s.metricsManager)
	weighInsHandler.SetupRoutes(r, requireAuth)

	goalsHandler := goals.NewHandler(goals.NewRepo(s.collections.Goals), weighInsRepo)
	goalsHandler.SetupRoutes(r, requireAuth)

	calendarHandler := calendar.NewHandler(
		calendar.NewService(sessionsRepo, attendanceRepo, weighInsRepo),
	)
	calendarHandler.SetupRoutes(r, requireAuth, authMiddleware.RequirePageSession())

	miscHandler := misc.NewHandler(s.mongoClient, s.redisClient, s.versionInfo)
	miscHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONError(w, http.StatusNotFound, "Not found")
	}).Name("unknown")

	r.Use(middleware.Chain(
		middleware.PanicRecovery(s.metricsManager),
		middleware.LogRequest(),
		middleware.RequestMetrics(s.metricsManager),
		middleware.Cors(s.config.CorsAllowedOrigins),
		middleware.DrainAndCloseRequest(),
	))

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:           router,
		Addr:              ipAndPort,
		WriteTimeout:      time.Minute,
		ReadTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
		ConnState:         s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown stops the http servers first, then releases the clients
// the in-flight requests were using.
func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var errs error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shutdown metrics http server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	if s.mongoClient != nil {
		log.Debugln("disconnecting mongo client ...")
		if err := s.mongoClient.Disconnect(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("disconnect mongo: %w", err))
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("close redis client: %w", err))
		}
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	return errs
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
