package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/fitlog/internal"
	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/logging"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/pkg"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	// local runs keep secrets in .env, production sets them in the environment
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "fitlog-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	secrets := loadSecrets()

	mongoURI := secrets.mongoURI
	if mongoURI == "" {
		mongoURI = cfg.MongoURI()
		log.Debugf("FITLOG_MONGO_URI not set, using [%s]", mongoURI)
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("backend", "main", promRegistry)

	mongoClient, err := db.NewMongoClient(ctx, db.NewMongoClientParams{
		URI:              mongoURI,
		AppName:          "fitlog-service",
		TracingEnabled:   secrets.honeycombEnabled,
		ConnectionsGauge: metricsManager.GaugeMongoConnections,
	})
	if err != nil {
		log.Fatalf("new mongo client: %s", err)
	}

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			MongoClient:             mongoClient,
			MetricsManager:          metricsManager,
			PromRegistry:            promRegistry,
			AccessTokenSecret:       secrets.accessTokenSecret,
			RefreshTokenSecret:      secrets.refreshTokenSecret,
			RedisPassword:           secrets.redisPassword,
			HoneycombTracingEnabled: secrets.honeycombEnabled,
			VersionInfo:             versionInfo,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("graceful shutdown: %s", err)
	}
}

type envSecrets struct {
	accessTokenSecret  string
	refreshTokenSecret string
	redisPassword      string
	mongoURI           string
	honeycombEnabled   bool
}

// loadSecrets reads everything kept out of config.toml. Missing JWT secrets
// are fatal, the rest only logged.
func loadSecrets() envSecrets {
	secrets := envSecrets{
		accessTokenSecret:  os.Getenv("FITLOG_JWT_ACCESS_SECRET"),
		refreshTokenSecret: os.Getenv("FITLOG_JWT_REFRESH_SECRET"),
		redisPassword:      os.Getenv("FITLOG_REDIS_PASS"),
		mongoURI:           os.Getenv("FITLOG_MONGO_URI"),
		honeycombEnabled:   os.Getenv("HONEYCOMB_ENABLED") == "true",
	}

	if secrets.accessTokenSecret == "" || secrets.refreshTokenSecret == "" {
		log.Fatalln("jwt secrets not set. use FITLOG_JWT_ACCESS_SECRET and FITLOG_JWT_REFRESH_SECRET")
	}
	if secrets.redisPassword == "" {
		log.Errorf("redis password not set. use FITLOG_REDIS_PASS")
	}
	if os.Getenv("OTEL_SERVICE_NAME") == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}
	if !secrets.honeycombEnabled {
		log.Debugln("honeycomb tracing disabled")
	} else if os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("HONEYCOMB_API_KEY env var not set")
	}

	return secrets
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
