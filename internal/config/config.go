package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// mongo
	MongoHost   string `toml:"mongo_host"`
	MongoPort   string `toml:"mongo_port"`
	MongoDBName string `toml:"mongo_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// auth
	AccessTokenTTLMinutes      int      `toml:"access_token_ttl_minutes"`
	RefreshTokenTTLHours       int      `toml:"refresh_token_ttl_hours"`
	SecureCookies              bool     `toml:"secure_cookies"`
	AuthRateLimitAllowedPerMin int      `toml:"auth_rate_limit_allowed_per_min"`
	CorsAllowedOrigins         []string `toml:"cors_allowed_origins"`
	// only behind a reverse proxy which sets X-Real-Ip / X-Forwarded-For
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`
	// exercises catalog
	ExercisesCsvPath        string `toml:"exercises_csv_path"`
	ExercisesCacheSizeBytes int    `toml:"exercises_cache_size_bytes"`
	ExercisesCacheTTLSecs   int    `toml:"exercises_cache_ttl_secs"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file and returns the config of the given environment,
// with defaults applied for the values left out.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.MongoDBName == "" {
		c.MongoDBName = "fitlog"
	}
	if c.AccessTokenTTLMinutes == 0 {
		c.AccessTokenTTLMinutes = 15
	}
	if c.RefreshTokenTTLHours == 0 {
		c.RefreshTokenTTLHours = 7 * 24
	}
	if c.AuthRateLimitAllowedPerMin == 0 {
		c.AuthRateLimitAllowedPerMin = 15
	}
	if c.ExercisesCacheSizeBytes == 0 {
		c.ExercisesCacheSizeBytes = 2 * 1024 * 1024
	}
	if c.ExercisesCacheTTLSecs == 0 {
		c.ExercisesCacheTTLSecs = 600
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.MongoHost == "" || c.MongoPort == "" {
		return errors.New("mongo host and port must be set")
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		return errors.New("redis host and port must be set")
	}
	return nil
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

func (c *Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenTTLHours) * time.Hour
}

func (c *Config) MongoURI() string {
	return "mongodb://" + net.JoinHostPort(c.MongoHost, c.MongoPort)
}
