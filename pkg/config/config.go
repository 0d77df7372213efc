package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App         AppConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Fulfillment FulfillmentConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BREWPOINT_APP_ENV" default:"development"`
	Port         string `envconfig:"BREWPOINT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BREWPOINT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BREWPOINT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"BREWPOINT_REDIS_URL"`
	Address      string        `envconfig:"BREWPOINT_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"BREWPOINT_REDIS_PASSWORD"`
	DB           int           `envconfig:"BREWPOINT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BREWPOINT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BREWPOINT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BREWPOINT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BREWPOINT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BREWPOINT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BREWPOINT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FulfillmentConfig struct {
	// SnapshotTTL bounds how long an idle customer snapshot is retained.
	// Zero keeps snapshots indefinitely.
	SnapshotTTL time.Duration `envconfig:"BREWPOINT_FULFILLMENT_SNAPSHOT_TTL" default:"720h"`
	DefaultMode string        `envconfig:"BREWPOINT_FULFILLMENT_DEFAULT_MODE" default:"delivery"`
}
