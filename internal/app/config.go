package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the gateway.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	UpstreamBaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"30s"`

	// RedisAddr may be empty; the gateway then keeps tokens in memory and
	// skips the stock cache.
	RedisAddr string `envconfig:"REDIS_ADDR" default:""`

	StockCacheTTL       time.Duration `envconfig:"STOCK_CACHE_TTL" default:"5m"`
	StockWarmupInterval time.Duration `envconfig:"STOCK_WARMUP_INTERVAL" default:"10m"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.UpstreamBaseURL == "" {
		return nil, errors.New("upstream base url must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the gateway runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
