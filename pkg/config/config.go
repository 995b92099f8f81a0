package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Mirror   MirrorConfig
	Cache    CacheConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Upstream.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points the gateway at the storefront REST API that owns all
// catalog, cart, review, and auth state.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"STOREFRONT_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"STOREFRONT_UPSTREAM_TIMEOUT" default:"10s"`
}

func (u UpstreamConfig) validate() error {
	base := strings.TrimSpace(u.BaseURL)
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return fmt.Errorf("upstream base url must be an http(s) origin, got %q", u.BaseURL)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// MirrorConfig configures the embedded store that keeps the per-session cart
// snapshot (the browser local-storage analogue). SQLite by default; a
// postgres:// DSN switches drivers.
type MirrorConfig struct {
	DSN             string        `envconfig:"STOREFRONT_MIRROR_DSN" default:"file:storefront-mirror.db?_pragma=busy_timeout(5000)"`
	MaxOpenConns    int           `envconfig:"STOREFRONT_MIRROR_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"STOREFRONT_MIRROR_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_MIRROR_CONN_MAX_LIFETIME" default:"1h"`
}

// UsesPostgres reports whether the mirror DSN targets postgres instead of the
// default sqlite file.
func (m MirrorConfig) UsesPostgres() bool {
	return strings.HasPrefix(strings.TrimSpace(m.DSN), "postgres://") ||
		strings.HasPrefix(strings.TrimSpace(m.DSN), "postgresql://")
}

type CacheConfig struct {
	QueryTTL     time.Duration `envconfig:"STOREFRONT_CACHE_QUERY_TTL" default:"60s"`
	CartTTL      time.Duration `envconfig:"STOREFRONT_CACHE_CART_TTL" default:"30s"`
	FavoritesTTL time.Duration `envconfig:"STOREFRONT_CACHE_FAVORITES_TTL" default:"24h"`
}

// AuthConfig drives the client-side token decode. The gateway never verifies
// signatures; the role claim gates admin-only UI surfaces only.
type AuthConfig struct {
	AdminRole  string        `envconfig:"STOREFRONT_AUTH_ADMIN_ROLE" default:"admin"`
	SessionTTL time.Duration `envconfig:"STOREFRONT_AUTH_SESSION_TTL" default:"720h"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOREFRONT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
