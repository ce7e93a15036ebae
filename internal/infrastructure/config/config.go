package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Remote  RemoteConfig
	Cache   CacheConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Pricing PricingConfig
}

type RemoteConfig struct {
	Backend      string        `env:"REMOTE_BACKEND, default=memory"`
	Latency      time.Duration `env:"REMOTE_LATENCY, default=150ms"`
	WriteWorkers int           `env:"WRITE_WORKERS,  default=8"`
}

type CacheConfig struct {
	Backend   string `env:"CACHE_BACKEND, default=memory"`
	Prefix    string `env:"CACHE_PREFIX,  default=rental"`
	DraftsKey string `env:"DRAFTS_KEY,    default=memberships:local"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=rental_core"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type PricingConfig struct {
	HourlyRate         float64 `env:"HOURLY_RATE,          default=25000"`
	MonthlyDiscountPct float64 `env:"MONTHLY_DISCOUNT_PCT, default=10"`
	YearlyDiscountPct  float64 `env:"YEARLY_DISCOUNT_PCT,  default=20"`
	MinRentalHours     float64 `env:"MIN_RENTAL_HOURS,     default=24"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool { return c.Env == "production" }

// Load reads an optional .env file and then the environment using
// go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l and validates backend choices.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Remote.Backend {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("config: REMOTE_BACKEND must be %q or %q, got %q", BackendMemory, BackendMongo, c.Remote.Backend)
	}
	switch c.Cache.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("config: CACHE_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.Cache.Backend)
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required in production")
	}
	return nil
}
