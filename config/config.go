package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Storage   StorageConfig   `mapstructure:"storage"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	AES       AESConfig       `mapstructure:"aes"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Ingest    IngestConfig    `mapstructure:"ingest"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Alert     AlertConfig     `mapstructure:"alert"`
	Security  SecurityConfig  `mapstructure:"security"`
	Worker    WorkerConfig    `mapstructure:"worker"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig backs the rate limiter, the ingest nonce store and the
// idempotency cache.
type RedisConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// AuthConfig controls admin login lockout and the bootstrap account.
type AuthConfig struct {
	MaxFailedAttempts int           `mapstructure:"max_failed_attempts"`
	LockoutDuration   time.Duration `mapstructure:"lockout_duration"`
	BootstrapEmail    string        `mapstructure:"bootstrap_email"`
	BootstrapPassword string        `mapstructure:"bootstrap_password"`
}

// IngestConfig holds the shared credentials used to sign POST /events.
type IngestConfig struct {
	AccessKey          string        `mapstructure:"access_key"`
	SecretKey          string        `mapstructure:"secret_key"`
	TimestampTolerance time.Duration `mapstructure:"timestamp_tolerance"`
	NonceTTL           time.Duration `mapstructure:"nonce_ttl"`
	IdempotencyTTL     time.Duration `mapstructure:"idempotency_ttl"`
}

type WebhookConfig struct {
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	DefaultMaxRetries int           `mapstructure:"default_max_retries"`
	UserAgent         string        `mapstructure:"user_agent"`
	Backoff           BackoffConfig `mapstructure:"backoff"`
}

// BackoffConfig parameterises the retry strategies.
// exponential = 2^n * Base, linear = n * Base, fixed = Fixed.
type BackoffConfig struct {
	Base  time.Duration `mapstructure:"base"`
	Fixed time.Duration `mapstructure:"fixed"`
}

type AlertConfig struct {
	URL         string        `mapstructure:"url"`
	MaxRetries  int           `mapstructure:"max_retries"`
	BackoffBase time.Duration `mapstructure:"backoff_base"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// SecurityConfig tunes suspicious-activity detection.
type SecurityConfig struct {
	FailedLoginThreshold int           `mapstructure:"failed_login_threshold"`
	FailedLoginWindow    time.Duration `mapstructure:"failed_login_window"`
	RecentLoginSample    int           `mapstructure:"recent_login_sample"`
}

type WorkerConfig struct {
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	BatchSize     int           `mapstructure:"batch_size"`
	Concurrency   int           `mapstructure:"concurrency"`
	StaleAfter    time.Duration `mapstructure:"stale_after"`
	SweepSchedule string        `mapstructure:"sweep_schedule"`
}

// RateLimitRule is a fixed-window budget.
type RateLimitRule struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

type RateLimitConfig struct {
	Login  RateLimitRule `mapstructure:"login"`
	Ingest RateLimitRule `mapstructure:"ingest"`
	Admin  RateLimitRule `mapstructure:"admin"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WD_ (wellness-dispatch).
// Nested keys use underscore: WD_DATABASE_HOST, WD_WEBHOOK_REQUEST_TIMEOUT, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wellness_dispatch")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "wellness-dispatch")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("auth.max_failed_attempts", 5)
	v.SetDefault("auth.lockout_duration", "15m")
	v.SetDefault("auth.bootstrap_email", "")
	v.SetDefault("auth.bootstrap_password", "")
	v.SetDefault("ingest.access_key", "")
	v.SetDefault("ingest.secret_key", "")
	v.SetDefault("ingest.timestamp_tolerance", "5m")
	v.SetDefault("ingest.nonce_ttl", "10m")
	v.SetDefault("ingest.idempotency_ttl", "24h")
	v.SetDefault("webhook.request_timeout", "30s")
	v.SetDefault("webhook.default_max_retries", 3)
	v.SetDefault("webhook.user_agent", "wellness-dispatch/1.0")
	v.SetDefault("webhook.backoff.base", "1s")
	v.SetDefault("webhook.backoff.fixed", "5s")
	v.SetDefault("alert.url", "")
	v.SetDefault("alert.max_retries", 3)
	v.SetDefault("alert.backoff_base", "1s")
	v.SetDefault("alert.timeout", "10s")
	v.SetDefault("security.failed_login_threshold", 5)
	v.SetDefault("security.failed_login_window", "30m")
	v.SetDefault("security.recent_login_sample", 5)
	v.SetDefault("worker.poll_interval", "1s")
	v.SetDefault("worker.batch_size", 50)
	v.SetDefault("worker.concurrency", 4)
	v.SetDefault("worker.stale_after", "5m")
	v.SetDefault("worker.sweep_schedule", "@every 1m")
	v.SetDefault("rate_limit.login.limit", 5)
	v.SetDefault("rate_limit.login.window", "1m")
	v.SetDefault("rate_limit.ingest.limit", 600)
	v.SetDefault("rate_limit.ingest.window", "1m")
	v.SetDefault("rate_limit.admin.limit", 120)
	v.SetDefault("rate_limit.admin.window", "1m")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WD_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("storage.driver must be postgres or memory, got %q", c.Storage.Driver)
	}
	if c.Webhook.RequestTimeout <= 0 {
		return fmt.Errorf("webhook.request_timeout must be positive")
	}
	if c.Webhook.DefaultMaxRetries < 0 {
		return fmt.Errorf("webhook.default_max_retries must not be negative")
	}
	if c.Worker.Concurrency < 1 || c.Worker.BatchSize < 1 {
		return fmt.Errorf("worker.concurrency and worker.batch_size must be at least 1")
	}
	return nil
}

// ValidateStandaloneWorker rejects running the worker in its own process
// against the memory store, which only the serving process can see.
func (c *Config) ValidateStandaloneWorker() error {
	if c.Storage.Driver != "postgres" {
		return fmt.Errorf("the standalone worker needs storage.driver=postgres, got %q; use serve --with-worker instead", c.Storage.Driver)
	}
	return nil
}
