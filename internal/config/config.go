// Package config loads and validates host config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// minSecretLen is the minimum accepted JWT secret length in bytes. HS256
// secrets shorter than the hash size weaken the MAC.
const minSecretLen = 32

// Config holds host configuration loaded from the environment.
type Config struct {
	// BridgeAddr is the loopback address the bridge server listens on.
	BridgeAddr string `mapstructure:"BRIDGE_ADDR"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// JWTSecret signs HS256 session tokens. Required; there is no fallback
	// value, the host refuses to start without one.
	JWTSecret string `mapstructure:"JWT_SECRET"`
	// JWTAccessTTL is the access token lifetime (e.g. "1h").
	JWTAccessTTL string `mapstructure:"JWT_ACCESS_TTL"`
	// JWTRefreshTTL is the refresh token lifetime (e.g. "168h").
	JWTRefreshTTL string `mapstructure:"JWT_REFRESH_TTL"`
	// Argon2MemoryKB is the argon2id memory cost in KiB.
	Argon2MemoryKB uint32 `mapstructure:"ARGON2_MEMORY_KB"`
	// Argon2Time is the argon2id time cost.
	Argon2Time uint32 `mapstructure:"ARGON2_TIME"`
	// Argon2Parallelism is the argon2id lane count.
	Argon2Parallelism uint8 `mapstructure:"ARGON2_PARALLELISM"`
	// RedisAddr is the Redis address for rate limiting; empty disables it.
	RedisAddr string `mapstructure:"REDIS_ADDR"`
	// AuthRateLimit is the number of login/register attempts allowed per
	// account within AuthRateWindow.
	AuthRateLimit int `mapstructure:"AUTH_RATE_LIMIT"`
	// AuthRateWindow is the rate limit window (e.g. "1m").
	AuthRateWindow string `mapstructure:"AUTH_RATE_WINDOW"`
	// OTLPEndpoint is the OTLP gRPC collector endpoint; empty disables export.
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext OTLP export regardless of scheme.
	OTLPInsecure bool `mapstructure:"OTLP_INSECURE"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// Version is the host version reported by system:get-status.
	Version string `mapstructure:"APP_VERSION"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("BRIDGE_ADDR", "127.0.0.1:7420")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL", "1h")
	v.SetDefault("JWT_REFRESH_TTL", "168h") // 7d
	v.SetDefault("ARGON2_MEMORY_KB", 64*1024)
	v.SetDefault("ARGON2_TIME", 3)
	v.SetDefault("ARGON2_PARALLELISM", 4)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("AUTH_RATE_LIMIT", 10)
	v.SetDefault("AUTH_RATE_WINDOW", "1m")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("OTLP_INSECURE", false)
	v.SetDefault("APP_ENV", "")
	v.SetDefault("APP_VERSION", "dev")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.BridgeAddr == "" {
		return nil, errors.New("config: BRIDGE_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET must be set; the host does not ship a default signing secret")
	}
	if len(cfg.JWTSecret) < minSecretLen {
		return nil, errors.New("config: JWT_SECRET must be at least 32 bytes")
	}
	if cfg.Argon2MemoryKB < 8*1024 {
		return nil, errors.New("config: ARGON2_MEMORY_KB must be at least 8192")
	}
	if cfg.Argon2Time == 0 || cfg.Argon2Parallelism == 0 {
		return nil, errors.New("config: ARGON2_TIME and ARGON2_PARALLELISM must be positive")
	}

	return &cfg, nil
}

// AccessTTL parses JWTAccessTTL as a time.Duration. Returns 1h if unset or invalid.
func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.JWTAccessTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// RefreshTTL parses JWTRefreshTTL as a time.Duration. Returns 168h if unset or invalid.
func (c *Config) RefreshTTL() time.Duration {
	d, err := time.ParseDuration(c.JWTRefreshTTL)
	if err != nil || d <= 0 {
		return 168 * time.Hour
	}
	return d
}

// RateWindow parses AuthRateWindow as a time.Duration. Returns 1m if unset or invalid.
func (c *Config) RateWindow() time.Duration {
	d, err := time.ParseDuration(c.AuthRateWindow)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}
