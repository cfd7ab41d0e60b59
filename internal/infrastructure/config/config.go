package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey signs access tokens; the process refuses to start without it.
	SecretKey                string `env:"SECRET_KEY, required"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000,http://localhost:8000"`

	RateLimit RateLimitConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	BLS       BLSConfig

	Workers int `env:"ANALYTICS_WORKERS, default=4"`
}

type RateLimitConfig struct {
	Requests int `env:"RATE_LIMIT_REQUESTS, default=100"`
	// WindowSeconds is the counter TTL for the global limiter.
	WindowSeconds int `env:"RATE_LIMIT_WINDOW, default=3600"`

	LoginRequests      int `env:"LOGIN_RATE_LIMIT_REQUESTS, default=5"`
	LoginWindowSeconds int `env:"LOGIN_RATE_LIMIT_WINDOW, default=300"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=workforce_analytics"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB,   default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

type BLSConfig struct {
	APIKey string `env:"BLS_API_KEY"`
	URL    string `env:"BLS_API_URL, default=https://api.bls.gov/publicAPI/v2/timeseries/data/"`
}

// TokenTTL returns the configured access token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// Window returns the global rate limit window as a duration.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// LoginWindow returns the login rate limit window as a duration.
func (r RateLimitConfig) LoginWindow() time.Duration {
	return time.Duration(r.LoginWindowSeconds) * time.Second
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
