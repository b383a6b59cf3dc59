package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds all server settings, read from the environment.
type Config struct {
	Port           string
	IsProduction   bool
	SessionTimeout time.Duration
	CookieMaxAge   time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	SessionDir     string
	MaxUploadBytes int64
	LogLevel       string
}

// bootstrap loads .env if present and starts the logger before the rest of
// the environment is read, so invalid values are reported.
func bootstrap(opts ...zap.Option) (Config, error) {
	_ = godotenv.Load()
	if err := initLogger(isProductionEnv(), os.Getenv("LOG_LEVEL"), opts...); err != nil {
		return Config{}, err
	}
	return loadConfig(), nil
}

func isProductionEnv() bool {
	return os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
}

// loadConfig reads the server settings from the environment.
func loadConfig() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		IsProduction:   isProductionEnv(),
		SessionTimeout: getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:   getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		SessionDir:     getEnv("SESSION_DIR", "data/sessions"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", defaultMaxUploadSize)),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}
}

func (c Config) envName() string {
	return map[bool]string{true: "production", false: "development"}[c.IsProduction]
}
