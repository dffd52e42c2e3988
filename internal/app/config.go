package app

import (
	"os"
	"strconv"

	"go-orgs/internal/shared/connection"

	"golang.org/x/time/rate"
)

type Config struct {
	Env          string
	Port         string
	Database     connection.DatabaseConfig
	DBMaxRetries int
	// RedisAddr and KafkaBroker are optional. Without Redis the idempotency
	// lock is off; without Kafka lifecycle events are dropped.
	RedisAddr      string
	KafkaBroker    string
	RateLimit      rate.Limit
	RateLimitBurst int
}

func LoadConfig() Config {
	return Config{
		Env:  os.Getenv("APP_ENV"),
		Port: getEnv("PORT", "3000"),
		Database: connection.DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		DBMaxRetries:   getEnvInt("DB_MAX_RETRIES", 5),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		RateLimit:      rate.Limit(getEnvFloat("RATE_LIMIT_RPS", 5)),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func (c Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}
