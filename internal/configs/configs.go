package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	DashboardCacheTTL      int
	ShutdownTimeoutSeconds int
	LogFile                string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "")
	redisPort := getEnv("REDIS_PORT", "6379")

	redisAddr := ""
	if redisHost != "" {
		redisAddr = fmt.Sprintf("%s:%s", redisHost, redisPort)
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskpro.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              redisAddr,
		DashboardCacheTTL:      getEnvAsInt("DASHBOARD_CACHE_TTL_SECONDS", 30),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		LogFile:                getEnv("LOG_FILE", ""),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.DashboardCacheTTL <= 0 {
		log.Fatal("DASHBOARD_CACHE_TTL_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
