package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	PostgresDSN    string
	CORSOrigins    []string
	RedisAddr      string
	LogFile        string
	LogTee         bool
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxIdle  time.Duration
	DBConnMaxLife  time.Duration
	RequestTimeout time.Duration
}

func Load() *Config {
	// A local .env is optional; real environments inject variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", getEnv("PORT", "8000")),
		PostgresDSN:    getEnv("DATABASE_URL", ""),
		CORSOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5500,http://127.0.0.1:5500")),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		LogFile:        getEnv("LOG_FILE", ""),
		LogTee:         getEnv("LOG_TEE", "true") == "true",
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxIdle:  getDuration("DB_CONN_MAX_IDLE", 5*time.Minute),
		DBConnMaxLife:  getDuration("DB_CONN_MAX_LIFE", 30*time.Minute),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}

	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = composeDSN()
	}
	if cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL or DATABASE_HOST/DATABASE_NAME/DATABASE_USER/DATABASE_PASSWORD is required")
	}

	return cfg
}

// composeDSN builds a connection string from the split DATABASE_* variables.
// The hosted database only accepts TLS connections, so sslmode is pinned.
func composeDSN() string {
	host := getEnv("DATABASE_HOST", "")
	name := getEnv("DATABASE_NAME", "")
	user := getEnv("DATABASE_USER", "")
	password := getEnv("DATABASE_PASSWORD", "")
	if host == "" || name == "" || user == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=require",
		url.QueryEscape(user), url.QueryEscape(password), host, name)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
