package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	// StorageBackend selects where snapshots go: file, redis or postgres.
	StorageBackend string
	SnapshotPath   string
	RedisURL       string
	DatabaseURL    string

	JWTSecret string
	JWTTTL    time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		SnapshotPath:   getEnv("SNAPSHOT_PATH", "data/snapshot.json"),
		RedisURL:       os.Getenv("REDIS_URL"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),
	}

	switch cfg.StorageBackend {
	case "file", "redis", "postgres":
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND: %s", cfg.StorageBackend)
	}

	ttl := time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		minutes, err := strconv.Atoi(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %w", err)
		}
		ttl = time.Duration(minutes) * time.Minute
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
