package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port          string
	Env           string
	DatabaseDSN   string
	SessionSecret string
	SessionExpiry time.Duration
	MealDBBaseURL string
	MealDBAPIKey  string
	CookieDomain  string
	LogLevel      string
	StaticDir     string
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("ENV", "development"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/tastebase?parseTime=true"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		SessionExpiry: 7 * 24 * time.Hour,
		MealDBBaseURL: getEnv("MEALDB_BASE_URL", "https://www.themealdb.com"),
		MealDBAPIKey:  getEnv("MEALDB_API_KEY", "1"),
		CookieDomain:  getEnv("COOKIE_DOMAIN", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StaticDir:     getEnv("STATIC_DIR", ""),
	}

	if cfg.Env == "production" && cfg.SessionSecret == "dev-secret-change-in-production" {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
