package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort          string
	DatabaseURL      string
	DataDir          string
	UploadDir        string
	SessionSecret    string
	SessionTTL       time.Duration
	TranslateBaseURL string
}

// Load reads environment variables and returns a populated Config.
// DATABASE_URL switches the store to postgres; by default the embedded
// sqlite database under DataDir is used.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DataDir:          getEnv("DATA_DIR", "data"),
		UploadDir:        getEnv("UPLOAD_DIR", "public/images/uploads"),
		SessionSecret:    getEnv("SESSION_SECRET", "2f7c1d94a8e35b60c4d87e21f9a34b5d87e60c13f2a95d48b7c06e31d24a98f7"),
		SessionTTL:       getEnvDuration("SESSION_TTL_HOURS", 24) * time.Hour,
		TranslateBaseURL: getEnv("TRANSLATE_BASE_URL", "https://api.mymemory.translated.net"),
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
