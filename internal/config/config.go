package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Frontend
	StaticDir     string
	AllowedOrigin string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "3000"),
		Env:           getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		StaticDir:     getEnvOrDefault("STATIC_DIR", "public"),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "*"),
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("warning: GEMINI_API_KEY is not set; assistant replies will use the fallback message")
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
