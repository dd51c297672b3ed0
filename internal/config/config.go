package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
}

func Load() Config {
	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	cfg := Config{
		Port:    getEnv("PORT", "8080"),
		DBDSN:   getEnv("DB_DSN", "techstore.db"), // sqlite file in project root
		LogFile: getEnv("LOG_FILE", "./techstore.log"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
