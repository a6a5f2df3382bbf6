package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Runtime settings shared by the server, the CLI and dbtool.
type Config struct {
	Port        string
	DBPath      string
	DatabaseURL string
	SeedPath    string
	GridFile    string
	MaxPoints   int
}

// Load reads an optional .env file, then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Port:        Get("PORT", "8080"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SeedPath:    Get("SEED_PATH", "data/seeds/grids.json"),
		GridFile:    Get("GRID_FILE", "matriz.txt"),
		MaxPoints:   GetInt("MAX_POINTS", 10),
	}
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt falls back on unset or non-integer values.
func GetInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}
