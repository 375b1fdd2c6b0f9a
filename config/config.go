package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	APIBaseURL string

	ChatPollMs      int
	CountdownTickMs int

	StateDir string
	LogPath  string

	GeoIPURL     string
	NominatimURL string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),

		ChatPollMs:      getEnvInt("CHAT_POLL_MS", 2000),
		CountdownTickMs: getEnvInt("COUNTDOWN_TICK_MS", 1000),

		StateDir: getEnv("STATE_DIR", defaultStateDir()),
		LogPath:  getEnv("LOG_PATH", "./cropconnect.log"),

		GeoIPURL:     getEnv("GEOIP_URL", "http://ip-api.com/json"),
		NominatimURL: getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org/reverse"),
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.cropconnect"
	}
	return filepath.Join(home, ".cropconnect")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
