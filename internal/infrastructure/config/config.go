package config

import (
	"log"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	DatabasePath    string

	// Learning Record Store
	LRSEndpoint       string        // statements API base, e.g. "https://lrs.example.edu/xapi"
	LRSAPIKey         string        // Basic auth user
	LRSAPISecret      string        // Basic auth password
	LRSTimeout        time.Duration // per fetch
	LRSStatementLimit int           // "limit" query parameter

	// Timezone renders "last activity" timestamps.
	Timezone *time.Location

	// LaunchSecret verifies launch session tokens.
	LaunchSecret []byte
	CORSOrigin   string
}

// Load reads the server configuration. LAUNCH_SECRET is required.
func Load() *Config {
	cfg := LoadReport()
	cfg.LaunchSecret = []byte(mustGetenv("LAUNCH_SECRET"))
	return cfg
}

// LoadReport reads the configuration used by offline tools, which never
// verify launch tokens.
func LoadReport() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:     getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DatabasePath:      getenvDefault("DATABASE_PATH", "xapi.db"),
		LRSEndpoint:       getenvDefault("LRS_ENDPOINT", "http://localhost:8081/xapi"),
		LRSAPIKey:         getenvDefault("LRS_API_KEY", "my_api_key"),
		LRSAPISecret:      getenvDefault("LRS_API_SECRET", "my_api_secret"),
		LRSTimeout:        getDuration("LRS_TIMEOUT", 30*time.Second),
		LRSStatementLimit: getInt("LRS_STATEMENT_LIMIT", 100),
		Timezone:          getLocation("APP_TIMEZONE", "America/New_York"),
		CORSOrigin:        getenvDefault("CORS_ORIGIN", "*"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func getDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getLocation(k, fallback string) *time.Location {
	name := getenvDefault(k, fallback)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatalf("config: %s=%q is not a known timezone: %v", k, name, err)
	}
	return loc
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
